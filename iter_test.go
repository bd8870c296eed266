package tabwalk_test

import (
	"testing"

	tabwalk "github.com/tabwalk/tabwalk"
)

func drainSeq(it *tabwalk.SeqIter) (idx []int, vals []any) {
	for {
		i, v, ok := it.Next()
		if !ok {
			return
		}
		idx = append(idx, i)
		vals = append(vals, v)
	}
}

func TestIPairs_StopsAtGap(t *testing.T) {
	idx, vals := drainSeq(tabwalk.IPairs(gapTable()))
	if len(idx) != 3 {
		t.Fatalf("got %d pairs, want 3: %v", len(idx), idx)
	}
	want := []any{"a", "b", "c"}
	for i := range want {
		if idx[i] != i+1 || vals[i] != want[i] {
			t.Fatalf("pair %d = (%d,%v), want (%d,%v)", i, idx[i], vals[i], i+1, want[i])
		}
	}
}

func TestNPairs_ExtendsToBoundary(t *testing.T) {
	idx, vals := drainSeq(tabwalk.NPairs(gapTable()))
	if len(idx) != 5 {
		t.Fatalf("got %d pairs, want 5: %v", len(idx), idx)
	}
	if vals[3] != nil {
		t.Fatalf("position 4 = %v, want nil (absent)", vals[3])
	}
	if vals[4] != "e" {
		t.Fatalf("position 5 = %v, want e", vals[4])
	}
}

func TestRIPairs_DescendsFromGapBoundary(t *testing.T) {
	idx, _ := drainSeq(tabwalk.RIPairs(gapTable()))
	want := []int{3, 2, 1}
	if len(idx) != len(want) {
		t.Fatalf("got %v, want %v", idx, want)
	}
	for i := range want {
		if idx[i] != want[i] {
			t.Fatalf("got %v, want %v", idx, want)
		}
	}
}

func TestRNPairs_DescendsFromResolvedBoundary(t *testing.T) {
	idx, vals := drainSeq(tabwalk.RNPairs(gapTable()))
	if len(idx) != 5 || idx[0] != 5 || idx[4] != 1 {
		t.Fatalf("got %v, want 5..1", idx)
	}
	if vals[1] != nil {
		t.Fatalf("position 4 = %v, want nil (absent)", vals[1])
	}
}

func TestSeqIter_Restartable(t *testing.T) {
	tab := tabwalk.FromSlice([]any{"x", "y"})
	for round := 0; round < 2; round++ {
		idx, _ := drainSeq(tabwalk.IPairs(tab))
		if len(idx) != 2 {
			t.Fatalf("round %d: got %d pairs, want 2", round, len(idx))
		}
	}
}

func TestNPairs_HonorsLengthOverride(t *testing.T) {
	tab := tabwalk.FromSlice([]any{"x", "y"})
	tab.SetMeta(&tabwalk.Meta{Len: func() int { return 4 }})
	idx, _ := drainSeq(tabwalk.NPairs(tab))
	if len(idx) != 4 {
		t.Fatalf("got %d pairs, want override boundary 4", len(idx))
	}
}

func TestPairs_EnumerationOverrideWinsWholesale(t *testing.T) {
	tab := tabwalk.NewTable()
	tab.Set("a", 1)
	tab.Set("b", 2)
	tab.Set("c", 3)
	tab.SetMeta(&tabwalk.Meta{Keys: func() []any { return []any{"c", "a"} }})

	it := tabwalk.Pairs(tab)
	var keys []any
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		keys = append(keys, k)
	}
	if len(keys) != 2 || keys[0] != "c" || keys[1] != "a" {
		t.Fatalf("keys = %v, want [c a]", keys)
	}
}

func TestPairs_DefaultEnumerationIsComplete(t *testing.T) {
	tab := gapTable()
	tab.Set("name", "x")
	seen := map[any]bool{}
	it := tabwalk.Pairs(tab)
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		seen[k] = true
	}
	if len(seen) != 5 {
		t.Fatalf("enumerated %d keys, want 5", len(seen))
	}
	if !seen["name"] || !seen[int64(5)] {
		t.Fatalf("missing keys in %v", seen)
	}
}

func TestValues_DiscardsKeys(t *testing.T) {
	tab := tabwalk.FromSlice([]any{"x", "y", "z"})
	it := tabwalk.Values(tabwalk.IPairs(tab))
	var vals []any
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		vals = append(vals, v)
	}
	if len(vals) != 3 || vals[0] != "x" || vals[2] != "z" {
		t.Fatalf("vals = %v, want [x y z]", vals)
	}
}

func TestValues_ComposesAsPairSource(t *testing.T) {
	tab := tabwalk.FromSlice([]any{"x", "y"})
	// Wrapping twice must still yield the values: the adaptor itself
	// satisfies the PairSource contract.
	it := tabwalk.Values(tabwalk.Values(tabwalk.Pairs(tab)))
	n := 0
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		if v == nil {
			t.Fatalf("value %d is nil", n)
		}
		n++
	}
	if n != 2 {
		t.Fatalf("yielded %d values, want 2", n)
	}
}

func TestIPairs_NonContainerIteratesEmpty(t *testing.T) {
	if _, _, ok := tabwalk.IPairs("abc").Next(); ok {
		t.Fatalf("expected empty iteration over a scalar")
	}
}

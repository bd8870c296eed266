package tabwalk

import (
	"math"
	"sort"
)

// Container is the associative structure the renderer and the sequence
// iterators traverse. Keys are unique within one container and may be any
// comparable value; positional entries are keyed 1..n.
type Container interface {
	// Get returns the value stored under key and whether it is present.
	Get(key any) (any, bool)
	// Span returns a candidate positional count. It may overshoot for sparse
	// data; Len corrects it with a first-gap scan.
	Span() int
	// Keys enumerates every key in an order that is stable for one call.
	Keys() []any
}

// Measured is the length-override capability: its result takes precedence
// over native length and boundary computation.
type Measured interface {
	Measure() int
}

// Enumerated is the enumeration-override capability: it supplies the complete
// key set and order for traversal and iteration, replacing default
// enumeration wholesale.
type Enumerated interface {
	Enumerate() []any
}

// Literaled is the literal-override capability: it supplies ready-made
// literal text for pickling an otherwise non-terminal value.
type Literaled interface {
	Literal() string
}

// The string-override capability is fmt.Stringer: a container that implements
// it renders as its String() text instead of being recursed into.

// Meta carries per-instance capability overrides for a Table. Overrides are
// attached to one Table and never inherited.
type Meta struct {
	Len     func() int    // length-override
	Keys    func() []any  // enumeration-override
	Literal func() string // literal-override
	String  func() string // string-override
}

// Table is the concrete insertion-ordered container. Numeric keys of any
// integer kind (and integral floats) are normalized to int64 so positional
// lookup is well-defined regardless of how the caller spelled the index.
type Table struct {
	order []any
	m     map[any]any
	meta  *Meta
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{m: map[any]any{}}
}

// FromSlice builds a Table with vals at positions 1..len(vals). Nil elements
// become gaps.
func FromSlice(vals []any) *Table {
	t := NewTable()
	for i, v := range vals {
		t.Set(i+1, v)
	}
	return t
}

// FromMap builds a Table from a string-keyed map. Keys are inserted in sorted
// order so the result enumerates deterministically.
func FromMap(m map[string]any) *Table {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	t := NewTable()
	for _, k := range ks {
		t.Set(k, m[k])
	}
	return t
}

// Set stores val under key, preserving first-insertion order. Setting a nil
// value deletes the entry; absence is modeled as nil, a Table never stores
// nil values.
func (t *Table) Set(key, val any) *Table {
	k := normKey(key)
	if val == nil {
		t.Delete(k)
		return t
	}
	if _, ok := t.m[k]; !ok {
		t.order = append(t.order, k)
	}
	t.m[k] = val
	return t
}

// Get returns the value stored under key.
func (t *Table) Get(key any) (any, bool) {
	v, ok := t.m[normKey(key)]
	return v, ok
}

// Delete removes the entry stored under key.
func (t *Table) Delete(key any) {
	k := normKey(key)
	if _, ok := t.m[k]; !ok {
		return
	}
	delete(t.m, k)
	for i, ek := range t.order {
		if ek == k {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Span returns the highest positional key present. Sparse tables overshoot
// the contiguous run; Len applies the gap scan on top of this.
func (t *Table) Span() int {
	top := 0
	for _, k := range t.order {
		if i, ok := keyIndex(k); ok && i > top {
			top = i
		}
	}
	return top
}

// Keys returns every key in insertion order.
func (t *Table) Keys() []any {
	out := make([]any, len(t.order))
	copy(out, t.order)
	return out
}

// SetMeta attaches capability overrides to this Table instance.
func (t *Table) SetMeta(m *Meta) *Table {
	t.meta = m
	return t
}

// Meta returns the overrides attached to this Table, nil when none.
func (t *Table) Meta() *Meta { return t.meta }

// AsContainer adapts v into a Container view: Tables and Container
// implementations as themselves, map[string]any / map[any]any as named
// containers, []any as a 1-based positional container. Scalars are not
// containers.
func AsContainer(v any) (Container, bool) {
	switch c := v.(type) {
	case *Table:
		if c == nil {
			return nil, false
		}
		return c, true
	case Container:
		if c == nil {
			return nil, false
		}
		return c, true
	case map[string]any:
		return stringMapContainer(c), true
	case map[any]any:
		return anyMapContainer(c), true
	case []any:
		return sliceContainer(c), true
	}
	return nil, false
}

type sliceContainer []any

func (s sliceContainer) Get(key any) (any, bool) {
	i, ok := keyIndex(key)
	if !ok || i < 1 || i > len(s) {
		return nil, false
	}
	v := s[i-1]
	if v == nil {
		return nil, false // nil element is a gap
	}
	return v, true
}

func (s sliceContainer) Span() int { return len(s) }

func (s sliceContainer) Keys() []any {
	out := make([]any, 0, len(s))
	for i, v := range s {
		if v != nil {
			out = append(out, int64(i+1))
		}
	}
	return out
}

type stringMapContainer map[string]any

func (m stringMapContainer) Get(key any) (any, bool) {
	k, ok := key.(string)
	if !ok {
		return nil, false
	}
	v, ok := m[k]
	return v, ok
}

func (m stringMapContainer) Span() int { return 0 }

// Keys sorts so enumeration stays deterministic across calls; native map
// iteration order is not even stable within one call.
func (m stringMapContainer) Keys() []any {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	out := make([]any, len(ks))
	for i, k := range ks {
		out[i] = k
	}
	return out
}

type anyMapContainer map[any]any

func (m anyMapContainer) Get(key any) (any, bool) {
	v, ok := m[normKey(key)]
	if !ok {
		v, ok = m[key]
	}
	return v, ok
}

func (m anyMapContainer) Span() int {
	top := 0
	for k := range m {
		if i, ok := keyIndex(k); ok && i > top {
			top = i
		}
	}
	return top
}

func (m anyMapContainer) Keys() []any {
	out := make([]any, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sortKeys(out)
	return out
}

// normKey collapses every integer kind (and integral floats) to int64 so that
// t.Set(4, v) and t.Get(int32(4)) agree on one key.
func normKey(key any) any {
	switch k := key.(type) {
	case int:
		return int64(k)
	case int8:
		return int64(k)
	case int16:
		return int64(k)
	case int32:
		return int64(k)
	case int64:
		return k
	case uint:
		return uint64ToKey(uint64(k))
	case uint8:
		return int64(k)
	case uint16:
		return int64(k)
	case uint32:
		return int64(k)
	case uint64:
		return uint64ToKey(k)
	case uintptr:
		return uint64ToKey(uint64(k))
	case float32:
		return floatToKey(float64(k))
	case float64:
		return floatToKey(k)
	}
	return key
}

func uint64ToKey(u uint64) any {
	if u <= math.MaxInt64 {
		return int64(u)
	}
	return u
}

func floatToKey(f float64) any {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && f >= math.MinInt64 && f <= math.MaxInt64 {
		return int64(f)
	}
	return f
}

// keyIndex reports the positional index for key, false for named keys and
// indexes that do not fit an int.
func keyIndex(key any) (int, bool) {
	k, ok := normKey(key).(int64)
	if !ok || k < 0 || k > math.MaxInt32 {
		return 0, false
	}
	return int(k), true
}

// Override lookup. Table metas are checked first (per-instance, by identity),
// then the capability interfaces (by type).

func lenOverride(v any) (func() int, bool) {
	if t, ok := v.(*Table); ok {
		if t.meta != nil && t.meta.Len != nil {
			return t.meta.Len, true
		}
		return nil, false
	}
	if m, ok := v.(Measured); ok {
		return m.Measure, true
	}
	return nil, false
}

func enumOverride(v any) (func() []any, bool) {
	if t, ok := v.(*Table); ok {
		if t.meta != nil && t.meta.Keys != nil {
			return t.meta.Keys, true
		}
		return nil, false
	}
	if e, ok := v.(Enumerated); ok {
		return e.Enumerate, true
	}
	return nil, false
}

func literalOverride(v any) (func() string, bool) {
	if t, ok := v.(*Table); ok {
		if t.meta != nil && t.meta.Literal != nil {
			return t.meta.Literal, true
		}
		return nil, false
	}
	if l, ok := v.(Literaled); ok {
		return l.Literal, true
	}
	return nil, false
}

func stringOverride(v any) (func() string, bool) {
	if t, ok := v.(*Table); ok {
		if t.meta != nil && t.meta.String != nil {
			return t.meta.String, true
		}
		return nil, false
	}
	if s, ok := v.(interface{ String() string }); ok {
		return s.String, true
	}
	return nil, false
}

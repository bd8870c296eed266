package tabwalk

import (
	"sort"
	"strconv"
	"strings"
)

// Compare imposes a total order on token sequences. Overlapping positions are
// compared pairwise: numerically when both tokens parse as numbers, as text
// otherwise. The first difference decides; when the overlap is equal the
// shorter sequence sorts first.
func Compare(a, b []string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := compareToken(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// CompareSplit splits a and b on sep and compares the token sequences, so
// dotted identifiers like "1.10.2" order numerically per segment.
func CompareSplit(a, b, sep string) int {
	return Compare(strings.Split(a, sep), strings.Split(b, sep))
}

func compareToken(a, b string) int {
	na, aok := strconv.ParseFloat(a, 64)
	nb, bok := strconv.ParseFloat(b, 64)
	if aok == nil && bok == nil {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	}
	return strings.Compare(a, b)
}

// sortKeys is the numeric-first order shared by the stringify and mnemonic
// instantiations: positional keys ascending, then the remaining keys by their
// text form.
func sortKeys(keys []any) []any {
	sort.SliceStable(keys, func(i, j int) bool {
		a, aok := keyNumber(keys[i])
		b, bok := keyNumber(keys[j])
		switch {
		case aok && bok:
			return a < b
		case aok:
			return true
		case bok:
			return false
		}
		return Compare([]string{scalarText(keys[i])}, []string{scalarText(keys[j])}) < 0
	})
	return keys
}

func keyNumber(k any) (float64, bool) {
	switch n := normKey(k).(type) {
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

package tabwalk

import "unicode/utf8"

// Len resolves the authoritative length of v.
//
// A length-override wins outright. Non-containers fall back to their scalar
// size (rune count for text, 0 otherwise). For containers the candidate
// Span() is corrected by a first-gap scan, so the result is always the length
// of the longest contiguous positional run starting at 1, no matter what the
// candidate reported.
func Len(v any) int {
	if fn, ok := lenOverride(v); ok {
		return fn()
	}
	c, ok := AsContainer(v)
	if !ok {
		return scalarSize(v)
	}
	span := c.Span()
	for i := 1; i <= span; i++ {
		if _, present := c.Get(i); !present {
			return i - 1
		}
	}
	return span
}

// MaxN returns the greatest non-negative integer key present in v, looking
// past gaps; 0 when v has no positional keys. This differs from Len exactly
// when the positional entries are sparse.
func MaxN(v any) int {
	if fn, ok := lenOverride(v); ok {
		return fn()
	}
	c, ok := AsContainer(v)
	if !ok {
		return 0
	}
	top := 0
	for _, k := range c.Keys() {
		if i, ok := keyIndex(k); ok && i > top {
			top = i
		}
	}
	return top
}

func scalarSize(v any) int {
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s)
	}
	return 0
}

package tabwalk

import (
	"fmt"
	"math"
	"strconv"
)

// Hooks is the pluggable vtable controlling the renderer's output shape.
// Nil fields fall back to the defaults: "{" / "}" delimiters, generic scalar
// text, "key=value" pairs, "," between entries (suppressed when either side
// is absent), identity key order, and terminal for non-containers or anything
// with a string-override.
type Hooks struct {
	// Open emits the text introducing container x.
	Open func(x any) string
	// Close emits the text closing container x.
	Close func(x any) string
	// Elem emits the text of a terminal value. It also produces the
	// placeholder registered for cycle substitution when x is a container.
	Elem func(x any) string
	// Pair emits one rendered entry; prevKey/prevVal are nil on the first
	// iteration.
	Pair func(x, prevKey, prevVal, key, val any, keyText, valText string) string
	// Sep emits the separator in front of the next entry; it is called once
	// more after the loop with nil next so trailing separators can be
	// suppressed.
	Sep func(x, prevKey, prevVal, nextKey, nextVal any) string
	// Sort orders the collected keys.
	Sort func(keys []any) []any
	// Term decides whether x renders as a terminal instead of being recursed
	// into.
	Term func(x any) bool
}

// fill resolves nil hook fields to the defaults so the engine never checks
// twice.
func (h Hooks) fill() Hooks {
	if h.Open == nil {
		h.Open = func(any) string { return "{" }
	}
	if h.Close == nil {
		h.Close = func(any) string { return "}" }
	}
	if h.Elem == nil {
		h.Elem = defaultElem
	}
	if h.Pair == nil {
		h.Pair = func(_, _, _, _, _ any, kt, vt string) string { return kt + "=" + vt }
	}
	if h.Sep == nil {
		h.Sep = defaultSep
	}
	if h.Sort == nil {
		h.Sort = func(keys []any) []any { return keys }
	}
	if h.Term == nil {
		h.Term = defaultTerm
	}
	return h
}

func defaultTerm(v any) bool {
	if _, ok := AsContainer(v); !ok {
		return true
	}
	_, ok := stringOverride(v)
	return ok
}

func defaultElem(v any) string {
	if fn, ok := stringOverride(v); ok {
		return fn()
	}
	return scalarText(v)
}

func defaultSep(_, prevKey, _, nextKey, _ any) string {
	if prevKey == nil || nextKey == nil {
		return ""
	}
	return ","
}

// scalarText is the generic text form of a value: raw text for strings,
// literal form for booleans and numbers, "nil" for absence, "<table>" for
// containers reached as terminals.
func scalarText(v any) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(t)
	case string:
		return t
	case int:
		return strconv.FormatInt(int64(t), 10)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint8:
		return strconv.FormatUint(uint64(t), 10)
	case uint16:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return formatFloat(float64(t))
	case float64:
		return formatFloat(t)
	}
	if _, ok := AsContainer(v); ok {
		return "<table>"
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}

// formatFloat uses the shortest round-trip form; the special values map to
// the symbolic tokens the pickle reader restores.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

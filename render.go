package tabwalk

import (
	"maps"
	"reflect"
	"strings"
)

// Render walks v depth-first and concatenates the hook output. The walk is
// cycle-safe: every container on the current root-to-node path is registered
// in a visited set mapped to its placeholder text, and a descendant that
// refers back to an ancestor renders as that placeholder instead of being
// recursed into. The visited set is value-copied on every recursion into a
// child, so two sibling branches sharing a non-cyclic sub-container never see
// each other's entries.
//
// The visited set is built fresh per call and no state survives the return,
// so independent concurrent calls need no coordination as long as the
// containers themselves are not mutated during the walk.
func Render(v any, h Hooks) string {
	filled := h.fill()
	var b strings.Builder
	walk(&b, v, &filled, map[any]string{})
	return b.String()
}

func walk(b *strings.Builder, x any, h *Hooks, visited map[any]string) {
	if h.Term(x) {
		b.WriteString(h.Elem(x))
		return
	}
	b.WriteString(h.Open(x))
	if id, ok := identityOf(x); ok {
		visited[id] = h.Elem(x)
	}
	keys := h.Sort(collectKeys(x))
	c, _ := AsContainer(x)
	var prevKey, prevVal any
	for _, k := range keys {
		var val any
		if c != nil {
			val, _ = c.Get(k)
		}
		b.WriteString(h.Sep(x, prevKey, prevVal, k, val))
		keyText := renderChild(k, h, visited)
		valText := renderChild(val, h, visited)
		b.WriteString(h.Pair(x, prevKey, prevVal, k, val, keyText, valText))
		prevKey, prevVal = k, val
	}
	b.WriteString(h.Sep(x, prevKey, prevVal, nil, nil))
	b.WriteString(h.Close(x))
}

// renderChild substitutes the registered placeholder for ancestors and
// otherwise recurses with its own copy of the visited set.
func renderChild(v any, h *Hooks, visited map[any]string) string {
	if id, ok := identityOf(v); ok {
		if ph, hit := visited[id]; hit {
			return ph
		}
	}
	var b strings.Builder
	walk(&b, v, h, maps.Clone(visited))
	return b.String()
}

// collectKeys applies the key-enumeration rule: an enumeration-override
// supplies the keys wholesale, otherwise the container enumerates natively.
func collectKeys(x any) []any {
	if fn, ok := enumOverride(x); ok {
		return fn()
	}
	if c, ok := AsContainer(x); ok {
		return c.Keys()
	}
	return nil
}

// refIdent identifies reference-kind containers in the visited set.
type refIdent struct {
	kind reflect.Kind
	ptr  uintptr
}

// identityOf returns a comparable identity for containers; scalars carry no
// identity and are never tracked.
func identityOf(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	if t, ok := v.(*Table); ok {
		return t, true
	}
	if _, ok := AsContainer(v); !ok {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return refIdent{kind: rv.Kind(), ptr: rv.Pointer()}, true
	}
	if rv.Comparable() {
		return v, true
	}
	return nil, false
}

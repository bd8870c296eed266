package codec

import (
	"reflect"

	tabwalk "github.com/tabwalk/tabwalk"
)

// toNative lowers a tabwalk value into plain Go data for the marshalers:
// contiguous positional containers become []any, everything else becomes
// map[string]any keyed by each key's text form. visited guards against
// cycles, which have no finite wire form.
func toNative(v any, visited map[any]bool) (any, error) {
	c, ok := tabwalk.AsContainer(v)
	if !ok {
		return v, nil
	}
	if id, ok := identity(v); ok {
		if visited[id] {
			return nil, tabwalk.Issues{tabwalk.Issue{
				Path:    "/",
				Code:    tabwalk.CodeInvalidType,
				Message: "cannot encode cyclic data",
				Offset:  -1,
			}}
		}
		visited[id] = true
		defer delete(visited, id)
	}

	keys := c.Keys()
	if n := tabwalk.Len(v); n == len(keys) && n > 0 {
		out := make([]any, 0, n)
		it := tabwalk.IPairs(v)
		for {
			_, val, ok := it.Next()
			if !ok {
				break
			}
			nv, err := toNative(val, visited)
			if err != nil {
				return nil, err
			}
			out = append(out, nv)
		}
		return out, nil
	}
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		val, _ := c.Get(k)
		nv, err := toNative(val, visited)
		if err != nil {
			return nil, err
		}
		out[tabwalk.Stringify(k)] = nv
	}
	return out, nil
}

type refIdentity struct {
	kind reflect.Kind
	ptr  uintptr
}

func identity(v any) (any, bool) {
	if t, ok := v.(*tabwalk.Table); ok {
		return t, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer:
		return refIdentity{kind: rv.Kind(), ptr: rv.Pointer()}, true
	}
	if rv.Comparable() {
		return v, true
	}
	return nil, false
}

package tabwalk

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tabwalk/tabwalk/i18n"
)

// Pickle renders v as literal text that Unpickle evaluates back to a
// deep-equal value. Accepted terminals are booleans, absence (nil), numbers,
// text, and anything with a literal-override; every entry uses the bracketed
// computed-key form [key]=value so non-identifier keys round-trip. Any other
// terminal fails with an unpicklable_value issue naming the value, and no
// partial output is returned.
func Pickle(v any) (string, error) {
	var iss Issues
	out := Render(v, Hooks{
		Elem: func(x any) string {
			text, issue := pickleElem(x)
			if issue != nil {
				iss = AppendIssues(iss, *issue)
			}
			return text
		},
		Pair: func(_, _, _, _, _ any, keyText, valText string) string {
			return "[" + keyText + "]=" + valText
		},
		Term: func(x any) bool {
			if _, ok := literalOverride(x); ok {
				return true
			}
			_, isContainer := AsContainer(x)
			return !isContainer
		},
	})
	if len(iss) > 0 {
		return "", iss
	}
	return out, nil
}

func pickleElem(x any) (string, *Issue) {
	if fn, ok := literalOverride(x); ok {
		return fn(), nil
	}
	switch t := x.(type) {
	case nil:
		return "nil", nil
	case bool:
		return strconv.FormatBool(t), nil
	case string:
		return strconv.Quote(t), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return scalarText(t), nil
	case float32:
		return pickleFloat(float64(t)), nil
	case float64:
		return pickleFloat(t), nil
	}
	if _, ok := AsContainer(x); ok {
		// Containers reach Elem only as the cycle placeholder; a
		// back-reference has no finite literal, so it degrades to nil.
		return "nil", nil
	}
	desc := scalarText(x)
	return "nil", &Issue{
		Path:    "/",
		Code:    CodeUnpicklable,
		Message: fmt.Sprintf("%s: %s", i18n.T(CodeUnpicklable, nil), desc),
		Offset:  -1,
		Params:  map[string]any{"value": desc},
	}
}

// pickleFloat keeps floats recognizable as floats: integral values carry a
// trailing ".0" so the reader restores the same kind, and the special values
// use the symbolic tokens nan/inf/-inf.
func pickleFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Package ctyadapt bridges cty values into tabwalk containers, so data
// produced by HCL-flavored toolchains can be rendered, pickled and
// fingerprinted like any other container.
package ctyadapt

import (
	"fmt"
	"math/big"

	"github.com/zclconf/go-cty/cty"

	tabwalk "github.com/tabwalk/tabwalk"
)

// FromValue recursively converts a cty.Value into its tabwalk counterpart.
// Null and unknown values become nil, lists/tuples/sets become positional
// Tables, objects/maps become named Tables, numbers become int64 when
// integral and float64 otherwise.
func FromValue(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()

	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		bf := v.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return i, nil
		}
		f, _ := bf.Float64()
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := tabwalk.NewTable()
		i := 1
		it := v.ElementIterator()
		for it.Next() {
			_, ev := it.Element()
			nv, err := FromValue(ev)
			if err != nil {
				return nil, err
			}
			out.Set(i, nv)
			i++
		}
		return out, nil

	case ty.IsObjectType() || ty.IsMapType():
		out := tabwalk.NewTable()
		it := v.ElementIterator()
		for it.Next() {
			key, ev := it.Element()
			nv, err := FromValue(ev)
			if err != nil {
				return nil, fmt.Errorf("in attribute %q: %w", key.AsString(), err)
			}
			out.Set(key.AsString(), nv)
		}
		return out, nil
	}

	return nil, tabwalk.Issues{tabwalk.Issue{
		Path:    "/",
		Code:    tabwalk.CodeInvalidType,
		Message: fmt.Sprintf("unsupported cty type %s", ty.FriendlyName()),
		Offset:  -1,
	}}
}

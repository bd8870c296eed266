package ctyadapt_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	tabwalk "github.com/tabwalk/tabwalk"
	"github.com/tabwalk/tabwalk/ctyadapt"
)

func TestFromValue_Scalars(t *testing.T) {
	v, err := ctyadapt.FromValue(cty.StringVal("hi"))
	require.NoError(t, err)
	require.Equal(t, "hi", v)

	v, err = ctyadapt.FromValue(cty.NumberIntVal(42))
	require.NoError(t, err)
	require.Equal(t, int64(42), v)

	v, err = ctyadapt.FromValue(cty.NumberFloatVal(1.5))
	require.NoError(t, err)
	require.Equal(t, 1.5, v)

	v, err = ctyadapt.FromValue(cty.BoolVal(true))
	require.NoError(t, err)
	require.Equal(t, true, v)
}

func TestFromValue_NullAndUnknown(t *testing.T) {
	v, err := ctyadapt.FromValue(cty.NullVal(cty.String))
	require.NoError(t, err)
	require.Nil(t, v)

	v, err = ctyadapt.FromValue(cty.UnknownVal(cty.Number))
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestFromValue_Collections(t *testing.T) {
	v, err := ctyadapt.FromValue(cty.ObjectVal(map[string]cty.Value{
		"name":  cty.StringVal("svc"),
		"ports": cty.ListVal([]cty.Value{cty.NumberIntVal(80), cty.NumberIntVal(443)}),
	}))
	require.NoError(t, err)

	tab, ok := v.(*tabwalk.Table)
	require.True(t, ok, "expected *tabwalk.Table, got %T", v)

	name, ok := tab.Get("name")
	require.True(t, ok)
	require.Equal(t, "svc", name)

	ports, ok := tab.Get("ports")
	require.True(t, ok)
	require.Equal(t, 2, tabwalk.Len(ports))

	first, _ := ports.(*tabwalk.Table).Get(1)
	require.Equal(t, int64(80), first)
}

func TestFromValue_TupleMixedTypes(t *testing.T) {
	v, err := ctyadapt.FromValue(cty.TupleVal([]cty.Value{
		cty.StringVal("a"),
		cty.NumberIntVal(1),
		cty.BoolVal(false),
	}))
	require.NoError(t, err)
	require.Equal(t, "{a,1,false}", tabwalk.Stringify(v))
}

func TestFromValue_RendersAndPickles(t *testing.T) {
	v, err := ctyadapt.FromValue(cty.MapVal(map[string]cty.Value{
		"x": cty.NumberIntVal(1),
	}))
	require.NoError(t, err)

	text, err := tabwalk.Pickle(v)
	require.NoError(t, err)

	back, err := tabwalk.Unpickle(text)
	require.NoError(t, err)
	require.True(t, tabwalk.DeepEqual(v, back))
}

package codec_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	tabwalk "github.com/tabwalk/tabwalk"
	"github.com/tabwalk/tabwalk/codec"
)

func TestFromJSON_PreservesMemberOrder(t *testing.T) {
	v, err := codec.FromJSON([]byte(`{"z":1,"a":2,"m":3}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	tab, ok := v.(*tabwalk.Table)
	if !ok {
		t.Fatalf("got %T, want *Table", v)
	}
	got := tab.Keys()
	want := []any{"z", "a", "m"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestFromJSON_ArraysArePositional(t *testing.T) {
	v, err := codec.FromJSON([]byte(`[10, "x", true]`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if got := tabwalk.Len(v); got != 3 {
		t.Fatalf("Len = %d, want 3", got)
	}
	if got := tabwalk.Stringify(v); got != "{10,x,true}" {
		t.Fatalf("Stringify = %q", got)
	}
}

func TestFromJSON_NullElementIsGap(t *testing.T) {
	v, err := codec.FromJSON([]byte(`[1, null, 3]`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if got := tabwalk.Len(v); got != 1 {
		t.Fatalf("Len = %d, want 1 (null is a gap)", got)
	}
	if got := tabwalk.MaxN(v); got != 3 {
		t.Fatalf("MaxN = %d, want 3", got)
	}
}

func TestFromJSON_Numbers(t *testing.T) {
	v, err := codec.FromJSON([]byte(`{"i": 42, "f": 1.5}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	tab := v.(*tabwalk.Table)
	if got, _ := tab.Get("i"); got != int64(42) {
		t.Fatalf("i = %#v, want int64(42)", got)
	}
	if got, _ := tab.Get("f"); got != 1.5 {
		t.Fatalf("f = %#v, want 1.5", got)
	}

	v, err = codec.FromJSONWith([]byte(`{"i": 42}`), codec.DecodeOpt{Numbers: codec.NumberFloat64})
	if err != nil {
		t.Fatalf("FromJSONWith: %v", err)
	}
	if got, _ := v.(*tabwalk.Table).Get("i"); got != float64(42) {
		t.Fatalf("i = %#v, want float64(42)", got)
	}
}

func TestFromJSON_Scalars(t *testing.T) {
	cases := []struct {
		in   string
		want any
	}{
		{`"s"`, "s"},
		{`true`, true},
		{`null`, nil},
		{`7`, int64(7)},
	}
	for _, tc := range cases {
		v, err := codec.FromJSON([]byte(tc.in))
		if err != nil {
			t.Fatalf("FromJSON(%s): %v", tc.in, err)
		}
		if v != tc.want {
			t.Fatalf("FromJSON(%s) = %#v, want %#v", tc.in, v, tc.want)
		}
	}
}

func TestFromJSON_BadInput(t *testing.T) {
	for _, in := range []string{`{"a":`, `[1,]`, `42 43`} {
		_, err := codec.FromJSON([]byte(in))
		if err == nil {
			t.Fatalf("FromJSON(%q) succeeded, want error", in)
		}
		if iss, ok := tabwalk.AsIssues(err); !ok || iss[0].Code != tabwalk.CodeParseError {
			t.Fatalf("FromJSON(%q): expected parse_error issue, got %v", in, err)
		}
	}
}

func TestToJSON_ContiguousTableAsArray(t *testing.T) {
	tab := tabwalk.FromSlice([]any{int64(1), "two", true})
	out, err := codec.ToJSON(tab)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	if diff := cmp.Diff(`[1,"two",true]`, string(out)); diff != "" {
		t.Fatalf("ToJSON mismatch (-want +got):\n%s", diff)
	}
}

func TestToJSON_RoundTripThroughTable(t *testing.T) {
	src := []byte(`{"a":[1,2],"b":{"c":"x"}}`)
	v, err := codec.FromJSON(src)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	out, err := codec.ToJSON(v)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	back, err := codec.FromJSON(out)
	if err != nil {
		t.Fatalf("FromJSON(re-encoded): %v", err)
	}
	if !tabwalk.DeepEqual(v, back) {
		t.Fatalf("round trip mismatch: %s vs %s", tabwalk.Stringify(v), tabwalk.Stringify(back))
	}
}

func TestToJSON_RejectsCycles(t *testing.T) {
	tab := tabwalk.NewTable()
	tab.Set("self", tab)
	if _, err := codec.ToJSON(tab); err == nil {
		t.Fatalf("expected cycle rejection")
	}
}

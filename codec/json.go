// Package codec bridges wire formats into tabwalk containers. JSON objects
// and YAML mappings decode into insertion-ordered *tabwalk.Table values, so
// key order in the document survives into rendering.
package codec

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	tabwalk "github.com/tabwalk/tabwalk"
)

// NumberMode dictates how JSON numbers are interpreted.
type NumberMode int

const (
	NumberAuto    NumberMode = iota // int64 when integral, float64 otherwise.
	NumberFloat64                   // Always float64.
)

// DecodeOpt bundles decoding options.
type DecodeOpt struct {
	Numbers NumberMode
}

// FromJSON decodes JSON into a tabwalk value: objects become Tables keyed by
// their member names in document order, arrays become Tables keyed 1..n (a
// null element is a gap), scalars decode to themselves.
func FromJSON(data []byte) (any, error) {
	return FromJSONWith(data, DecodeOpt{})
}

// FromJSONWith decodes with explicit options.
func FromJSONWith(data []byte, opt DecodeOpt) (any, error) {
	return FromJSONReader(bytes.NewReader(data), opt)
}

// FromJSONReader decodes a single JSON value from r.
func FromJSONReader(r io.Reader, opt DecodeOpt) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	v, err := decodeJSONValue(dec, opt)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, parseIssue(dec.InputOffset(), "trailing input after value")
	}
	return v, nil
}

// decodeJSONValue walks the token stream instead of unmarshaling into maps;
// native map decoding would lose member order.
func decodeJSONValue(dec *json.Decoder, opt DecodeOpt) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, parseIssue(dec.InputOffset(), "%v", err)
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			out := tabwalk.NewTable()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, parseIssue(dec.InputOffset(), "%v", err)
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, parseIssue(dec.InputOffset(), "object key is not a string")
				}
				val, err := decodeJSONValue(dec, opt)
				if err != nil {
					return nil, err
				}
				out.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // closing '}'
				return nil, parseIssue(dec.InputOffset(), "%v", err)
			}
			return out, nil
		case '[':
			out := tabwalk.NewTable()
			i := 1
			for dec.More() {
				val, err := decodeJSONValue(dec, opt)
				if err != nil {
					return nil, err
				}
				out.Set(i, val) // null elements stay gaps
				i++
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return nil, parseIssue(dec.InputOffset(), "%v", err)
			}
			return out, nil
		}
		return nil, parseIssue(dec.InputOffset(), "unexpected delimiter %q", t.String())
	case string:
		return t, nil
	case bool:
		return t, nil
	case json.Number:
		return convertNumber(t, opt)
	case nil:
		return nil, nil
	}
	return nil, parseIssue(dec.InputOffset(), "unexpected token %v", tok)
}

func convertNumber(n json.Number, opt DecodeOpt) (any, error) {
	if opt.Numbers == NumberAuto {
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return nil, parseIssue(-1, "bad number %q", n.String())
	}
	return f, nil
}

// ToJSON encodes a tabwalk value as JSON. Tables whose keys form one
// contiguous positional run encode as arrays, any other Table as an object
// keyed by each key's text form. Cyclic data is rejected.
func ToJSON(v any) ([]byte, error) {
	n, err := toNative(v, map[any]bool{})
	if err != nil {
		return nil, err
	}
	return json.Marshal(n)
}

func parseIssue(offset int64, format string, args ...any) error {
	return tabwalk.Issues{tabwalk.Issue{
		Path:    "/",
		Code:    tabwalk.CodeParseError,
		Message: fmt.Sprintf(format, args...),
		Offset:  offset,
	}}
}

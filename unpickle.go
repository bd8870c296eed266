package tabwalk

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tabwalk/tabwalk/i18n"
	"github.com/tabwalk/tabwalk/internal/scan"
)

// Unpickle evaluates pickle literal text back into a value: nil, bool, int64,
// float64, string, or *Table for containers. Together with Pickle it forms
// the round-trip contract: for any acyclic value built from the accepted
// terminals, Unpickle(Pickle(v)) is deep-equal to v.
func Unpickle(text string) (any, error) {
	p := &unpickler{s: scan.New(text)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != scan.EOF {
		return nil, p.errorf(p.tok.Offset, "trailing input after value")
	}
	return v, nil
}

type unpickler struct {
	s   *scan.Scanner
	tok scan.Token
}

func (p *unpickler) advance() error {
	tok, err := p.s.Next()
	if err != nil {
		if se, ok := err.(*scan.Error); ok {
			return p.errorf(se.Offset, "%s", se.Msg)
		}
		return p.errorf(-1, "%v", err)
	}
	p.tok = tok
	return nil
}

func (p *unpickler) errorf(offset int64, format string, args ...any) error {
	return Issues{Issue{
		Path:    "/",
		Code:    CodeParseError,
		Message: fmt.Sprintf("%s: %s", i18n.T(CodeParseError, nil), fmt.Sprintf(format, args...)),
		Offset:  offset,
	}}
}

func (p *unpickler) value() (any, error) {
	tok := p.tok
	switch tok.Kind {
	case scan.Ident:
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch tok.Text {
		case "nil":
			return nil, nil
		case "true":
			return true, nil
		case "false":
			return false, nil
		case "nan":
			return math.NaN(), nil
		case "inf", "+inf":
			return math.Inf(1), nil
		case "-inf":
			return math.Inf(-1), nil
		}
		return nil, p.errorf(tok.Offset, "unexpected identifier %q", tok.Text)
	case scan.String:
		if err := p.advance(); err != nil {
			return nil, err
		}
		s, err := strconv.Unquote(tok.Text)
		if err != nil {
			return nil, p.errorf(tok.Offset, "bad string literal %s", tok.Text)
		}
		return s, nil
	case scan.Number:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return parseNumber(tok, p)
	case scan.LBrace:
		return p.table()
	}
	return nil, p.errorf(tok.Offset, "expected a value, found %s", tok.Kind)
}

func parseNumber(tok scan.Token, p *unpickler) (any, error) {
	// Integers stay integral; anything with a fraction or exponent becomes a
	// float, matching what the pickle emitter distinguishes.
	if !strings.ContainsAny(tok.Text, ".eE") || strings.HasPrefix(tok.Text, "0x") || strings.HasPrefix(tok.Text, "0X") {
		if n, err := strconv.ParseInt(tok.Text, 0, 64); err == nil {
			return n, nil
		}
	}
	f, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		return nil, p.errorf(tok.Offset, "bad number literal %q", tok.Text)
	}
	return f, nil
}

func (p *unpickler) table() (any, error) {
	open := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	t := NewTable()
	first := true
	for p.tok.Kind != scan.RBrace {
		if p.tok.Kind == scan.EOF {
			return nil, p.errorf(open.Offset, "unterminated container")
		}
		if !first {
			if p.tok.Kind != scan.Comma {
				return nil, p.errorf(p.tok.Offset, "expected ',' or '}', found %s", p.tok.Kind)
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		if p.tok.Kind != scan.LBracket {
			return nil, p.errorf(p.tok.Offset, "expected '[', found %s", p.tok.Kind)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		key, err := p.value()
		if err != nil {
			return nil, err
		}
		if p.tok.Kind != scan.RBracket {
			return nil, p.errorf(p.tok.Offset, "expected ']', found %s", p.tok.Kind)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.Kind != scan.Assign {
			return nil, p.errorf(p.tok.Offset, "expected '=', found %s", p.tok.Kind)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		if key == nil {
			return nil, p.errorf(open.Offset, "nil container key")
		}
		t.Set(key, val)
		first = false
	}
	return t, p.advance()
}

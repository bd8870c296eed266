// Package scan tokenizes pickle literal text. The root package owns the
// grammar; this layer only produces tokens with byte offsets so syntax
// errors can point at the offending input.
package scan

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind discriminates tokens.
type Kind int

const (
	EOF Kind = iota
	LBrace
	RBrace
	LBracket
	RBracket
	Assign
	Comma
	String // Text still carries the surrounding quotes.
	Number
	Ident // nil, true, false, nan, inf, -inf
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of input"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	case Assign:
		return "'='"
	case Comma:
		return "','"
	case String:
		return "string"
	case Number:
		return "number"
	case Ident:
		return "identifier"
	}
	return "unknown"
}

// Token is one lexical element with its byte offset into the source.
type Token struct {
	Kind   Kind
	Text   string
	Offset int64
}

// Error is a lexical failure with location.
type Error struct {
	Offset int64
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Msg, e.Offset)
}

// Scanner walks the source one token at a time.
type Scanner struct {
	src string
	off int
}

// New returns a Scanner over src.
func New(src string) *Scanner {
	return &Scanner{src: src}
}

// Next returns the next token, or an *Error for malformed input.
func (s *Scanner) Next() (Token, error) {
	s.skipSpace()
	start := s.off
	if s.off >= len(s.src) {
		return Token{Kind: EOF, Offset: int64(start)}, nil
	}
	c := s.src[s.off]
	switch c {
	case '{':
		s.off++
		return Token{Kind: LBrace, Text: "{", Offset: int64(start)}, nil
	case '}':
		s.off++
		return Token{Kind: RBrace, Text: "}", Offset: int64(start)}, nil
	case '[':
		s.off++
		return Token{Kind: LBracket, Text: "[", Offset: int64(start)}, nil
	case ']':
		s.off++
		return Token{Kind: RBracket, Text: "]", Offset: int64(start)}, nil
	case '=':
		s.off++
		return Token{Kind: Assign, Text: "=", Offset: int64(start)}, nil
	case ',':
		s.off++
		return Token{Kind: Comma, Text: ",", Offset: int64(start)}, nil
	case '"':
		return s.scanString(start)
	}
	if c == '-' || c == '+' {
		if s.off+1 < len(s.src) && isLetter(s.src[s.off+1]) {
			// -inf
			s.off++
			tok, err := s.scanIdent(start)
			if err != nil {
				return tok, err
			}
			tok.Text = string(c) + tok.Text
			return tok, nil
		}
		return s.scanNumber(start)
	}
	if c >= '0' && c <= '9' || c == '.' {
		return s.scanNumber(start)
	}
	if isLetter(c) {
		return s.scanIdent(start)
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.off:])
	return Token{Offset: int64(start)}, &Error{Offset: int64(start), Msg: fmt.Sprintf("unexpected character %q", r)}
}

func (s *Scanner) skipSpace() {
	for s.off < len(s.src) {
		r, sz := utf8.DecodeRuneInString(s.src[s.off:])
		if !unicode.IsSpace(r) {
			return
		}
		s.off += sz
	}
}

func (s *Scanner) scanString(start int) (Token, error) {
	s.off++ // opening quote
	for s.off < len(s.src) {
		switch s.src[s.off] {
		case '\\':
			s.off += 2
		case '"':
			s.off++
			return Token{Kind: String, Text: s.src[start:s.off], Offset: int64(start)}, nil
		case '\n':
			return Token{}, &Error{Offset: int64(start), Msg: "newline in string"}
		default:
			s.off++
		}
	}
	return Token{}, &Error{Offset: int64(start), Msg: "unterminated string"}
}

func (s *Scanner) scanNumber(start int) (Token, error) {
	s.off++
	for s.off < len(s.src) {
		c := s.src[s.off]
		if c >= '0' && c <= '9' || c == '.' || c == 'e' || c == 'E' || c == 'x' || c == 'X' ||
			isHexLetter(c) ||
			((c == '+' || c == '-') && (s.src[s.off-1] == 'e' || s.src[s.off-1] == 'E')) {
			s.off++
			continue
		}
		break
	}
	return Token{Kind: Number, Text: s.src[start:s.off], Offset: int64(start)}, nil
}

func (s *Scanner) scanIdent(start int) (Token, error) {
	from := s.off
	for s.off < len(s.src) && isLetter(s.src[s.off]) {
		s.off++
	}
	word := s.src[from:s.off]
	switch strings.ToLower(word) {
	case "nil", "true", "false", "nan", "inf":
		return Token{Kind: Ident, Text: strings.ToLower(word), Offset: int64(start)}, nil
	}
	return Token{}, &Error{Offset: int64(start), Msg: fmt.Sprintf("unknown identifier %q", word)}
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isHexLetter(c byte) bool {
	return c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

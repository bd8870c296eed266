package scan

import "testing"

func kinds(t *testing.T, src string) []Kind {
	t.Helper()
	s := New(src)
	var out []Kind
	for {
		tok, err := s.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		out = append(out, tok.Kind)
		if tok.Kind == EOF {
			return out
		}
	}
}

func TestScanner_TokenSequence(t *testing.T) {
	got := kinds(t, `{[1]="a",[-2.5]=nil}`)
	want := []Kind{LBrace, LBracket, Number, RBracket, Assign, String, Comma,
		LBracket, Number, RBracket, Assign, Ident, RBrace, EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScanner_SignedSpecialToken(t *testing.T) {
	s := New("-inf")
	tok, err := s.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if tok.Kind != Ident || tok.Text != "-inf" {
		t.Fatalf("tok = (%v,%q), want (Ident,-inf)", tok.Kind, tok.Text)
	}
}

func TestScanner_Offsets(t *testing.T) {
	s := New(`  "ab" 42`)
	tok, _ := s.Next()
	if tok.Kind != String || tok.Offset != 2 {
		t.Fatalf("string tok = (%v,%d), want offset 2", tok.Kind, tok.Offset)
	}
	tok, _ = s.Next()
	if tok.Kind != Number || tok.Offset != 7 {
		t.Fatalf("number tok = (%v,%d), want offset 7", tok.Kind, tok.Offset)
	}
}

func TestScanner_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"unterminated string", `"ab`},
		{"newline in string", "\"a\nb\""},
		{"unknown rune", "?"},
		{"unknown identifier", "bogus"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(tc.in)
			if _, err := s.Next(); err == nil {
				t.Fatalf("Next(%q) succeeded, want error", tc.in)
			}
		})
	}
}

package arith

import (
	"errors"
	"testing"
)

type lexWant struct {
	kind TokenKind
	text string
	pos  int
}

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexWant
		// bad is the offset of an illegal character, or -1 if none.
		bad int
	}{
		// spaces
		{"", nil, -1},
		{" \t \r\n ", nil, -1},
		// numbers
		{"0", []lexWant{{TokenInt, "0", 0}}, -1},
		{"9876543210", []lexWant{{TokenInt, "9876543210", 0}}, -1},
		{"123456789012345678901234567890", []lexWant{{TokenInt, "123456789012345678901234567890", 0}}, -1},
		{"1 0", []lexWant{{TokenInt, "1", 0}, {TokenInt, "0", 2}}, -1},
		{"1.0", []lexWant{{TokenFloat, "1.0", 0}}, -1},
		{"1.", []lexWant{{TokenFloat, "1.", 0}}, -1},
		{"1..", nil, 2},
		{"1.1.1", nil, 3},
		{".1", nil, 0},
		{"-1", []lexWant{{TokenMinus, "-", 0}, {TokenInt, "1", 1}}, -1},
		{"1a", nil, 1},
		// operators
		{"1+0", []lexWant{{TokenInt, "1", 0}, {TokenPlus, "+", 1}, {TokenInt, "0", 2}}, -1},
		{"1*0", []lexWant{{TokenInt, "1", 0}, {TokenMul, "*", 1}, {TokenInt, "0", 2}}, -1},
		{"1/0", []lexWant{{TokenInt, "1", 0}, {TokenDiv, "/", 1}, {TokenInt, "0", 2}}, -1},
		{"--", []lexWant{{TokenMinus, "-", 0}, {TokenMinus, "-", 1}}, -1},
		{"+ -", []lexWant{{TokenPlus, "+", 0}, {TokenMinus, "-", 2}}, -1},
		// brackets
		{"()", []lexWant{{TokenLParen, "(", 0}, {TokenRParen, ")", 1}}, -1},
		{"(1)", []lexWant{{TokenLParen, "(", 0}, {TokenInt, "1", 1}, {TokenRParen, ")", 2}}, -1},
		{"[]", nil, 0},
		// erroneous symbols
		{"$", nil, 0},
		{"2^3", nil, 1},
		{"1 ^ 2", nil, 2},
		{"1 $ 2", nil, 2},
		{"$$", nil, 0},
		{"π", nil, 0},
		{"1 + π", nil, 4},
		{"\xff", nil, 0},
	}

	for _, c := range cases {
		toks, err := Lex(c.src, "test")
		if c.bad >= 0 {
			var ice *IllegalCharError
			if !errors.As(err, &ice) {
				t.Errorf("scanning %q: expected illegal character error, got %v", c.src, err)
				continue
			}
			if toks != nil {
				t.Errorf("scanning %q: got tokens %v with error", c.src, toks)
			}
			s := ice.Span()
			if s.Start.Offset != c.bad {
				t.Errorf("scanning %q: error at %d, want %d", c.src, s.Start.Offset, c.bad)
			}
			if s.End.Col != s.Start.Col+1 {
				t.Errorf("scanning %q: error spans columns %d to %d", c.src, s.Start.Col, s.End.Col)
			}
			continue
		}
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
			continue
		}
		if len(toks) != len(c.tokens)+1 {
			t.Errorf("scanning %q: want %d tokens, got %v", c.src, len(c.tokens)+1, toks)
			continue
		}
		for i, want := range c.tokens {
			got := toks[i]
			if got.Kind != want.kind || got.Text != want.text || got.Start.Offset != want.pos {
				t.Errorf("scanning %q: want %v:%s@%d, got %v:%s@%d", c.src, want.kind, want.text, want.pos, got.Kind, got.Text, got.Start.Offset)
			}
			if got.End.Offset != want.pos+len(want.text) {
				t.Errorf("scanning %q: token %v ends at %d", c.src, got, got.End.Offset)
			}
		}
		eof := toks[len(toks)-1]
		if eof.Kind != TokenEOF {
			t.Errorf("scanning %q: last token is %v, not EOF", c.src, eof)
		}
		if eof.Start.Offset != len(c.src) || eof.End.Offset != len(c.src) {
			t.Errorf("scanning %q: EOF spans %d to %d", c.src, eof.Start.Offset, eof.End.Offset)
		}
	}
}

func TestLexValues(t *testing.T) {
	cases := []struct {
		src   string
		float bool
		str   string
	}{
		{"0", false, "0"},
		{"007", false, "7"},
		{"123456789012345678901234567890", false, "123456789012345678901234567890"},
		{"2.5", true, "2.5"},
		{"2.", true, "2.0"},
		{"0.0", true, "0.0"},
		{"0.1", true, "0.1"},
	}
	for _, c := range cases {
		toks, err := Lex(c.src, "test")
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
			continue
		}
		v := toks[0].Value
		if v.IsFloat() != c.float {
			t.Errorf("scanning %q: IsFloat is %t", c.src, v.IsFloat())
		}
		if v.String() != c.str {
			t.Errorf("scanning %q: value is %s, want %s", c.src, v, c.str)
		}
	}
}

func TestLexPositions(t *testing.T) {
	toks, err := Lex("1 +\n\t(22\n*3)", "pos")
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		line, col int
	}{
		{0, 0}, {0, 2}, {1, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}, {2, 3},
	}
	if len(toks) != len(want) {
		t.Fatalf("want %d tokens, got %v", len(want), toks)
	}
	for i, w := range want {
		p := toks[i].Start
		if p.Line != w.line || p.Col != w.col {
			t.Errorf("token %d %v at %d:%d, want %d:%d", i, toks[i], p.Line, p.Col, w.line, w.col)
		}
		if p.Name != "pos" {
			t.Errorf("token %d has source name %q", i, p.Name)
		}
	}
}

func TestLexSpansIncrease(t *testing.T) {
	srcs := []string{
		"1+2",
		"  3.25 *\t(4 - -5) / 6 + 2  ",
		"((((1))))",
		"1\n2\n3",
		"12.5.",
	}
	for _, src := range srcs {
		toks, err := Lex(src, "test")
		if err != nil {
			// Only the last source is invalid.
			continue
		}
		last := 0
		for _, tok := range toks {
			if tok.Start.Offset < last || tok.End.Offset < tok.Start.Offset {
				t.Errorf("scanning %q: token %v spans %d to %d after %d", src, tok, tok.Start.Offset, tok.End.Offset, last)
			}
			last = tok.End.Offset
		}
	}
}

func TestPositionAdvance(t *testing.T) {
	p := Start("adv", "a\nπb")
	want := []Position{
		{Offset: 0, Line: 0, Col: 0},
		{Offset: 1, Line: 0, Col: 1},
		{Offset: 2, Line: 1, Col: 0},
		{Offset: 4, Line: 1, Col: 1},
		{Offset: 5, Line: 1, Col: 2},
		{Offset: 5, Line: 1, Col: 2},
	}
	for i, w := range want {
		if p.Offset != w.Offset || p.Line != w.Line || p.Col != w.Col {
			t.Errorf("step %d: got %d/%d:%d, want %d/%d:%d", i, p.Offset, p.Line, p.Col, w.Offset, w.Line, w.Col)
		}
		q := p
		p = p.Advance()
		if q.Offset != w.Offset {
			t.Errorf("step %d: Advance modified its receiver", i)
		}
	}
	if _, ok := p.Char(); ok {
		t.Errorf("Char at end of text reported a character")
	}
	if s := Start("x", "").String(); s != "x:1:1" {
		t.Errorf("String of start position is %q", s)
	}
}

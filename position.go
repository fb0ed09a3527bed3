package arith

import (
	"strconv"
	"unicode/utf8"
)

// Position is a cursor into a named source text. Line and Col are 0-based;
// Col counts characters and Offset counts bytes.
type Position struct {
	Offset int
	Line   int
	Col    int
	// Name identifies the source, e.g. a file name or "<stdin>".
	Name string
	// Text is the complete source, kept for rendering diagnostics.
	Text string
}

// Start returns the position of the first character of text.
func Start(name, text string) Position {
	return Position{Name: name, Text: text}
}

// Char returns the character at p. The second result is false at the end of
// the text. Invalid UTF-8 decodes as one utf8.RuneError per byte.
func (p Position) Char() (rune, bool) {
	if p.Offset >= len(p.Text) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(p.Text[p.Offset:])
	return r, true
}

// Advance returns the position one character past p. At the end of the text,
// the result is p.
func (p Position) Advance() Position {
	if p.Offset >= len(p.Text) {
		return p
	}
	r, sz := utf8.DecodeRuneInString(p.Text[p.Offset:])
	p.Offset += sz
	p.Col++
	if r == '\n' {
		p.Line++
		p.Col = 0
	}
	return p
}

// String formats p as name:line:col with 1-based line and column.
func (p Position) String() string {
	return p.Name + ":" + strconv.Itoa(p.Line+1) + ":" + strconv.Itoa(p.Col+1)
}

// Span is a half-open range of source text.
type Span struct {
	Start, End Position
}

// Contains reports whether s covers all of t.
func (s Span) Contains(t Span) bool {
	return s.Start.Offset <= t.Start.Offset && t.End.Offset <= s.End.Offset
}

// point returns the span of the single character at p.
func point(p Position) Span {
	return Span{Start: p, End: p.Advance()}
}

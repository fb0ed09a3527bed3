package arith

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Render formats an error as a multi-line report. For an InputError, the
// report quotes the offending source with carets beneath the error's span,
// and runtime errors are preceded by a traceback. Other errors render as
// their Error method.
func Render(err error) string {
	var ie InputError
	if !errors.As(err, &ie) {
		return err.Error()
	}
	s := ie.Span()
	var b strings.Builder
	var re *RuntimeError
	rt := errors.As(err, &re)
	if rt {
		b.WriteString(re.Traceback())
	}
	b.WriteString(ie.Kind().String())
	b.WriteString(": ")
	b.WriteString(ie.Details())
	b.WriteByte('\n')
	if !rt {
		b.WriteString("File " + s.Start.Name + ", line " + strconv.Itoa(s.Start.Line+1) + "\n")
	}
	b.WriteByte('\n')
	b.WriteString(Arrows(s.Start.Text, s))
	return b.String()
}

// Traceback formats the chain of contexts active at the error, outermost
// first, e.g.
//
//	Traceback (most recent call last):
//	  File <stdin>, line 1, in <Program>
//
// Line numbers are 1-based.
func (err *RuntimeError) Traceback() string {
	var frames []string
	pos := err.span.Start
	for ctx := err.Context; ctx != nil; ctx = ctx.Parent {
		frames = append(frames, "  File "+pos.Name+", line "+strconv.Itoa(pos.Line+1)+", in "+ctx.Name+"\n")
		pos = ctx.Call
	}
	var b strings.Builder
	b.WriteString("Traceback (most recent call last):\n")
	for i := len(frames) - 1; i >= 0; i-- {
		b.WriteString(frames[i])
	}
	return b.String()
}

// Arrows quotes the lines of text covered by s, each followed by a line of
// carets. On the first and last lines the carets run from the start and end
// columns of s; on lines between they cover the whole line. An empty span
// gets a single caret. Tabs are removed from the result.
func Arrows(text string, s Span) string {
	ls := clamp(s.Start.Offset, len(text))
	ls = strings.LastIndexByte(text[:ls], '\n') + 1
	n := s.End.Line - s.Start.Line + 1
	if n < 1 {
		n = 1
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		le := strings.IndexByte(text[ls:], '\n')
		if le < 0 {
			le = len(text)
		} else {
			le += ls
		}
		line := text[ls:le]
		cs, ce := 0, utf8.RuneCountInString(line)
		if i == 0 {
			cs = s.Start.Col
		}
		if i == n-1 {
			ce = s.End.Col
		}
		if n == 1 && ce <= cs {
			ce = cs + 1
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", cs))
		if ce > cs {
			b.WriteString(strings.Repeat("^", ce-cs))
		}
		if le == len(text) {
			break
		}
		ls = le + 1
	}
	return strings.ReplaceAll(b.String(), "\t", "")
}

func clamp(k, n int) int {
	switch {
	case k < 0:
		return 0
	case k > n:
		return n
	default:
		return k
	}
}

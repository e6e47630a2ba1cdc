package tagtmpl

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position converts a byte offset in src to a 1-based line and a 1-based
// column counted in runes. Offsets outside src are clamped to it.
func Position(src string, offset int) (line, col int) {
	before := src[:clamp(offset, len(src))]
	line = strings.Count(before, "\n") + 1
	if k := strings.LastIndexByte(before, '\n'); k >= 0 {
		before = before[k+1:]
	}
	return line, utf8.RuneCountInString(before) + 1
}

// Snippet formats an error from parsing or evaluating src together with the
// source line it refers to. Parse errors are marked with a caret; evaluation
// errors underline the whole expression, up to the end of its first line.
// Errors that do not come from src are formatted as their messages.
//
//	1:8: undefined variable: "missing"
//	   1 | <p>{x}{missing}</p>
//	     |        ^~~~~~~
func Snippet(src string, err error) string {
	var (
		start, end int
		msg        string
	)
	var perr *ParseError
	var eerr *EvalError
	switch {
	case errors.As(err, &perr):
		start, end = perr.Offset, perr.Offset
		msg = strings.TrimPrefix(perr.Error(), errpos(perr.Offset, ""))
	case errors.As(err, &eerr):
		start, end = eerr.Range.Start, eerr.Range.End
		msg = strings.TrimPrefix(eerr.Error(), errpos(eerr.Range.Start, ""))
	default:
		return err.Error()
	}
	start = clamp(start, len(src))
	end = clamp(end, len(src))
	line, col := Position(src, start)
	lineStart := strings.LastIndexByte(src[:start], '\n') + 1
	text := src[lineStart:]
	if k := strings.IndexByte(text, '\n'); k >= 0 {
		text = text[:k]
	}
	if lineEnd := lineStart + len(text); end > lineEnd {
		end = lineEnd
	}
	width := 1
	if end > start {
		width = utf8.RuneCountInString(src[start:end])
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d: %s\n", line, col, msg)
	fmt.Fprintf(&b, "%4d | %s\n", line, text)
	fmt.Fprintf(&b, "     | %s^%s\n", strings.Repeat(" ", col-1), strings.Repeat("~", width-1))
	return b.String()
}

func clamp(x, n int) int {
	if x < 0 {
		return 0
	}
	if x > n {
		return n
	}
	return x
}

package loaders

import (
	"fmt"
	"strings"
)

// SyntaxError is a grammar-level failure: an unexpected token, an
// unterminated string or a malformed literal. Syntax errors are fatal
// to the parse and reported one at a time.
type SyntaxError struct {
	Span Span
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.Msg)
}

// SemanticError is a build-time failure: a missing or mistyped field,
// an unknown object type, wrong camera cardinality or degenerate
// geometry. Unlike syntax errors, semantic errors are accumulated
// across the whole input.
type SemanticError struct {
	Span Span
	Msg  string
}

func (e *SemanticError) Error() string {
	return e.Msg
}

// ErrorList is the collection of semantic errors found while building
// a scene. It is never empty when returned.
type ErrorList []*SemanticError

func (l ErrorList) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Msg
	}
	return fmt.Sprintf("%d scene error(s): %s", len(l), strings.Join(msgs, "; "))
}

// lineCol converts a byte offset into 1-based line and column numbers.
func lineCol(src string, offset int) (line, col int) {
	line, col = 1, 1
	if offset > len(src) {
		offset = len(src)
	}
	for _, c := range src[:offset] {
		if c == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// annotate renders a single diagnostic with the offending source line
// and a caret underline:
//
//	error: unknown object type 'Cube'
//	  |
//	3 | Cube { pos: (0, 0, 0) }
//	  | ^^^^
func annotate(src string, span Span, msg string) string {
	line, col := lineCol(src, span.Start)

	lines := strings.Split(src, "\n")
	if line-1 >= len(lines) {
		return fmt.Sprintf("error: %s\n --> line %d, column %d\n", msg, line, col)
	}
	text := lines[line-1]

	// Underline the span, capped at the end of the line
	width := span.End - span.Start
	if width < 1 {
		width = 1
	}
	if col-1+width > len(text) {
		width = len(text) - (col - 1)
		if width < 1 {
			width = 1
		}
	}

	num := fmt.Sprintf("%d", line)
	pad := strings.Repeat(" ", len(num))
	underline := strings.Repeat(" ", col-1) + strings.Repeat("^", width)

	return fmt.Sprintf("error: %s\n%s |\n%s | %s\n%s | %s\n", msg, pad, num, text, pad, underline)
}

// AnnotateError renders err against the source text it came from,
// with line numbers and caret underlines for every diagnostic.
// Unrecognized error types fall back to err.Error().
func AnnotateError(src string, err error) string {
	switch e := err.(type) {
	case *SyntaxError:
		return annotate(src, e.Span, e.Msg)
	case *SemanticError:
		return annotate(src, e.Span, e.Msg)
	case ErrorList:
		var b strings.Builder
		for i, se := range e {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(annotate(src, se.Span, se.Msg))
		}
		return b.String()
	}
	return err.Error()
}

package loaders

import (
	"errors"
	"strings"
	"testing"
)

func TestLineCol(t *testing.T) {
	src := "abc\ndef\n\nghi"

	tests := []struct {
		offset    int
		line, col int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 1, 4},  // The newline itself
		{4, 2, 1},  // First char of line 2
		{8, 3, 1},  // The empty line
		{9, 4, 1},  // First char of line 4
		{11, 4, 3},
		{99, 4, 4}, // Clamped past the end
	}

	for _, tt := range tests {
		line, col := lineCol(src, tt.offset)
		if line != tt.line || col != tt.col {
			t.Errorf("lineCol(%d) = (%d, %d), want (%d, %d)", tt.offset, line, col, tt.line, tt.col)
		}
	}
}

func TestAnnotate(t *testing.T) {
	src := "Camera { }\nCube { pos: (0, 0, 0) }\n"
	// Span of "Cube" on line 2
	got := annotate(src, Span{11, 15}, "unknown object type 'Cube'")

	want := "error: unknown object type 'Cube'\n" +
		"  |\n" +
		"2 | Cube { pos: (0, 0, 0) }\n" +
		"  | ^^^^\n"
	if got != want {
		t.Errorf("annotate:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestAnnotate_MidLineSpan(t *testing.T) {
	src := `Sphere { r: "big" }`
	// Span of `"big"`
	got := annotate(src, Span{12, 17}, "expected a number, got string")

	if !strings.Contains(got, `1 | Sphere { r: "big" }`) {
		t.Errorf("missing source line:\n%s", got)
	}
	if !strings.Contains(got, "| "+strings.Repeat(" ", 12)+"^^^^^") {
		t.Errorf("caret misplaced:\n%s", got)
	}
}

func TestAnnotateError(t *testing.T) {
	src := "Cube { }"

	syn := &SyntaxError{Span: Span{0, 4}, Msg: "bad"}
	if out := AnnotateError(src, syn); !strings.Contains(out, "^^^^") {
		t.Errorf("syntax error not annotated:\n%s", out)
	}

	list := ErrorList{
		{Span: Span{0, 4}, Msg: "first"},
		{Span: Span{5, 6}, Msg: "second"},
	}
	out := AnnotateError(src, list)
	if !strings.Contains(out, "error: first") || !strings.Contains(out, "error: second") {
		t.Errorf("list not fully annotated:\n%s", out)
	}

	plain := errors.New("plain")
	if out := AnnotateError(src, plain); out != "plain" {
		t.Errorf("fallback = %q, want %q", out, "plain")
	}
}

func TestErrorList_Error(t *testing.T) {
	list := ErrorList{
		{Msg: "first"},
		{Msg: "second"},
	}
	got := list.Error()
	if !strings.Contains(got, "2 scene error(s)") {
		t.Errorf("missing count: %q", got)
	}
	if !strings.Contains(got, "first; second") {
		t.Errorf("missing messages: %q", got)
	}
}

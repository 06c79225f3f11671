package loaders

import (
	"fmt"
	"strings"
)

// Ident is an identifier with its source span.
type Ident struct {
	Name string
	Span Span
}

// Literal is a parsed value from the scene description language: a
// string, an integer, a float, a tuple of literals or a nested object.
// The variants form a closed set; the grammar cannot produce cycles,
// so each tuple and object owns its children outright.
type Literal interface {
	// Span returns the source range covered by the literal.
	Span() Span
	// TypeName renders the shape of the literal for type-mismatch
	// diagnostics, e.g. "(int, int, float)".
	TypeName() string
}

// Field is a single `name: value` entry of an object.
type Field struct {
	Name  Ident
	Value Literal
}

// ObjectDecl is a top-level `Name { fields }` block. Field order is
// preserved as written.
type ObjectDecl struct {
	Name   Ident
	Fields []Field
}

// StringLit is a double-quoted string literal, quotes stripped.
type StringLit struct {
	Value string
	span  Span
}

// IntLit is a decimal integer literal.
type IntLit struct {
	Value int64
	span  Span
}

// FloatLit is a decimal float literal.
type FloatLit struct {
	Value float64
	span  Span
}

// TupleLit is a parenthesized sequence of literals.
type TupleLit struct {
	Items []Literal
	span  Span
}

// ObjectLit is a nested `{ fields }` object literal.
type ObjectLit struct {
	Fields []Field
	span   Span
}

func (l *StringLit) Span() Span { return l.span }
func (l *IntLit) Span() Span    { return l.span }
func (l *FloatLit) Span() Span  { return l.span }
func (l *TupleLit) Span() Span  { return l.span }
func (l *ObjectLit) Span() Span { return l.span }

func (l *StringLit) TypeName() string { return "string" }
func (l *IntLit) TypeName() string    { return "int" }
func (l *FloatLit) TypeName() string  { return "float" }

func (l *TupleLit) TypeName() string {
	names := make([]string, len(l.Items))
	for i, item := range l.Items {
		names[i] = item.TypeName()
	}
	return fmt.Sprintf("(%s)", strings.Join(names, ", "))
}

func (l *ObjectLit) TypeName() string { return "{...}" }

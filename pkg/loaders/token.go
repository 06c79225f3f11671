package loaders

import "fmt"

// Span is a half-open byte range [Start, End) into the scene source
// text. Every token, identifier and literal carries one so that
// diagnostics can point at the offending text.
type Span struct {
	Start int
	End   int
}

// tokenKind enumerates the token types of the scene description language.
type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenIdent
	tokenString
	tokenInt
	tokenFloat
	tokenLParen
	tokenRParen
	tokenLBrace
	tokenRBrace
	tokenColon
	tokenComma
	tokenSemicolon
)

func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "end of input"
	case tokenIdent:
		return "identifier"
	case tokenString:
		return "string"
	case tokenInt:
		return "integer"
	case tokenFloat:
		return "float"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	case tokenLBrace:
		return "'{'"
	case tokenRBrace:
		return "'}'"
	case tokenColon:
		return "':'"
	case tokenComma:
		return "','"
	case tokenSemicolon:
		return "';'"
	}
	return fmt.Sprintf("token(%d)", int(k))
}

// token is a single lexeme with its source span.
type token struct {
	kind tokenKind
	text string // Verbatim source slice, quotes included for strings
	span Span
}

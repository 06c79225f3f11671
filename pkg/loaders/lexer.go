package loaders

import "fmt"

// lexer scans scene source text into a stream of tokens. The language
// is ASCII; strings may not contain escapes or embedded quotes.
type lexer struct {
	src string
	pos int
}

func newLexer(src string) *lexer {
	return &lexer{src: src}
}

// next returns the next token, skipping whitespace and // comments.
func (l *lexer) next() (token, *SyntaxError) {
	l.skipSpace()

	start := l.pos
	if l.pos >= len(l.src) {
		return token{kind: tokenEOF, span: Span{start, start}}, nil
	}

	c := l.src[l.pos]
	switch {
	case c == '(':
		return l.punct(tokenLParen), nil
	case c == ')':
		return l.punct(tokenRParen), nil
	case c == '{':
		return l.punct(tokenLBrace), nil
	case c == '}':
		return l.punct(tokenRBrace), nil
	case c == ':':
		return l.punct(tokenColon), nil
	case c == ',':
		return l.punct(tokenComma), nil
	case c == ';':
		return l.punct(tokenSemicolon), nil
	case c == '"':
		return l.scanString()
	case c == '-' || isDigit(c):
		return l.scanNumber()
	case isIdentStart(c):
		return l.scanIdent(), nil
	}

	return token{}, &SyntaxError{
		Span: Span{start, start + 1},
		Msg:  fmt.Sprintf("unexpected character %q", c),
	}
}

func (l *lexer) punct(kind tokenKind) token {
	tok := token{kind: kind, text: l.src[l.pos : l.pos+1], span: Span{l.pos, l.pos + 1}}
	l.pos++
	return tok
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			l.pos++
			continue
		}
		// Line comment
		if c == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/' {
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
			continue
		}
		return
	}
}

// scanString scans a double-quoted string without escape sequences.
func (l *lexer) scanString() (token, *SyntaxError) {
	start := l.pos
	l.pos++ // opening quote

	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '"' {
			l.pos++
			return token{
				kind: tokenString,
				text: l.src[start:l.pos],
				span: Span{start, l.pos},
			}, nil
		}
		if c == '\n' {
			break
		}
		l.pos++
	}

	return token{}, &SyntaxError{
		Span: Span{start, l.pos},
		Msg:  "unterminated string",
	}
}

// scanNumber scans an integer or a float. A float requires digits on
// both sides of the decimal point; anything else is an integer.
func (l *lexer) scanNumber() (token, *SyntaxError) {
	start := l.pos
	if l.src[l.pos] == '-' {
		l.pos++
	}

	digits := 0
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
		digits++
	}
	if digits == 0 {
		return token{}, &SyntaxError{
			Span: Span{start, l.pos},
			Msg:  "expected digits after '-'",
		}
	}

	// A decimal point turns the token into a float, but only with
	// digits on both sides of it.
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		l.pos++
		fraction := 0
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
			fraction++
		}
		if fraction == 0 {
			return token{}, &SyntaxError{
				Span: Span{start, l.pos},
				Msg:  "expected digits after decimal point",
			}
		}
		return token{kind: tokenFloat, text: l.src[start:l.pos], span: Span{start, l.pos}}, nil
	}

	return token{kind: tokenInt, text: l.src[start:l.pos], span: Span{start, l.pos}}, nil
}

func (l *lexer) scanIdent() token {
	start := l.pos
	for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
		l.pos++
	}
	return token{kind: tokenIdent, text: l.src[start:l.pos], span: Span{start, l.pos}}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

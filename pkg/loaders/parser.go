package loaders

import (
	"fmt"
	"strconv"
)

// parser implements recursive descent over the scene grammar:
//
//	scene   = { object [";"] }
//	object  = Ident "{" fields "}"
//	fields  = { Ident ":" literal [","] }
//	literal = string | int | float | "(" literal {"," literal} ")" | "{" fields "}"
//
// The first syntax error aborts the parse; no partial result is
// produced.
type parser struct {
	lex  *lexer
	tok  token // Current lookahead token
	prev Span  // Span of the last consumed token
}

// parseObjects parses the full source into top-level object blocks.
func parseObjects(src string) ([]ObjectDecl, *SyntaxError) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var decls []ObjectDecl
	for p.tok.kind != tokenEOF {
		decl, err := p.parseObjectDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)

		// Object separator, optional after the last object
		for p.tok.kind == tokenSemicolon {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}

	return decls, nil
}

func (p *parser) advance() *SyntaxError {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.prev = p.tok.span
	p.tok = tok
	return nil
}

func (p *parser) expect(kind tokenKind) (token, *SyntaxError) {
	if p.tok.kind != kind {
		return token{}, p.unexpected(kind.String())
	}
	tok := p.tok
	if err := p.advance(); err != nil {
		return token{}, err
	}
	return tok, nil
}

func (p *parser) unexpected(expected string) *SyntaxError {
	if p.tok.kind == tokenEOF {
		return &SyntaxError{
			Span: p.tok.span,
			Msg:  fmt.Sprintf("unexpected end of input, expected %s", expected),
		}
	}
	return &SyntaxError{
		Span: p.tok.span,
		Msg:  fmt.Sprintf("unexpected %s %q, expected %s", p.tok.kind, p.tok.text, expected),
	}
}

func (p *parser) parseObjectDecl() (ObjectDecl, *SyntaxError) {
	name, err := p.expect(tokenIdent)
	if err != nil {
		return ObjectDecl{}, err
	}

	fields, err := p.parseFieldBlock()
	if err != nil {
		return ObjectDecl{}, err
	}

	return ObjectDecl{
		Name:   Ident{Name: name.text, Span: name.span},
		Fields: fields,
	}, nil
}

// parseFieldBlock parses "{ ident: literal, ... }" with an optional
// trailing comma.
func (p *parser) parseFieldBlock() ([]Field, *SyntaxError) {
	if _, err := p.expect(tokenLBrace); err != nil {
		return nil, err
	}

	var fields []Field
	for p.tok.kind != tokenRBrace {
		name, err := p.expect(tokenIdent)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenColon); err != nil {
			return nil, err
		}
		value, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}

		fields = append(fields, Field{
			Name:  Ident{Name: name.text, Span: name.span},
			Value: value,
		})

		if p.tok.kind != tokenComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(tokenRBrace); err != nil {
		return nil, err
	}

	return fields, nil
}

func (p *parser) parseLiteral() (Literal, *SyntaxError) {
	switch p.tok.kind {
	case tokenString:
		tok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &StringLit{
			Value: tok.text[1 : len(tok.text)-1], // Strip quotes
			span:  tok.span,
		}, nil

	case tokenInt:
		tok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		value, err := strconv.ParseInt(tok.text, 10, 64)
		if err != nil {
			return nil, &SyntaxError{
				Span: tok.span,
				Msg:  fmt.Sprintf("integer out of range: %s", tok.text),
			}
		}
		return &IntLit{Value: value, span: tok.span}, nil

	case tokenFloat:
		tok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		value, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, &SyntaxError{
				Span: tok.span,
				Msg:  fmt.Sprintf("malformed float: %s", tok.text),
			}
		}
		return &FloatLit{Value: value, span: tok.span}, nil

	case tokenLParen:
		return p.parseTuple()

	case tokenLBrace:
		start := p.tok.span.Start
		fields, err := p.parseFieldBlock()
		if err != nil {
			return nil, err
		}
		return &ObjectLit{Fields: fields, span: Span{start, p.prev.End}}, nil
	}

	return nil, p.unexpected("a literal value")
}

// parseTuple parses "( literal, literal, ... )".
func (p *parser) parseTuple() (Literal, *SyntaxError) {
	open, err := p.expect(tokenLParen)
	if err != nil {
		return nil, err
	}

	var items []Literal
	for p.tok.kind != tokenRParen {
		item, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		if p.tok.kind != tokenComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	closing, err := p.expect(tokenRParen)
	if err != nil {
		return nil, err
	}

	return &TupleLit{Items: items, span: Span{open.span.Start, closing.span.End}}, nil
}

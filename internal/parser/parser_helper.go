package parser

import (
	"fmt"

	"minic/internal/ast"
)

// advance consumes the current token. The cursor never moves past EOF, so
// reading at the end keeps yielding the EOF token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if tok.Type != EOF {
		p.current++
	}
	return tok
}

func (p *Parser) peek() Token {
	if p.current >= len(p.tokens) {
		return p.syntheticEOF()
	}
	return p.tokens[p.current]
}

// syntheticEOF covers token slices that were not produced by Tokenize.
func (p *Parser) syntheticEOF() Token {
	if len(p.tokens) == 0 {
		return Token{Type: EOF, Position: Position{Line: 1, Column: 1}}
	}
	last := p.tokens[len(p.tokens)-1]
	return Token{Type: EOF, Position: Position{
		Line:   last.Position.Line,
		Column: last.Position.Column + len(last.Lexeme),
		Offset: last.Position.Offset + len(last.Lexeme),
	}}
}

// fail records the first violation and always returns false.
func (p *Parser) fail(kind ErrorKind, tok Token, message string) bool {
	if p.err == nil {
		p.err = &ParseError{
			Kind:     kind,
			Message:  message,
			Position: tok.Position,
			Token:    tok,
		}
	}
	return false
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset + len(tok.Lexeme),
		Line:     tok.Position.Line,
		Column:   tok.Position.Column + len(tok.Lexeme),
	}
}

func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}

func describe(tok Token) string {
	switch tok.Type {
	case EOF:
		return "end of input"
	case IDENTIFIER:
		return fmt.Sprintf("identifier '%s'", tok.Lexeme)
	case NUMBER:
		return fmt.Sprintf("integer literal %s", tok.Lexeme)
	default:
		return fmt.Sprintf("'%s'", tok.Lexeme)
	}
}

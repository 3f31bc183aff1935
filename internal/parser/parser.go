package parser

import (
	"strconv"

	"minic/internal/ast"
)

// Parser builds an AST from a fully scanned token stream by recursive descent.
//
// Grammar:
//
//	program    ::= ( "int" | function )* EOF
//	function   ::= identifier "(" ")" "{" statement+ "}"
//	statement  ::= "return" integer-literal+ ";"
type Parser struct {
	filename string
	tokens   []Token
	current  int
	ast      *ast.AST
	err      *ParseError
}

func NewParser(filename string, tokens []Token) *Parser {
	return &Parser{
		filename: filename,
		tokens:   tokens,
		ast:      ast.NewAST(),
	}
}

// topLevelState names where the top-level loop is inside a declaration.
type topLevelState int

const (
	stateDeclOrEnd topLevelState = iota // expect 'int', a function name, or EOF
	stateParams                         // expect '(' ')'
	stateBody                           // expect '{' statement+ '}'
)

// Parse runs the grammar over the token stream and reports success. On
// failure Err describes the first violation and the tree must be discarded.
func (p *Parser) Parse() bool {
	state := stateDeclOrEnd
	var name Token

	for {
		switch state {
		case stateDeclOrEnd:
			tok := p.advance()
			switch tok.Type {
			case INT:
				// return type marker, nothing to record
			case IDENTIFIER:
				name = tok
				state = stateParams
			case EOF:
				return true
			default:
				return p.fail(UnexpectedToken, tok, "expected 'int', a function name or end of input, found "+describe(tok))
			}

		case stateParams:
			if !p.parseEmptyParams() {
				return false
			}
			state = stateBody

		case stateBody:
			fn, ok := p.parseFunction(name)
			if !ok {
				return false
			}
			p.ast.Root.AddFunction(fn)
			state = stateDeclOrEnd
		}
	}
}

// AST returns the tree built so far. It is complete only after Parse succeeded.
func (p *Parser) AST() *ast.AST {
	return p.ast
}

// Err returns the failure recorded by Parse, or nil.
func (p *Parser) Err() *ParseError {
	return p.err
}

func (p *Parser) parseEmptyParams() bool {
	if tok := p.advance(); tok.Type != LEFT_PAREN {
		return p.fail(MissingLeftParen, tok, "expected '(' after function name, found "+describe(tok))
	}
	if tok := p.advance(); tok.Type != RIGHT_PAREN {
		return p.fail(MissingRightParen, tok, "expected ')' to close the empty parameter list, found "+describe(tok))
	}
	return true
}

func (p *Parser) parseFunction(name Token) (*ast.Function, bool) {
	if tok := p.advance(); tok.Type != LEFT_BRACE {
		return nil, p.fail(MissingLeftBrace, tok, "expected '{' to start function body, found "+describe(tok))
	}

	fn := &ast.Function{
		Pos:  p.makePos(name),
		Name: p.makeIdent(name),
	}

	for {
		tok := p.advance()
		switch tok.Type {
		case RIGHT_BRACE:
			if len(fn.Statements) == 0 {
				return nil, p.fail(EmptyFunctionBody, tok, "function '"+name.Lexeme+"' has no statements")
			}
			fn.EndPos = p.makeEndPos(tok)
			return fn, true
		case RETURN:
			stmt, ok := p.parseStatement(tok)
			if !ok {
				return nil, false
			}
			fn.AddStatement(stmt)
		case EOF:
			return nil, p.fail(MissingRightBrace, tok, "expected '}' to close function body, found end of input")
		default:
			return nil, p.fail(UnexpectedToken, tok, "expected 'return' or '}', found "+describe(tok))
		}
	}
}

func (p *Parser) parseStatement(keyword Token) (*ast.Statement, bool) {
	stmt := &ast.Statement{
		Pos:     p.makePos(keyword),
		Keyword: keyword.Lexeme,
	}

	for {
		tok := p.advance()
		switch tok.Type {
		case SEMICOLON:
			if len(stmt.Exprs) == 0 {
				return nil, p.fail(EmptyReturnStatement, tok, "expected an integer literal after 'return'")
			}
			stmt.EndPos = p.makeEndPos(tok)
			return stmt, true
		case NUMBER:
			expr, ok := p.parseInt(tok)
			if !ok {
				return nil, false
			}
			stmt.AddExpr(expr)
		case RIGHT_BRACE, EOF:
			return nil, p.fail(MissingSemicolon, tok, "expected ';' after return statement, found "+describe(tok))
		default:
			return nil, p.fail(UnexpectedToken, tok, "expected an integer literal or ';', found "+describe(tok))
		}
	}
}

func (p *Parser) parseInt(tok Token) (*ast.Expression, bool) {
	value, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err != nil {
		return nil, p.fail(MalformedIntegerLiteral, tok, "integer literal "+tok.Lexeme+" does not fit in a 64-bit signed integer")
	}

	return &ast.Expression{
		Pos:     p.makePos(tok),
		EndPos:  p.makeEndPos(tok),
		Value:   value,
		Literal: tok.Lexeme,
	}, true
}

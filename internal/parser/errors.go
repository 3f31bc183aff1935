package parser

import (
	"fmt"

	"minic/internal/ast"
	"minic/internal/errors"
)

// ErrorKind classifies scanner and parser failures.
type ErrorKind int

const (
	UnrecognizedCharacter ErrorKind = iota + 1
	MalformedIntegerLiteral
	UnexpectedToken
	MissingLeftParen
	MissingRightParen
	MissingLeftBrace
	MissingRightBrace
	MissingSemicolon
	EmptyFunctionBody
	EmptyReturnStatement
)

var errorKindNames = map[ErrorKind]string{
	UnrecognizedCharacter:   "UnrecognizedCharacter",
	MalformedIntegerLiteral: "MalformedIntegerLiteral",
	UnexpectedToken:         "UnexpectedToken",
	MissingLeftParen:        "MissingLeftParen",
	MissingRightParen:       "MissingRightParen",
	MissingLeftBrace:        "MissingLeftBrace",
	MissingRightBrace:       "MissingRightBrace",
	MissingSemicolon:        "MissingSemicolon",
	EmptyFunctionBody:       "EmptyFunctionBody",
	EmptyReturnStatement:    "EmptyReturnStatement",
}

var errorKindCodes = map[ErrorKind]string{
	UnrecognizedCharacter:   errors.ErrorUnrecognizedCharacter,
	MalformedIntegerLiteral: errors.ErrorMalformedIntegerLiteral,
	UnexpectedToken:         errors.ErrorUnexpectedToken,
	MissingLeftParen:        errors.ErrorMissingLeftParen,
	MissingRightParen:       errors.ErrorMissingRightParen,
	MissingLeftBrace:        errors.ErrorMissingLeftBrace,
	MissingRightBrace:       errors.ErrorMissingRightBrace,
	MissingSemicolon:        errors.ErrorMissingSemicolon,
	EmptyFunctionBody:       errors.ErrorEmptyFunctionBody,
	EmptyReturnStatement:    errors.ErrorEmptyReturnStatement,
}

var errorKindHelp = map[ErrorKind]string{
	UnrecognizedCharacter:   "remove the character or replace it with whitespace",
	MalformedIntegerLiteral: "integer literals must lie between 0 and 9223372036854775807",
	UnexpectedToken:         "a program is a sequence of definitions like 'int main() { return 0; }'",
	MissingLeftParen:        "write the function as 'name() { ... }'",
	MissingRightParen:       "functions take no parameters, so close the list right away with ')'",
	MissingLeftBrace:        "open the function body with '{'",
	MissingRightBrace:       "close the function body with '}'",
	MissingSemicolon:        "end the return statement with ';'",
	EmptyFunctionBody:       "add a statement such as 'return 0;'",
	EmptyReturnStatement:    "give the statement a value, as in 'return 0;'",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Help returns the fix suggested to the user for this kind of failure.
func (k ErrorKind) Help() string {
	return errorKindHelp[k]
}

// Code returns the diagnostic code shown to users, e.g. "E0102".
func (k ErrorKind) Code() string {
	return errorKindCodes[k]
}

type ScanError struct {
	Kind     ErrorKind
	Message  string
	Position Position // line, column, offset
	Length   int      // how many bytes it covers
	Char     byte
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

// CompilerError converts the scan error into a reportable diagnostic.
func (e *ScanError) CompilerError(filename string) errors.CompilerError {
	return errors.NewSyntaxError(e.Kind.Code(), e.Message, toASTPos(filename, e.Position)).
		WithLength(e.Length).
		WithHelp(e.Kind.Help()).
		WithNote("only ASCII letters, digits, '_', whitespace and { } ( ) ; = < > are valid").
		Build()
}

type ParseError struct {
	Kind     ErrorKind
	Message  string
	Position Position
	Token    Token // offending token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

// CompilerError converts the parse error into a reportable diagnostic.
func (e *ParseError) CompilerError(filename string) errors.CompilerError {
	length := len(e.Token.Lexeme)
	if length == 0 {
		length = 1
	}

	builder := errors.NewSyntaxError(e.Kind.Code(), e.Message, toASTPos(filename, e.Position)).
		WithLength(length).
		WithHelp(e.Kind.Help())

	if e.Token.Type == IDENTIFIER {
		builder = builder.WithKeywordSuggestion(e.Token.Lexeme, keywordList())
	}
	if e.Token.IsOperator() || e.Token.Type == IF || e.Token.Type == ELSE {
		builder = builder.WithNote(fmt.Sprintf("'%s' is recognised but not supported by the grammar yet", e.Token.Lexeme))
	}

	return builder.Build()
}

// AsCompilerError converts a *ScanError or *ParseError into a diagnostic.
func AsCompilerError(filename string, err error) (errors.CompilerError, bool) {
	switch e := err.(type) {
	case *ScanError:
		return e.CompilerError(filename), true
	case *ParseError:
		return e.CompilerError(filename), true
	default:
		return errors.CompilerError{}, false
	}
}

func toASTPos(filename string, pos Position) ast.Position {
	return ast.Position{
		Filename: filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}

func keywordList() []string {
	return []string{"int", "return", "if", "else"}
}

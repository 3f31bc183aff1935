package parser

import "minic/internal/ast"

// ParseResult contains the output of both stages, for tools that need the
// token stream alongside the tree.
type ParseResult struct {
	Tokens     []Token
	AST        *ast.AST
	ScanError  *ScanError
	ParseError *ParseError
}

// Parse runs the scanner to completion and then the parser over its output.
// The parser does not run when scanning fails.
func Parse(path string, source string) *ParseResult {
	scanner := NewScanner(source)
	tokens, err := scanner.Tokenize()
	if err != nil {
		return &ParseResult{Tokens: tokens, ScanError: err.(*ScanError)}
	}

	parser := NewParser(path, tokens)
	if !parser.Parse() {
		return &ParseResult{Tokens: tokens, ParseError: parser.Err()}
	}

	return &ParseResult{Tokens: tokens, AST: parser.AST()}
}

// OK reports whether both stages succeeded.
func (pr *ParseResult) OK() bool {
	return pr.ScanError == nil && pr.ParseError == nil
}

// Err returns the scan or parse failure as an error, or nil.
func (pr *ParseResult) Err() error {
	if pr.ScanError != nil {
		return pr.ScanError
	}
	if pr.ParseError != nil {
		return pr.ParseError
	}
	return nil
}

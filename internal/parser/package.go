package parser

import "minic/internal/ast"

// ParseSource scans and parses source. The returned error is a *ScanError or
// a *ParseError; the tree is nil whenever the error is not.
func ParseSource(path string, source string) (*ast.AST, error) {
	result := Parse(path, source)
	if err := result.Err(); err != nil {
		return nil, err
	}
	return result.AST, nil
}

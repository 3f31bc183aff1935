package grammar

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
	"minic/internal/ast"
)

// Lower converts a reference parse tree into the compiler's AST so the two
// parsers can be compared node for node.
func Lower(prog *Program) (*ast.AST, error) {
	tree := ast.NewAST()

	for _, item := range prog.Items {
		if item.Function == nil {
			continue
		}

		fn := &ast.Function{
			Pos:    toPos(item.Function.Pos),
			EndPos: toPos(item.Function.EndPos),
			Name: ast.Ident{
				Pos:   toPos(item.Function.Pos),
				Value: item.Function.Name,
			},
		}

		for _, s := range item.Function.Statements {
			stmt := &ast.Statement{
				Pos:     toPos(s.Pos),
				EndPos:  toPos(s.EndPos),
				Keyword: s.Keyword,
			}
			for _, lit := range s.Values {
				value, err := strconv.ParseInt(lit.Text, 10, 64)
				if err != nil {
					return nil, fmt.Errorf("%s: integer literal %s: %w", lit.Pos, lit.Text, err)
				}
				stmt.AddExpr(&ast.Expression{
					Pos:     toPos(lit.Pos),
					EndPos:  toPos(lit.EndPos),
					Value:   value,
					Literal: lit.Text,
				})
			}
			fn.AddStatement(stmt)
		}

		tree.Root.AddFunction(fn)
	}

	return tree, nil
}

// ParseAST parses source with the reference grammar and lowers the result.
func ParseAST(sourceName string, source string) (*ast.AST, error) {
	prog, err := ParseString(sourceName, source)
	if err != nil {
		return nil, err
	}
	return Lower(prog)
}

func toPos(pos lexer.Position) ast.Position {
	return ast.Position{
		Filename: pos.Filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}

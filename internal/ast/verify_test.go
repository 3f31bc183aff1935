package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAcceptsWellFormedTree(t *testing.T) {
	tree := NewAST()
	tree.Root.AddFunction(returnFunction("main", 2))

	assert.NoError(t, Verify(tree))
}

func TestVerifyAcceptsEmptyProgram(t *testing.T) {
	assert.NoError(t, Verify(NewAST()))
}

func TestVerifyRejectsMissingRoot(t *testing.T) {
	assert.Error(t, Verify(nil))
	assert.Error(t, Verify(&AST{}))
}

func TestVerifyRejectsFunctionWithoutStatements(t *testing.T) {
	tree := NewAST()
	tree.Root.AddFunction(&Function{
		Pos:  Position{Line: 1, Column: 5},
		Name: Ident{Value: "main"},
	})

	err := Verify(tree)
	require.Error(t, err)

	var invErr *InvariantError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, FUNCTION, invErr.Node.NodeType())
	assert.Equal(t, "1:5: Function(main): function has no statements", err.Error())
}

func TestVerifyRejectsStatementWithoutExpression(t *testing.T) {
	fn := &Function{Name: Ident{Value: "main"}}
	fn.AddStatement(&Statement{Keyword: "return"})
	tree := NewAST()
	tree.Root.AddFunction(fn)

	err := Verify(tree)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "statement has no expression")
}

func TestVerifyRejectsAnonymousFunction(t *testing.T) {
	tree := NewAST()
	tree.Root.AddFunction(returnFunction("", 1))

	assert.ErrorContains(t, Verify(tree), "function has no name")
}

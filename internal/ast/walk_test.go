package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestInspectVisitsInSourceOrder(t *testing.T) {
	tree := NewAST()
	tree.Root.AddFunction(returnFunction("a", 1, 2))
	tree.Root.AddFunction(returnFunction("b", 3))

	var visited []string
	Inspect(tree.Root, func(n Node) bool {
		visited = append(visited, Label(n))
		return true
	})

	assert.Equal(t, []string{
		"Program",
		"Function(a)", "Statement(return)", "Expression(1)", "Expression(2)",
		"Function(b)", "Statement(return)", "Expression(3)",
	}, visited)
}

func TestInspectSkipsChildren(t *testing.T) {
	tree := NewAST()
	tree.Root.AddFunction(returnFunction("a", 1))

	count := 0
	Inspect(tree.Root, func(n Node) bool {
		count++
		return n.NodeType() != FUNCTION
	})

	assert.Equal(t, 2, count)
}

func TestEncodeYAML(t *testing.T) {
	tree := NewAST()
	tree.Root.AddFunction(returnFunction("main", 0))

	out, err := yaml.Marshal(Encode(tree.Root))
	assert.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "kind: Program")
	assert.Contains(t, text, "name: main")
	assert.Contains(t, text, "name: return")
	assert.Contains(t, text, "value: 0")
	assert.NotContains(t, text, "line:")
}

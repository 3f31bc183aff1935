package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestStartPrintsTree(t *testing.T) {
	var out bytes.Buffer
	err := Start(strings.NewReader("int main() { return 7; }\n"), &out)
	require.NoError(t, err)

	expected := PROMPT + "AST:\n" +
		"Program\n" +
		"  Function(main)\n" +
		"    Statement(return)\n" +
		"      Expression(7)\n" +
		PROMPT + "\n"
	assert.Equal(t, expected, out.String())
}

func TestStartReportsErrorsAndContinues(t *testing.T) {
	var out bytes.Buffer
	input := "int main() { return; }\n\nint f() { return 1; }\n"
	err := Start(strings.NewReader(input), &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "error[E0109]")
	assert.Contains(t, text, "--> <repl>:1:20")
	assert.Contains(t, text, "Function(f)")
	assert.Equal(t, 4, strings.Count(text, PROMPT))
}

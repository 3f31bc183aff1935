// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"minic/internal/ast"
	"minic/internal/errors"
	"minic/internal/parser"
)

const PROMPT = ">> "

const replFile = "<repl>"

// Start reads one program per line from in and writes its tree, or the
// diagnostic explaining why it was rejected, to out. It returns when in is
// exhausted.
func Start(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		tree, err := parser.ParseSource(replFile, line)
		if err != nil {
			if diag, ok := parser.AsCompilerError(replFile, err); ok {
				fmt.Fprint(out, errors.NewErrorReporter(replFile, line).FormatError(diag))
			} else {
				fmt.Fprintln(out, err)
			}
			continue
		}

		fmt.Fprintf(out, "AST:\n%s", ast.Dump(tree.Root))
	}
}

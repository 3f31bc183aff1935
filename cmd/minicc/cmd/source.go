package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"minic/internal/ast"
	"minic/internal/errors"
	"minic/internal/parser"
)

// errFailed is returned once diagnostics have already been printed.
var errFailed = fmt.Errorf("compilation failed")

func readSource(path string) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(source), nil
}

// report prints err as a caret diagnostic when it carries a position.
func report(w io.Writer, path, source string, err error) {
	if diag, ok := parser.AsCompilerError(path, err); ok {
		fmt.Fprint(w, errors.NewErrorReporter(path, source).FormatError(diag))
		return
	}
	fmt.Fprintf(w, "%s: %v\n", path, err)
}

func reportDiagnostic(w io.Writer, source string, diag errors.CompilerError) {
	fmt.Fprint(w, errors.NewErrorReporter(diag.Position.Filename, source).FormatError(diag))
}

func render(w io.Writer, tree *ast.AST, format string) error {
	switch format {
	case "tree":
		_, err := fmt.Fprint(w, ast.Dump(tree.Root))
		return err
	case "source":
		_, err := fmt.Fprintln(w, tree.Root.String())
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ast.Encode(tree.Root)); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(ast.Encode(tree.Root)); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"minic/grammar"
	"minic/internal/ast"
	"minic/internal/errors"
	"minic/internal/parser"
)

var crossCheck bool

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Check that files parse into a valid tree",
	Long: `Scans and parses every FILE, verifies the resulting tree and reports
all diagnostics. With --cross-check each file is also parsed with the
reference grammar and both results must agree.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&crossCheck, "cross-check", false, "compare against the reference grammar")
}

func runCheck(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	failed := 0
	for _, path := range args {
		if !checkFile(cmd, path) {
			failed++
		}
	}

	duration := formatDuration(time.Since(startTime))
	if failed > 0 {
		fmt.Fprintln(errOut, color.RedString("Compilation failed for %d of %d file(s) after %s", failed, len(args), duration))
		return errFailed
	}

	fmt.Fprintln(out, color.GreenString("Successfully processed %d file(s) in %s", len(args), duration))
	return nil
}

func checkFile(cmd *cobra.Command, path string) bool {
	errOut := cmd.ErrOrStderr()

	source, err := readSource(path)
	if err != nil {
		fmt.Fprintf(errOut, "%s: %v\n", path, err)
		return false
	}

	start := time.Now()
	result := parser.Parse(path, source)
	log.Debugf("%s: %d tokens, parsed in %s", path, len(result.Tokens), formatDuration(time.Since(start)))

	if err := result.Err(); err != nil {
		report(errOut, path, source, err)
		if crossCheck || cfg.Check.CrossCheck {
			if _, refErr := referenceTree(path); refErr == nil {
				reportDiagnostic(errOut, source, mismatch(path, "reference grammar accepts this file"))
			}
		}
		return false
	}

	if err := ast.Verify(result.AST); err != nil {
		pos := ast.Position{Filename: path, Line: 1, Column: 1}
		if invariant, ok := err.(*ast.InvariantError); ok && invariant.Node.NodePos().Line > 0 {
			pos = invariant.Node.NodePos()
			pos.Filename = path
		}
		diag := errors.NewSyntaxError(errors.ErrorInvalidTree, err.Error(), pos).Build()
		reportDiagnostic(errOut, source, diag)
		return false
	}

	if crossCheck || cfg.Check.CrossCheck {
		ref, err := referenceTree(path)
		if err != nil {
			reportDiagnostic(errOut, source, mismatch(path, "reference grammar rejects this file: "+err.Error()))
			return false
		}
		if ast.Dump(ref.Root) != ast.Dump(result.AST.Root) {
			reportDiagnostic(errOut, source, mismatch(path, "reference grammar builds a different tree"))
			return false
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("ok"), path)
	return true
}

// referenceTree parses path with the reference grammar.
func referenceTree(path string) (*ast.AST, error) {
	prog, err := grammar.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return grammar.Lower(prog)
}

func mismatch(path, message string) errors.CompilerError {
	return errors.NewSyntaxError(errors.ErrorCrossCheckMismatch, message, ast.Position{Filename: path, Line: 1, Column: 1}).Build()
}

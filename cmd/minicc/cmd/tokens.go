package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"minic/internal/parser"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the token stream of a file",
	Long: `Scans FILE and prints one token per line, ending with EOF.

Example:
  minicc tokens return_2.c`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	path := args[0]
	source, err := readSource(path)
	if err != nil {
		return err
	}

	tokens, err := parser.NewScanner(source).Tokenize()
	out := cmd.OutOrStdout()
	for _, tok := range tokens {
		fmt.Fprintln(out, tok.String())
	}
	if err != nil {
		report(cmd.ErrOrStderr(), path, source, err)
		return errFailed
	}

	log.Debugf("%s: %d tokens", path, len(tokens))
	return nil
}

package cmd

import (
	"github.com/spf13/cobra"
	"minic/internal/parser"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse a file and print its syntax tree",
	Long: `Parses FILE and prints the tree in the configured format.

Formats:
  tree    - indented node outline (default)
  source  - the program rendered back as C
  yaml    - node tree as YAML
  json    - node tree as JSON`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "output format (tree, source, yaml, json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	source, err := readSource(path)
	if err != nil {
		return err
	}

	tree, err := parser.ParseSource(path, source)
	if err != nil {
		report(cmd.ErrOrStderr(), path, source, err)
		return errFailed
	}

	format := cfg.Output.Format
	if parseFormat != "" {
		format = parseFormat
	}
	return render(cmd.OutOrStdout(), tree, format)
}

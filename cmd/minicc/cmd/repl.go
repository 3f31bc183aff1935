package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"minic/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse programs interactively, one per line",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "minic REPL, enter a program on a single line (Ctrl-D to quit)")
		return repl.Start(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

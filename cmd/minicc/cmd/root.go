package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"minic/internal/config"
)

var (
	cfgFile   string
	colorMode string
	verbose   bool

	cfg *config.Config
	log = commonlog.GetLogger("minicc")
)

var rootCmd = &cobra.Command{
	Use:   "minicc",
	Short: "minicc - front end for a tiny subset of C",
	Long: `minicc scans and parses programs made of functions that return
integer literals, and reports precise diagnostics for everything else.

Settings are read from ./minicc.toml, $MINICC_CONFIG or --config.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command. Diagnostics are printed by the commands
// themselves; any other error is printed here.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errFailed) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./minicc.toml)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "colorize output: auto, always or never")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func setup(cmd *cobra.Command, args []string) error {
	verbosity := 0
	if verbose {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)

	loaded, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}
	if colorMode != "" {
		loaded.Output.Color = colorMode
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("--color: %w", err)
		}
	}
	cfg = loaded

	switch cfg.Output.Color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}

	log.Debugf("output format %s, color %s", cfg.Output.Format, cfg.Output.Color)
	return nil
}

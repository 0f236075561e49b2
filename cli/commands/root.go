// Package commands implements the CLI commands.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/datagrove-io/impala-dialect/cli/internal/config"
	"github.com/datagrove-io/impala-dialect/internal/debug"
)

var debugFlag bool

// NewRootCommand creates the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "impala-dialect",
		Short: "Compile abstract queries into Impala SQL",
		Long: `impala-dialect compiles abstract query documents into SQL for
Impala-style engines: backtick quoting, naive timestamps, emulated
OFFSET pagination and a synthesized quarter function.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug.Init(debugFlag)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(NewCompileCommand())
	rootCmd.AddCommand(NewTypemapCommand())
	rootCmd.AddCommand(NewConnCommand())
	rootCmd.AddCommand(NewInitCommand())
	rootCmd.AddCommand(NewSyntaxCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// loadConfig loads configuration, turning on debug logging when the
// config asks for it and the flag did not already.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.Debug && !debug.Enabled() {
		debug.Init(true)
	}
	return cfg, nil
}

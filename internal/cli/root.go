// Package cli provides the command-line interface for schemastrip.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/leapstack-labs/schemastrip/internal/cli/commands"
	"github.com/leapstack-labs/schemastrip/internal/cli/config"
	"github.com/spf13/cobra"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "schemastrip <input> <output>",
		Short: "schemastrip - compact CREATE TABLE listings",
		Long: `schemastrip reduces a SQL schema dump to one line per table:

  table: col1, col2, col3

Column types, defaults and table-level constraints are dropped. Tables
appear in input order, separated by a blank line. Input without any
CREATE TABLE statement produces an empty output file.

An input file named like a subcommand (list, ask, tokens, version, help)
runs that subcommand. Pass it as ./list instead.`,
		Example: `  schemastrip schema.sql schema.txt`,
		Version: Version,
		Args:    cobra.ExactArgs(2),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				// Stripping reads no settings, so a broken config only stops subcommands.
				if cmd != cmd.Root() {
					return err
				}
				cfg = config.Default()
				cfg.Verbose, _ = cmd.Flags().GetBool("verbose")
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if err != nil {
				logger.Warn("ignoring configuration", "error", err)
			} else if used := config.GetConfigFileUsed(); used != "" {
				logger.Debug("using config file", "path", used)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = context.WithValue(ctx, config.ConfigKey(), cfg)
			ctx = context.WithValue(ctx, config.LoggerKey(), logger)
			cmd.SetContext(ctx)
			return nil
		},
		RunE:          commands.RunStrip,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./schemastrip.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewAskCommand())
	rootCmd.AddCommand(commands.NewTokensCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

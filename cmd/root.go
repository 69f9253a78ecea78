// Package cmd implements the jsonls CLI commands.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsonls-io/jsonls/internal/logging"
)

// NewRootCmd creates the root jsonls command with all subcommands
// registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jsonls",
		Short:         "jsonls - JSON/JSONC document parsing and schema validation",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "logfmt", "Log output format (logfmt, json)")

	root.AddCommand(NewParseCmd())
	root.AddCommand(NewValidateCmd())
	return root
}

// loggerFromCmd builds a *slog.Logger from the root command's
// persistent --log-level/--log-format flags.
func loggerFromCmd(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")
	logger, err := logging.New(os.Stderr, level, format)
	if err != nil {
		// The log flags are plain strings that nothing checks earlier;
		// an unrecognized value falls back to the package default rather
		// than failing a command over a logging misconfiguration.
		return slog.Default()
	}
	return logger
}

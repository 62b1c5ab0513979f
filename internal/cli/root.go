// Package cli defines the planning-api command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags "-X github.com/maxviazov/planning-api/internal/cli.Version=...".
var Version = "dev"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
}

// NewRootCommand creates the root command. Without a subcommand it serves the API.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "planning-api",
		Short:         "Town-planning case management API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML config file (defaults plus APP_* env when empty)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewRoutesCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxviazov/planning-api/internal/config"
	"github.com/maxviazov/planning-api/internal/logger"
	"github.com/maxviazov/planning-api/internal/storage"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations for the configured storage driver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(rootOpts.ConfigPath)
			if err != nil {
				return err
			}
			appLogger, err := logger.New(&cfg.Logger)
			if err != nil {
				return fmt.Errorf("logger initialization failed: %w", err)
			}
			backend, err := storage.Open(cmd.Context(), cfg, appLogger)
			if err != nil {
				return fmt.Errorf("storage: %w", err)
			}
			defer backend.Close()
			if err := backend.Migrate(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrations applied (%s)\n", backend.Driver)
			return nil
		},
	}
}

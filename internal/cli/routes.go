package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maxviazov/planning-api/internal/config"
	"github.com/maxviazov/planning-api/internal/handler"
	"github.com/maxviazov/planning-api/internal/service"
	"github.com/maxviazov/planning-api/internal/storage"
)

// NewRoutesCommand creates the routes command. It builds the router over memory storage and prints it.
func NewRoutesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List every HTTP route the API serves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(rootOpts.ConfigPath)
			if err != nil {
				return err
			}
			backend := storage.Memory()
			svcs := service.New(service.OpenStores(backend), zerolog.Nop())
			return handler.PrintRoutes(cmd.OutOrStdout(), newEngine(cfg, zerolog.Nop(), backend, svcs))
		},
	}
}

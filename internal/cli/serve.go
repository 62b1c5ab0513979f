package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maxviazov/planning-api/internal/config"
	"github.com/maxviazov/planning-api/internal/handler"
	"github.com/maxviazov/planning-api/internal/logger"
	"github.com/maxviazov/planning-api/internal/seed"
	"github.com/maxviazov/planning-api/internal/service"
	"github.com/maxviazov/planning-api/internal/storage"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API on the configured address.

Storage is opened and migrated first; when storage.seed_file is set the
fixture is loaded before the listener starts. SIGINT or SIGTERM drains
in-flight requests for up to app.shutdown_timeout.

Example:
  planning-api serve --config config.yaml
  APP_STORAGE_DRIVER=sqlite planning-api serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context(), rootOpts)
		},
	}
}

func runServer(ctx context.Context, opts *RootOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	cfg.Logger.ServiceName = cfg.App.Name
	cfg.Logger.ServiceVersion = cfg.App.Version
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	appLogger.Info().Str("config", cfg.String()).Msg("config loaded")

	backend, err := storage.Open(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer func() {
		if cerr := backend.Close(); cerr != nil {
			appLogger.Error().Err(cerr).Msg("storage close failed")
		}
	}()

	svcs := service.New(service.OpenStores(backend), appLogger)
	if cfg.Storage.SeedFile != "" {
		fx, err := seed.Load(cfg.Storage.SeedFile)
		if err != nil {
			return err
		}
		if _, err := seed.Apply(ctx, svcs, fx, appLogger); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:              cfg.App.Addr(),
		Handler:           newEngine(cfg, appLogger, backend, svcs),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info().Dur("timeout", cfg.App.ShutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	appLogger.Info().Msg("server stopped")
	return nil
}

// newEngine builds the gin engine with the middleware chain and every route.
func newEngine(cfg *config.Config, log zerolog.Logger, backend *storage.Backend, svcs service.Services) *gin.Engine {
	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(handler.Recovery(log), handler.RequestLogger(log), handler.CORS(cfg.CORS))
	handler.Register(r, handler.Options{Storage: backend, Driver: backend.Driver}, svcs)
	return r
}

// Package storage opens the configured record-store backend and hands out typed stores over it.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/maxviazov/planning-api/internal/config"
	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/maxviazov/planning-api/internal/repository/level"
	"github.com/maxviazov/planning-api/internal/repository/memory"
	"github.com/maxviazov/planning-api/internal/repository/postgres"
	"github.com/maxviazov/planning-api/internal/repository/sqlite"
	"github.com/rs/zerolog"
)

// Backend is one opened storage driver. Exactly one of the handles is set, except for memory.
type Backend struct {
	Driver string

	sqlite   *sqlite.DB
	level    *level.DB
	postgres *postgres.DB
	log      zerolog.Logger
}

// Open connects the driver selected in cfg. SQL backends are migrated before use:
// sqlite always, postgres when postgres.migrate is set.
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Backend, error) {
	b := &Backend{
		Driver: cfg.Storage.Driver,
		log:    logger.With().Str("module", "storage").Logger(),
	}
	switch cfg.Storage.Driver {
	case config.DriverMemory, "":
		b.Driver = config.DriverMemory
	case config.DriverSQLite:
		if err := ensureDir(cfg.SQLite.Path); err != nil {
			return nil, err
		}
		db, err := sqlite.Open(ctx, cfg.SQLite.Path, logger)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		b.sqlite = db
	case config.DriverLevelDB:
		if err := ensureDir(cfg.LevelDB.Path); err != nil {
			return nil, err
		}
		db, err := level.Open(cfg.LevelDB.Path, logger)
		if err != nil {
			return nil, err
		}
		b.level = db
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, err
		}
		if cfg.Postgres.Migrate {
			if err := db.Migrate(ctx); err != nil {
				db.Close()
				return nil, fmt.Errorf("migrate postgres: %w", err)
			}
		}
		b.postgres = db
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	b.log.Info().Str("driver", b.Driver).Msg("storage ready")
	return b, nil
}

// Memory returns a process-local backend, for tests and the default configuration.
func Memory() *Backend {
	return &Backend{Driver: config.DriverMemory, log: zerolog.Nop()}
}

// For returns the store of one resource on the backend.
// Memory stores are created per call, so callers open each resource once.
func For[T repository.Record[T]](b *Backend, resource string) repository.Store[T] {
	switch {
	case b.sqlite != nil:
		return sqlite.NewStore[T](b.sqlite, resource)
	case b.level != nil:
		return level.NewStore[T](b.level, resource)
	case b.postgres != nil:
		return postgres.NewStore[T](b.postgres, resource)
	default:
		return memory.New[T]()
	}
}

// Migrate applies pending migrations. Backends without a schema report nothing to do.
func (b *Backend) Migrate(ctx context.Context) error {
	switch {
	case b.sqlite != nil:
		return b.sqlite.Migrate(ctx)
	case b.postgres != nil:
		return b.postgres.Migrate(ctx)
	default:
		b.log.Info().Str("driver", b.Driver).Msg("driver has no schema; nothing to migrate")
		return nil
	}
}

func (b *Backend) Ping(ctx context.Context) error {
	switch {
	case b.sqlite != nil:
		return b.sqlite.Ping(ctx)
	case b.level != nil:
		return b.level.Ping(ctx)
	case b.postgres != nil:
		return b.postgres.Ping(ctx)
	default:
		return nil
	}
}

func (b *Backend) Close() error {
	switch {
	case b.sqlite != nil:
		return b.sqlite.Close()
	case b.level != nil:
		return b.level.Close()
	case b.postgres != nil:
		b.postgres.Close()
	}
	return nil
}

var _ repository.Pinger = (*Backend)(nil)

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return nil
}

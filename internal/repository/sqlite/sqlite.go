// Package sqlite stores records as JSON text documents in a single embedded SQLite table.
// It uses the pure-Go modernc driver, so the binary stays cgo-free.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/maxviazov/planning-api/migrations"
	"github.com/rs/zerolog"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// DB is a shared handle; every resource store on it writes to the same records table.
type DB struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open connects to the database file at path and applies pragmas.
// A single connection serializes writers and keeps ":memory:" databases coherent.
func Open(ctx context.Context, path string, logger zerolog.Logger) (*DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{"PRAGMA busy_timeout = 5000", "PRAGMA foreign_keys = ON"}
	if path != ":memory:" {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite %s: %w", p, err)
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	l := logger.With().Str("module", "repository").Str("component", "sqlite").Logger()
	l.Info().Str("path", path).Msg("sqlite opened")
	return &DB{db: db, log: l}, nil
}

// Migrate applies the embedded goose migrations.
func (d *DB) Migrate(ctx context.Context) error {
	return migrations.Up(ctx, d.db, migrations.SQLite, d.log)
}

func (d *DB) Ping(ctx context.Context) error { return d.db.PingContext(ctx) }

func (d *DB) Close() error { return d.db.Close() }

var _ repository.Pinger = (*DB)(nil)

// mapError translates SQLite constraint failures to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var se *msqlite.Error
	if errors.As(err, &se) && se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return repository.ErrAlreadyExists
	}
	return err
}

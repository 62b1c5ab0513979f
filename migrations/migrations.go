// Package migrations embeds the goose SQL migrations for the SQL-backed record stores
// and applies them through a goose Provider.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Dialect selects one of the embedded migration sets.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

func (d Dialect) goose() (goose.Dialect, error) {
	switch d {
	case Postgres:
		return goose.DialectPostgres, nil
	case SQLite:
		return goose.DialectSQLite3, nil
	default:
		return "", fmt.Errorf("unknown migration dialect %q", d)
	}
}

// Up applies all pending migrations of the dialect to db.
func Up(ctx context.Context, db *sql.DB, d Dialect, logger zerolog.Logger) error {
	gd, err := d.goose()
	if err != nil {
		return err
	}
	fsys, err := fs.Sub(files, string(d))
	if err != nil {
		return fmt.Errorf("migrations for %s: %w", d, err)
	}
	provider, err := goose.NewProvider(gd, db, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up (%s): %w", d, err)
	}
	for _, r := range results {
		logger.Info().
			Str("component", "migrations").
			Str("dialect", string(d)).
			Str("source", r.Source.Path).
			Dur("took", r.Duration).
			Msg("migration applied")
	}
	return nil
}

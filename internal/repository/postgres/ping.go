package postgres

import (
	"context"

	"github.com/maxviazov/planning-api/internal/repository"
)

// Ping reports whether the pool can still reach the database.
func (d *DB) Ping(ctx context.Context) error {
	if err := ensurePool(d.pool); err != nil {
		return err
	}
	return d.pool.Ping(ctx)
}

var _ repository.Pinger = (*DB)(nil)

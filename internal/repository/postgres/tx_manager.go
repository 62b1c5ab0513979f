package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/planning-api/internal/repository"
)

// q is a minimal query executor implemented by both pgxpool.Pool and pgx.Tx.
type q interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// getQ returns the transaction bound to ctx, or the pool when there is none.
func getQ(ctx context.Context, pool *pgxpool.Pool) q {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok && tx != nil {
		return tx
	}
	return pool
}

type txManager struct{ pool *pgxpool.Pool }

// TxManager exposes the pool's transaction boundary so several store calls can share one transaction.
func (d *DB) TxManager() repository.TxManager { return d.tx }

func (m *txManager) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	// Already inside a transaction: join it instead of nesting.
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return mapError(err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		return mapError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return mapError(err)
	}
	return nil
}

var _ repository.TxManager = (*txManager)(nil)

package postgres

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/maxviazov/planning-api/internal/config"
	"github.com/maxviazov/planning-api/migrations"
	"github.com/rs/zerolog"
)

// DB wraps the pgx connection pool shared by every resource store.
type DB struct {
	pool *pgxpool.Pool
	tx   *txManager
	log  zerolog.Logger
}

// DSN assembles a connection string from the config, escaping credentials through url.URL.
func DSN(cfg config.PostgresConfig) string {
	u := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:   cfg.DBName,
	}
	if cfg.User != "" || cfg.Password != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}
	q := u.Query()
	if cfg.SSLMode != "" {
		q.Set("sslmode", cfg.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Open creates the pool, wires SQL tracing into zerolog and verifies connectivity.
func Open(ctx context.Context, cfg config.PostgresConfig, logger zerolog.Logger) (*DB, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	poolConfig, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pool config: %w", err)
	}

	poolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   newPgxLogger(logger),
		LogLevel: traceLevel(logger.GetLevel()),
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	}
	if cfg.MaxConnIdleTime > 0 {
		poolConfig.MaxConnIdleTime = time.Duration(cfg.MaxConnIdleTime) * time.Second
	}
	if cfg.HealthCheckPeriod > 0 {
		poolConfig.HealthCheckPeriod = time.Duration(cfg.HealthCheckPeriod) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	// Bounded ping so a dead database fails startup instead of hanging it.
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	l := logger.With().Str("module", "repository").Str("component", "postgres").Logger()
	l.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("user", cfg.User).
		Str("db", cfg.DBName).
		Msg("Successfully connected to PostgreSQL")

	return FromPool(pool, l), nil
}

// FromPool wraps an existing pool, for tests that manage their own.
func FromPool(pool *pgxpool.Pool, logger zerolog.Logger) *DB {
	return &DB{pool: pool, tx: &txManager{pool: pool}, log: logger}
}

// Migrate runs the embedded goose migrations over a database/sql view of the pool.
func (d *DB) Migrate(ctx context.Context) error {
	if err := ensurePool(d.pool); err != nil {
		return err
	}
	sqlDB := stdlib.OpenDBFromPool(d.pool)
	defer func() { _ = sqlDB.Close() }()
	return migrations.Up(ctx, sqlDB, migrations.Postgres, d.log)
}

// Close releases every pooled connection.
func (d *DB) Close() {
	if d.pool != nil {
		d.pool.Close()
	}
}

func traceLevel(l zerolog.Level) tracelog.LogLevel {
	switch {
	case l <= zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case l <= zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case l <= zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case l <= zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	default:
		return tracelog.LogLevelError
	}
}

func ensurePool(pool *pgxpool.Pool) error {
	if pool == nil {
		return errors.New("pgx pool is nil")
	}
	return nil
}

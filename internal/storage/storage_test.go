package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/maxviazov/planning-api/internal/config"
	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/maxviazov/planning-api/internal/repository/contract"
	"github.com/maxviazov/planning-api/internal/storage"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Drivers(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name string
		cfg  config.Config
	}{
		{name: "memory", cfg: config.Config{Storage: config.StorageConfig{Driver: config.DriverMemory}}},
		{name: "sqlite", cfg: config.Config{
			Storage: config.StorageConfig{Driver: config.DriverSQLite},
			SQLite:  config.SQLiteConfig{Path: filepath.Join(dir, "nested", "planning.db")},
		}},
		{name: "leveldb", cfg: config.Config{
			Storage: config.StorageConfig{Driver: config.DriverLevelDB},
			LevelDB: config.LevelDBConfig{Path: filepath.Join(dir, "planning.ldb")},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			b, err := storage.Open(ctx, &tc.cfg, zerolog.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = b.Close() })

			assert.Equal(t, tc.name, b.Driver)
			require.NoError(t, b.Ping(ctx))
			require.NoError(t, b.Migrate(ctx))

			notes := storage.For[contract.Note](b, "notes")
			created, err := notes.Insert(ctx, contract.Note{Title: "hello", Rank: 1})
			require.NoError(t, err)
			got, err := notes.Get(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, created, got)

			other := storage.For[contract.Note](b, "others")
			_, err = other.Get(ctx, created.ID)
			assert.ErrorIs(t, err, repository.ErrNotFound)
		})
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := config.Config{Storage: config.StorageConfig{Driver: "mongo"}}
	_, err := storage.Open(context.Background(), &cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestMemory_StoresAreIndependent(t *testing.T) {
	b := storage.Memory()
	ctx := context.Background()
	a := storage.For[contract.Note](b, "a")
	c := storage.For[contract.Note](b, "a")

	n, err := a.Insert(ctx, contract.Note{Title: "only in a"})
	require.NoError(t, err)
	_, err = c.Get(ctx, n.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, b.Ping(ctx))
	assert.NoError(t, b.Close())
}

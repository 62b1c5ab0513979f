package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/maxviazov/planning-api/internal/repository/contract"
	"github.com/maxviazov/planning-api/internal/repository/sqlite"
)

func openDB(t *testing.T) *sqlite.DB {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "records.db"), zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx))
	return db
}

func makeStore(t *testing.T) (func(resource string) repository.Store[contract.Note], func()) {
	db := openDB(t)
	open := func(resource string) repository.Store[contract.Note] {
		return sqlite.NewStore[contract.Note](db, resource)
	}
	return open, func() { _ = db.Close() }
}

func makePinger(t *testing.T) (repository.Pinger, func()) {
	db := openDB(t)
	return db, func() { _ = db.Close() }
}

func TestStore_SQLiteContract(t *testing.T) {
	contract.RunStoreContract(t, makeStore)
}

func TestPinger_SQLiteContract(t *testing.T) {
	contract.RunPingerContract(t, makePinger)
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := sqlite.Open(context.Background(), "  ", zerolog.Nop())
	assert.Error(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openDB(t)
	defer func() { _ = db.Close() }()
	assert.NoError(t, db.Migrate(context.Background()))
}

func TestStore_FloatFilter(t *testing.T) {
	db := openDB(t)
	defer func() { _ = db.Close() }()
	s := sqlite.NewStore[contract.Note](db, "notes")
	ctx := context.Background()

	_, err := s.Insert(ctx, contract.Note{Title: "heavy", Weight: 2.5})
	require.NoError(t, err)
	_, err = s.Insert(ctx, contract.Note{Title: "light", Weight: 1})
	require.NoError(t, err)

	got, err := s.Scan(ctx, repository.Filters{"weight": "2.5"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "heavy", got[0].Title)
}

func TestStore_RejectsUnsafeFilterField(t *testing.T) {
	db := openDB(t)
	defer func() { _ = db.Close() }()
	s := sqlite.NewStore[contract.Note](db, "notes")
	_, err := s.Scan(context.Background(), repository.Filters{"title') OR 1=1 --": "x"})
	assert.Error(t, err)
}

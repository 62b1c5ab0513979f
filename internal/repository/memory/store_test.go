package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/maxviazov/planning-api/internal/repository/contract"
	"github.com/maxviazov/planning-api/internal/repository/memory"
)

func makeStore(t *testing.T) (func(resource string) repository.Store[contract.Note], func()) {
	return func(string) repository.Store[contract.Note] { return memory.New[contract.Note]() }, func() {}
}

func TestStore_MemoryContract(t *testing.T) {
	contract.RunStoreContract(t, makeStore)
}

func TestStore_ReturnedValuesDoNotAlias(t *testing.T) {
	s := memory.New[contract.Note]()
	ctx := context.Background()

	created, err := s.Insert(ctx, contract.Note{Title: "t", Tags: []string{"original"}})
	require.NoError(t, err)
	created.Tags[0] = "mutated"

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"original"}, got.Tags)

	got.Tags[0] = "mutated again"
	again, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"original"}, again.Tags)
}

func TestStore_ConcurrentWriters(t *testing.T) {
	s := memory.New[contract.Note]()
	ctx := context.Background()
	created, err := s.Insert(ctx, contract.Note{Title: "shared"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := repository.Patch{}
			_ = p.Set("rank", i)
			_, _ = s.Update(ctx, created.ID, p)
			_, _ = s.Insert(ctx, contract.Note{Title: "extra"})
			_, _ = s.Scan(ctx, repository.Filters{"title": "extra"})
		}(i)
	}
	wg.Wait()

	all, err := s.Scan(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 17)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "shared", got.Title)
	assert.GreaterOrEqual(t, got.Rank, 0)
	assert.Less(t, got.Rank, 16)
}

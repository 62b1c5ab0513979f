// Package memory is the default record store: a process-lifetime map of JSON documents keyed by UUID.
// Records are held in encoded form so callers never share slices or maps with the store.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/maxviazov/planning-api/internal/repository"
)

type entry struct {
	seq uint64
	doc []byte
}

// Store keeps one resource's records in memory. The mutex only makes the map safe for concurrent
// handlers; concurrent updates to one key still resolve as last write wins.
type Store[T repository.Record[T]] struct {
	mu    sync.RWMutex
	seq   uint64
	items map[uuid.UUID]entry
}

func New[T repository.Record[T]]() *Store[T] {
	return &Store[T]{items: make(map[uuid.UUID]entry)}
}

func (s *Store[T]) Insert(_ context.Context, rec T) (T, error) {
	var zero T
	if rec.RecordID() == uuid.Nil {
		rec = rec.WithRecordID(uuid.New())
	}
	doc, err := repository.Encode(rec)
	if err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[rec.RecordID()]; ok {
		return zero, repository.ErrAlreadyExists
	}
	s.seq++
	s.items[rec.RecordID()] = entry{seq: s.seq, doc: doc}
	return repository.Decode[T](doc)
}

func (s *Store[T]) Get(_ context.Context, id uuid.UUID) (T, error) {
	s.mu.RLock()
	e, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		var zero T
		return zero, repository.ErrNotFound
	}
	return repository.Decode[T](e.doc)
}

func (s *Store[T]) Scan(_ context.Context, f repository.Filters) ([]T, error) {
	s.mu.RLock()
	entries := make([]entry, 0, len(s.items))
	for _, e := range s.items {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]T, 0, len(entries))
	for _, e := range entries {
		ok, err := repository.MatchDocument(e.doc, f)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		rec, err := repository.Decode[T](e.doc)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *Store[T]) List(ctx context.Context, f repository.Filters, p repository.Page) (repository.PageResult[T], error) {
	all, err := s.Scan(ctx, f)
	if err != nil {
		return repository.PageResult[T]{}, err
	}
	return repository.Paginate(all, p), nil
}

func (s *Store[T]) Update(_ context.Context, id uuid.UUID, patch repository.Patch) (T, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[id]
	if !ok {
		return zero, repository.ErrNotFound
	}
	merged, err := repository.MergeDocument(e.doc, patch)
	if err != nil {
		return zero, err
	}
	rec, err := repository.Decode[T](merged)
	if err != nil {
		return zero, err
	}
	// Re-encode so the stored document only carries the record's own fields.
	doc, err := repository.Encode(rec)
	if err != nil {
		return zero, err
	}
	s.items[id] = entry{seq: e.seq, doc: doc}
	return rec, nil
}

func (s *Store[T]) Remove(_ context.Context, id uuid.UUID) (T, error) {
	s.mu.Lock()
	e, ok := s.items[id]
	delete(s.items, id)
	s.mu.Unlock()
	if !ok {
		var zero T
		return zero, repository.ErrNotFound
	}
	return repository.Decode[T](e.doc)
}

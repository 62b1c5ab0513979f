// Package level stores records in an embedded goleveldb database.
//
// Key layout:
//
//	rec/<resource>/<uuid>  -> {"seq": n, "data": <record JSON>}
//	seq/<resource>         -> big-endian uint64, last issued sequence
//
// Scans iterate the resource prefix and order by seq, so listings follow insertion order.
package level

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/rs/zerolog"
	levelDb "github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// DB is a shared goleveldb handle. Writers serialize on mu so read-modify-write
// sequences (sequence allocation, merges) do not interleave.
type DB struct {
	db  *levelDb.DB
	mu  sync.Mutex
	log zerolog.Logger
}

// Open opens or creates the database directory at path.
func Open(path string, logger zerolog.Logger) (*DB, error) {
	db, err := levelDb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb %s: %w", path, err)
	}
	l := logger.With().Str("module", "repository").Str("component", "leveldb").Logger()
	l.Info().Str("path", path).Msg("leveldb opened")
	return &DB{db: db, log: l}, nil
}

// OpenMemory opens a database backed by goleveldb's in-memory storage.
func OpenMemory(logger zerolog.Logger) (*DB, error) {
	db, err := levelDb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("open in-memory leveldb: %w", err)
	}
	return &DB{db: db, log: logger.With().Str("module", "repository").Str("component", "leveldb").Logger()}, nil
}

// Ping fails once the database has been closed.
func (d *DB) Ping(_ context.Context) error {
	_, err := d.db.GetProperty("leveldb.num-files-at-level0")
	return err
}

func (d *DB) Close() error { return d.db.Close() }

var _ repository.Pinger = (*DB)(nil)

type envelope struct {
	Seq  uint64          `json:"seq"`
	Data json.RawMessage `json:"data"`
}

// Store is the record store of one resource.
type Store[T repository.Record[T]] struct {
	db       *DB
	resource string
}

func NewStore[T repository.Record[T]](db *DB, resource string) *Store[T] {
	return &Store[T]{db: db, resource: resource}
}

func (s *Store[T]) prefix() []byte { return []byte("rec/" + s.resource + "/") }

func (s *Store[T]) key(id uuid.UUID) []byte { return append(s.prefix(), id.String()...) }

func (s *Store[T]) seqKey() []byte { return []byte("seq/" + s.resource) }

func mapError(err error) error {
	if errors.Is(err, levelDb.ErrNotFound) {
		return repository.ErrNotFound
	}
	return err
}

func (s *Store[T]) load(id uuid.UUID) (envelope, error) {
	raw, err := s.db.db.Get(s.key(id), nil)
	if err != nil {
		return envelope{}, mapError(err)
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return env, nil
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

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	key := s.key(rec.RecordID())
	exists, err := s.db.db.Has(key, nil)
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, repository.ErrAlreadyExists
	}

	var seq uint64
	raw, err := s.db.db.Get(s.seqKey(), nil)
	switch {
	case err == nil && len(raw) == 8:
		seq = binary.BigEndian.Uint64(raw)
	case err != nil && !errors.Is(err, levelDb.ErrNotFound):
		return zero, err
	}
	seq++

	env, err := json.Marshal(envelope{Seq: seq, Data: doc})
	if err != nil {
		return zero, fmt.Errorf("encode envelope: %w", err)
	}
	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, seq)

	batch := new(levelDb.Batch)
	batch.Put(s.seqKey(), next)
	batch.Put(key, env)
	if err := s.db.db.Write(batch, nil); err != nil {
		return zero, err
	}
	return repository.Decode[T](doc)
}

func (s *Store[T]) Get(_ context.Context, id uuid.UUID) (T, error) {
	env, err := s.load(id)
	if err != nil {
		var zero T
		return zero, err
	}
	return repository.Decode[T](env.Data)
}

func (s *Store[T]) Scan(_ context.Context, f repository.Filters) ([]T, error) {
	iter := s.db.db.NewIterator(util.BytesPrefix(s.prefix()), nil)
	defer iter.Release()

	var envs []envelope
	for iter.Next() {
		var env envelope
		if err := json.Unmarshal(iter.Value(), &env); err != nil {
			return nil, fmt.Errorf("decode envelope: %w", err)
		}
		ok, err := repository.MatchDocument(env.Data, f)
		if err != nil {
			return nil, err
		}
		if ok {
			envs = append(envs, env)
		}
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}

	sort.Slice(envs, func(i, j int) bool { return envs[i].Seq < envs[j].Seq })
	out := make([]T, 0, len(envs))
	for _, env := range envs {
		rec, err := repository.Decode[T](env.Data)
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
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	env, err := s.load(id)
	if err != nil {
		return zero, err
	}
	merged, err := repository.MergeDocument(env.Data, patch)
	if err != nil {
		return zero, err
	}
	rec, err := repository.Decode[T](merged)
	if err != nil {
		return zero, err
	}
	doc, err := repository.Encode(rec)
	if err != nil {
		return zero, err
	}
	raw, err := json.Marshal(envelope{Seq: env.Seq, Data: doc})
	if err != nil {
		return zero, fmt.Errorf("encode envelope: %w", err)
	}
	if err := s.db.db.Put(s.key(id), raw, nil); err != nil {
		return zero, err
	}
	return rec, nil
}

func (s *Store[T]) Remove(_ context.Context, id uuid.UUID) (T, error) {
	var zero T
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	env, err := s.load(id)
	if err != nil {
		return zero, err
	}
	if err := s.db.db.Delete(s.key(id), nil); err != nil {
		return zero, err
	}
	return repository.Decode[T](env.Data)
}

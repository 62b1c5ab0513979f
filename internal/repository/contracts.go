package repository

import (
	"context"

	"github.com/google/uuid"
)

// Pinger is the readiness probe every storage backend offers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc runs inside a transaction carried by ctx.
type TxFunc func(ctx context.Context) error

// TxManager runs a TxFunc in one transaction on backends that have them.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// Record is a domain value addressable by a UUID key.
// WithRecordID returns a copy carrying the given key, so stores can assign keys without reflection.
type Record[T any] interface {
	RecordID() uuid.UUID
	WithRecordID(id uuid.UUID) T
}

// Store is the generic record store. Every backend (memory, sqlite, leveldb, postgres) implements it
// and returns the domain errors from errors.go rather than driver errors.
type Store[T Record[T]] interface {
	// Insert assigns a key when the value has none and stores it.
	// An explicit key that is already present yields ErrAlreadyExists.
	Insert(ctx context.Context, rec T) (T, error)
	Get(ctx context.Context, id uuid.UUID) (T, error)
	// Scan returns every record matching all filters, in insertion order.
	Scan(ctx context.Context, f Filters) ([]T, error)
	// List is Scan windowed by the page and wrapped with pagination metadata.
	List(ctx context.Context, f Filters, p Page) (PageResult[T], error)
	// Update merges the patch's top-level fields over the stored record.
	Update(ctx context.Context, id uuid.UUID, patch Patch) (T, error)
	Remove(ctx context.Context, id uuid.UUID) (T, error)
}

package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/maxviazov/planning-api/internal/repository"
)

// Store keeps one resource's records as JSONB documents in the shared records table.
type Store[T repository.Record[T]] struct {
	db       *DB
	resource string
}

func NewStore[T repository.Record[T]](db *DB, resource string) *Store[T] {
	return &Store[T]{db: db, resource: resource}
}

// where renders the resource predicate plus one `data ->> field = value` comparison per filter.
func (s *Store[T]) where(f repository.Filters) (string, []any, error) {
	if err := f.Validate(); err != nil {
		return "", nil, err
	}
	var b strings.Builder
	b.WriteString("resource = $1")
	args := []any{s.resource}
	for _, k := range f.Keys() {
		args = append(args, k, f[k])
		fmt.Fprintf(&b, " AND data ->> $%d::text = $%d::text", len(args)-1, len(args))
	}
	return b.String(), args, nil
}

func (s *Store[T]) Insert(ctx context.Context, rec T) (T, error) {
	var zero T
	if rec.RecordID() == uuid.Nil {
		rec = rec.WithRecordID(uuid.New())
	}
	doc, err := repository.Encode(rec)
	if err != nil {
		return zero, err
	}
	_, err = getQ(ctx, s.db.pool).Exec(ctx,
		`INSERT INTO records (resource, id, data) VALUES ($1, $2, $3::jsonb)`,
		s.resource, rec.RecordID(), string(doc))
	if err != nil {
		return zero, mapError(err)
	}
	return repository.Decode[T](doc)
}

func (s *Store[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T
	var doc []byte
	err := getQ(ctx, s.db.pool).QueryRow(ctx,
		`SELECT data FROM records WHERE resource = $1 AND id = $2`,
		s.resource, id).Scan(&doc)
	if err != nil {
		return zero, mapError(err)
	}
	return repository.Decode[T](doc)
}

func (s *Store[T]) Scan(ctx context.Context, f repository.Filters) ([]T, error) {
	where, args, err := s.where(f)
	if err != nil {
		return nil, err
	}
	return s.query(ctx, `SELECT data FROM records WHERE `+where+` ORDER BY seq`, args...)
}

func (s *Store[T]) List(ctx context.Context, f repository.Filters, p repository.Page) (repository.PageResult[T], error) {
	where, args, err := s.where(f)
	if err != nil {
		return repository.PageResult[T]{}, err
	}
	// A separate count keeps total correct when the offset runs past the last row.
	var total int
	if err := getQ(ctx, s.db.pool).QueryRow(ctx, `SELECT COUNT(*) FROM records WHERE `+where, args...).Scan(&total); err != nil {
		return repository.PageResult[T]{}, mapError(err)
	}
	if p.Limit <= 0 {
		return repository.NewPageResult[T](nil, total, p), nil
	}
	n := len(args)
	items, err := s.query(ctx,
		fmt.Sprintf(`SELECT data FROM records WHERE %s ORDER BY seq LIMIT $%d OFFSET $%d`, where, n+1, n+2),
		append(args, p.Limit, max(p.Offset, 0))...)
	if err != nil {
		return repository.PageResult[T]{}, err
	}
	return repository.NewPageResult(items, total, p), nil
}

// Update locks the row, merges the patch in Go and writes the document back,
// so every backend shares the same top-level merge semantics.
func (s *Store[T]) Update(ctx context.Context, id uuid.UUID, patch repository.Patch) (T, error) {
	var out T
	err := s.db.tx.WithinTx(ctx, func(ctx context.Context) error {
		qr := getQ(ctx, s.db.pool)
		var current []byte
		err := qr.QueryRow(ctx,
			`SELECT data FROM records WHERE resource = $1 AND id = $2 FOR UPDATE`,
			s.resource, id).Scan(&current)
		if err != nil {
			return err
		}
		merged, err := repository.MergeDocument(current, patch)
		if err != nil {
			return err
		}
		rec, err := repository.Decode[T](merged)
		if err != nil {
			return err
		}
		doc, err := repository.Encode(rec)
		if err != nil {
			return err
		}
		if _, err := qr.Exec(ctx,
			`UPDATE records SET data = $3::jsonb, updated_at = now() WHERE resource = $1 AND id = $2`,
			s.resource, id, string(doc)); err != nil {
			return err
		}
		out = rec
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (s *Store[T]) Remove(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T
	var doc []byte
	err := getQ(ctx, s.db.pool).QueryRow(ctx,
		`DELETE FROM records WHERE resource = $1 AND id = $2 RETURNING data`,
		s.resource, id).Scan(&doc)
	if err != nil {
		return zero, mapError(err)
	}
	return repository.Decode[T](doc)
}

func (s *Store[T]) query(ctx context.Context, sql string, args ...any) ([]T, error) {
	rows, err := getQ(ctx, s.db.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		rec, err := repository.Decode[T](doc)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

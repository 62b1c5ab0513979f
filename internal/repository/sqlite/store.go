package sqlite

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/maxviazov/planning-api/internal/repository"
)

// Store is the record store of one resource, sharing the records table with its siblings.
type Store[T repository.Record[T]] struct {
	db       *DB
	resource string
}

func NewStore[T repository.Record[T]](db *DB, resource string) *Store[T] {
	return &Store[T]{db: db, resource: resource}
}

// where renders the resource predicate plus one json_extract comparison per filter.
// Booleans are normalised to true/false so they compare like the other backends.
func (s *Store[T]) where(f repository.Filters) (string, []any, error) {
	if err := f.Validate(); err != nil {
		return "", nil, err
	}
	var b strings.Builder
	b.WriteString("resource = ?")
	args := []any{s.resource}
	for _, k := range f.Keys() {
		path := "$." + k
		b.WriteString(" AND CASE json_type(data, ?) WHEN 'true' THEN 'true' WHEN 'false' THEN 'false'" +
			" ELSE CAST(json_extract(data, ?) AS TEXT) END = ?")
		args = append(args, path, path, f[k])
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
	_, err = s.db.db.ExecContext(ctx,
		`INSERT INTO records (resource, id, data) VALUES (?, ?, ?)`,
		s.resource, rec.RecordID().String(), string(doc))
	if err != nil {
		return zero, mapError(err)
	}
	return repository.Decode[T](doc)
}

func (s *Store[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T
	var doc string
	err := s.db.db.QueryRowContext(ctx,
		`SELECT data FROM records WHERE resource = ? AND id = ?`,
		s.resource, id.String()).Scan(&doc)
	if err != nil {
		return zero, mapError(err)
	}
	return repository.Decode[T]([]byte(doc))
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
	var total int
	if err := s.db.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records WHERE `+where, args...).Scan(&total); err != nil {
		return repository.PageResult[T]{}, mapError(err)
	}
	if p.Limit <= 0 {
		return repository.NewPageResult[T](nil, total, p), nil
	}
	items, err := s.query(ctx,
		`SELECT data FROM records WHERE `+where+` ORDER BY seq LIMIT ? OFFSET ?`,
		append(args, p.Limit, max(p.Offset, 0))...)
	if err != nil {
		return repository.PageResult[T]{}, err
	}
	return repository.NewPageResult(items, total, p), nil
}

func (s *Store[T]) Update(ctx context.Context, id uuid.UUID, patch repository.Patch) (T, error) {
	var zero T
	tx, err := s.db.db.BeginTx(ctx, nil)
	if err != nil {
		return zero, err
	}
	defer func() { _ = tx.Rollback() }()

	var current string
	err = tx.QueryRowContext(ctx,
		`SELECT data FROM records WHERE resource = ? AND id = ?`,
		s.resource, id.String()).Scan(&current)
	if err != nil {
		return zero, mapError(err)
	}
	merged, err := repository.MergeDocument([]byte(current), patch)
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
	_, err = tx.ExecContext(ctx,
		`UPDATE records SET data = ?, updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now') WHERE resource = ? AND id = ?`,
		string(doc), s.resource, id.String())
	if err != nil {
		return zero, mapError(err)
	}
	if err := tx.Commit(); err != nil {
		return zero, err
	}
	return rec, nil
}

func (s *Store[T]) Remove(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T
	var doc string
	err := s.db.db.QueryRowContext(ctx,
		`DELETE FROM records WHERE resource = ? AND id = ? RETURNING data`,
		s.resource, id.String()).Scan(&doc)
	if err != nil {
		return zero, mapError(err)
	}
	return repository.Decode[T]([]byte(doc))
}

func (s *Store[T]) query(ctx context.Context, query string, args ...any) ([]T, error) {
	rows, err := s.db.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer func() { _ = rows.Close() }()

	out := []T{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		rec, err := repository.Decode[T]([]byte(doc))
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

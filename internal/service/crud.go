package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/rs/zerolog"
)

// Server-managed fields. Clients may not set them through an update.
const (
	fieldID           = repository.KeyField
	fieldCreatedAt    = "createdAt"
	fieldLastModified = "lastModified"
)

// crudOptions configure the generic CRUD core for one resource.
type crudOptions[T any] struct {
	// name is the singular resource name used in errors and logs ("policy").
	name string
	// searchFields are the JSON fields ?search= looks into.
	searchFields []string
	// readOnly fields are dropped from update patches.
	readOnly []string
	// stampFields are set to the current time on every update.
	stampFields []string

	beforeCreate func(ctx context.Context, rec T, now time.Time) (T, error)
	// beforeUpdate sees the merged record and may add fields to the patch.
	beforeUpdate func(ctx context.Context, merged T, patch repository.Patch, now time.Time) error
	// beforeDelete removes dependents; the record itself is removed only when it succeeds.
	beforeDelete func(ctx context.Context, rec T) error
}

// crud implements Resource[T] over a record store; resource services embed it and add their own use cases.
type crud[T repository.Record[T]] struct {
	store repository.Store[T]
	opts  crudOptions[T]
	// fields is T's JSON field set; update patches are restricted to it.
	fields map[string]struct{}
	log    zerolog.Logger
	now    func() time.Time
}

func newCRUD[T repository.Record[T]](store repository.Store[T], opts crudOptions[T], logger zerolog.Logger) *crud[T] {
	l := logger.With().Str("module", "service").Str("component", strings.ReplaceAll(opts.name, " ", "_")).Logger()
	return &crud[T]{
		store:  store,
		opts:   opts,
		fields: jsonFields(reflect.TypeFor[T]()),
		log:    l,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// jsonFields lists the JSON names of a struct's exported fields, following embedded structs.
func jsonFields(t reflect.Type) map[string]struct{} {
	out := map[string]struct{}{}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return out
	}
	for i := range t.NumField() {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || (!f.IsExported() && !f.Anonymous) {
			continue
		}
		if f.Anonymous && name == "" {
			for k := range jsonFields(f.Type) {
				out[k] = struct{}{}
			}
			continue
		}
		if name == "" {
			name = f.Name
		}
		out[name] = struct{}{}
	}
	return out
}

// wrap names the resource on not-found errors; other errors pass through unchanged.
func (c *crud[T]) wrap(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(c.opts.name)
	}
	if errors.Is(err, repository.ErrAlreadyExists) {
		return fmt.Errorf("%s id %w", c.opts.name, repository.ErrAlreadyExists)
	}
	return err
}

func (c *crud[T]) Create(ctx context.Context, rec T) (T, error) {
	start := time.Now()
	var zero T
	if c.opts.beforeCreate != nil {
		var err error
		if rec, err = c.opts.beforeCreate(ctx, rec, c.now()); err != nil {
			return zero, err
		}
	}
	if err := validateRecord(rec); err != nil {
		c.log.Debug().Interface("field_errors", FieldErrors(err)).Msg("validation failed")
		return zero, err
	}
	out, err := c.store.Insert(ctx, rec)
	if err != nil {
		c.log.Error().Err(err).Msg("create failed")
		return zero, c.wrap(err)
	}
	c.log.Info().Dur("took", time.Since(start)).Str("id", out.RecordID().String()).Msgf("%s created", c.opts.name)
	return out, nil
}

func (c *crud[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	rec, err := c.store.Get(ctx, id)
	if err != nil {
		return rec, c.wrap(err)
	}
	return rec, nil
}

func (c *crud[T]) List(ctx context.Context, q ListQuery) (repository.PageResult[T], error) {
	p := normalizePage(q.Page)
	if err := q.Filters.Validate(); err != nil {
		return repository.PageResult[T]{}, InvalidField("filters", err.Error())
	}
	if q.SortBy != "" {
		if err := validateFieldName("sort_by", q.SortBy); err != nil {
			return repository.PageResult[T]{}, err
		}
	}
	desc := false
	switch strings.ToLower(q.Order) {
	case "", "asc":
	case "desc":
		desc = true
	default:
		return repository.PageResult[T]{}, InvalidField("order", "must be asc or desc")
	}

	// Without search or sort the backend windows the scan itself.
	if strings.TrimSpace(q.Search) == "" && q.SortBy == "" {
		res, err := c.store.List(ctx, q.Filters, p)
		if err != nil {
			c.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list failed")
		}
		return res, err
	}

	all, err := c.store.Scan(ctx, q.Filters)
	if err != nil {
		c.log.Error().Err(err).Msg("scan failed")
		return repository.PageResult[T]{}, err
	}
	items, err := index(all)
	if err != nil {
		return repository.PageResult[T]{}, err
	}
	items = search(items, c.opts.searchFields, q.Search)
	if q.SortBy != "" {
		sortBy(items, q.SortBy, desc)
	}
	return repository.Paginate(records(items), p), nil
}

func (c *crud[T]) Update(ctx context.Context, id uuid.UUID, patch repository.Patch) (T, error) {
	var zero T
	patch = patch.Only(c.fields).Without(append([]string{fieldID}, c.opts.readOnly...)...)
	if len(patch) == 0 {
		return zero, InvalidField("body", "no fields to update")
	}

	current, err := c.store.Get(ctx, id)
	if err != nil {
		return zero, c.wrap(err)
	}
	now := c.now()
	for _, f := range c.opts.stampFields {
		if err := patch.Set(f, now); err != nil {
			return zero, err
		}
	}

	merged, err := repository.ApplyPatch(current, patch)
	if err != nil {
		return zero, decodeError(err)
	}
	if c.opts.beforeUpdate != nil {
		if err := c.opts.beforeUpdate(ctx, merged, patch, now); err != nil {
			return zero, err
		}
		if merged, err = repository.ApplyPatch(current, patch); err != nil {
			return zero, decodeError(err)
		}
	}
	if err := validateRecord(merged); err != nil {
		c.log.Debug().Interface("field_errors", FieldErrors(err)).Str("id", id.String()).Msg("update validation failed")
		return zero, err
	}

	out, err := c.store.Update(ctx, id, patch)
	if err != nil {
		c.log.Error().Err(err).Str("id", id.String()).Msg("update failed")
		return zero, c.wrap(err)
	}
	return out, nil
}

func (c *crud[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if c.opts.beforeDelete != nil {
		rec, err := c.store.Get(ctx, id)
		if err != nil {
			return c.wrap(err)
		}
		if err := c.opts.beforeDelete(ctx, rec); err != nil {
			c.log.Error().Err(err).Str("id", id.String()).Msg("cascade delete failed")
			return err
		}
	}
	if _, err := c.store.Remove(ctx, id); err != nil {
		return c.wrap(err)
	}
	c.log.Info().Str("id", id.String()).Msgf("%s deleted", c.opts.name)
	return nil
}

// scanOne returns the first record matching f, or nil.
func (c *crud[T]) scanOne(ctx context.Context, f repository.Filters) (*T, error) {
	all, err := c.store.Scan(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return &all[0], nil
}

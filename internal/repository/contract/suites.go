// Package contract holds behaviour suites every record store backend must pass.
package contract

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/maxviazov/planning-api/internal/repository"
)

// Note is the record shape the suites exercise.
type Note struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Status string    `json:"status,omitempty"`
	Rank   int       `json:"rank"`
	Weight float64   `json:"weight,omitempty"`
	Pinned bool      `json:"pinned"`
	Tags   []string  `json:"tags,omitempty"`
	Body   string    `json:"body,omitempty"`
}

func (n Note) RecordID() uuid.UUID { return n.ID }

func (n Note) WithRecordID(id uuid.UUID) Note {
	n.ID = id
	return n
}

// StoreFactory returns a constructor for stores of a named resource over one fresh backend, plus cleanup.
type StoreFactory func(t *testing.T) (open func(resource string) repository.Store[Note], cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

func patchOf(t *testing.T, fields map[string]any) repository.Patch {
	t.Helper()
	p := repository.Patch{}
	for k, v := range fields {
		if err := p.Set(k, v); err != nil {
			t.Fatalf("patch: %v", err)
		}
	}
	return p
}

func seed(t *testing.T, s repository.Store[Note], n int) []Note {
	t.Helper()
	out := make([]Note, 0, n)
	for i := 0; i < n; i++ {
		rec, err := s.Insert(context.Background(), Note{Title: fmt.Sprintf("note-%02d", i), Rank: i})
		if err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
		out = append(out, rec)
	}
	return out
}

func size(t *testing.T, s repository.Store[Note]) int {
	t.Helper()
	all, err := s.Scan(context.Background(), nil)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	return len(all)
}

func RunStoreContract(t *testing.T, makeStore StoreFactory) {
	t.Helper()

	fresh := func(t *testing.T) repository.Store[Note] {
		open, cleanup := makeStore(t)
		t.Cleanup(cleanup)
		return open("notes")
	}

	t.Run("insert_assigns_key_and_round_trips", func(t *testing.T) {
		s := fresh(t)
		ctx := context.Background()
		created, err := s.Insert(ctx, Note{Title: "Green belt review", Tags: []string{"a", "b"}, Weight: 2.5})
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
		if created.ID == uuid.Nil {
			t.Fatalf("expected generated key")
		}
		got, err := s.Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != created.ID || got.Title != created.Title || len(got.Tags) != 2 || got.Weight != 2.5 {
			t.Fatalf("round trip mismatch: %+v vs %+v", got, created)
		}
	})

	t.Run("insert_keeps_explicit_key", func(t *testing.T) {
		s := fresh(t)
		id := uuid.New()
		created, err := s.Insert(context.Background(), Note{ID: id, Title: "explicit"})
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
		if created.ID != id {
			t.Fatalf("expected key %s, got %s", id, created.ID)
		}
	})

	t.Run("insert_duplicate_key_rejected", func(t *testing.T) {
		s := fresh(t)
		id := uuid.New()
		if _, err := s.Insert(context.Background(), Note{ID: id, Title: "first"}); err != nil {
			t.Fatalf("insert: %v", err)
		}
		_, err := s.Insert(context.Background(), Note{ID: id, Title: "second"})
		if !errors.Is(err, repository.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
		got, _ := s.Get(context.Background(), id)
		if got.Title != "first" {
			t.Fatalf("original record overwritten: %+v", got)
		}
	})

	t.Run("duplicate_business_fields_permitted", func(t *testing.T) {
		s := fresh(t)
		for i := 0; i < 2; i++ {
			if _, err := s.Insert(context.Background(), Note{Title: "same"}); err != nil {
				t.Fatalf("insert %d: %v", i, err)
			}
		}
		if n := size(t, s); n != 2 {
			t.Fatalf("expected 2 records, got %d", n)
		}
	})

	t.Run("missing_key_not_found", func(t *testing.T) {
		s := fresh(t)
		ctx := context.Background()
		missing := uuid.New()
		if _, err := s.Get(ctx, missing); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("get: expected ErrNotFound, got %v", err)
		}
		if _, err := s.Update(ctx, missing, patchOf(t, map[string]any{"title": "x"})); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("update: expected ErrNotFound, got %v", err)
		}
		if _, err := s.Remove(ctx, missing); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("remove: expected ErrNotFound, got %v", err)
		}
	})

	t.Run("update_missing_leaves_size", func(t *testing.T) {
		s := fresh(t)
		seed(t, s, 3)
		_, err := s.Update(context.Background(), uuid.New(), patchOf(t, map[string]any{"title": "ghost"}))
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if n := size(t, s); n != 3 {
			t.Fatalf("store size changed: %d", n)
		}
	})

	t.Run("update_merges_partial", func(t *testing.T) {
		s := fresh(t)
		ctx := context.Background()
		created, _ := s.Insert(ctx, Note{Title: "draft", Status: "open", Rank: 4, Tags: []string{"x"}, Body: "keep me"})
		updated, err := s.Update(ctx, created.ID, patchOf(t, map[string]any{"status": "closed", "rank": 9}))
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.Status != "closed" || updated.Rank != 9 {
			t.Fatalf("supplied fields not applied: %+v", updated)
		}
		if updated.Title != "draft" || updated.Body != "keep me" || len(updated.Tags) != 1 {
			t.Fatalf("absent fields not preserved: %+v", updated)
		}
		got, _ := s.Get(ctx, created.ID)
		if got.Status != "closed" || got.Body != "keep me" {
			t.Fatalf("update not persisted: %+v", got)
		}
	})

	t.Run("update_null_clears_field", func(t *testing.T) {
		s := fresh(t)
		ctx := context.Background()
		created, _ := s.Insert(ctx, Note{Title: "t", Body: "gone soon"})
		updated, err := s.Update(ctx, created.ID, repository.Patch{"body": []byte("null")})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.Body != "" || updated.Title != "t" {
			t.Fatalf("unexpected record: %+v", updated)
		}
	})

	t.Run("update_never_changes_key", func(t *testing.T) {
		s := fresh(t)
		ctx := context.Background()
		created, _ := s.Insert(ctx, Note{Title: "t"})
		updated, err := s.Update(ctx, created.ID, patchOf(t, map[string]any{"id": uuid.New(), "title": "u"}))
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.ID != created.ID {
			t.Fatalf("key changed to %s", updated.ID)
		}
	})

	t.Run("remove_then_get_not_found", func(t *testing.T) {
		s := fresh(t)
		ctx := context.Background()
		created, _ := s.Insert(ctx, Note{Title: "bye"})
		removed, err := s.Remove(ctx, created.ID)
		if err != nil {
			t.Fatalf("remove: %v", err)
		}
		if removed.ID != created.ID || removed.Title != "bye" {
			t.Fatalf("remove returned %+v", removed)
		}
		if _, err := s.Get(ctx, created.ID); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after remove, got %v", err)
		}
		if _, err := s.Remove(ctx, created.ID); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("second remove: expected ErrNotFound, got %v", err)
		}
	})

	t.Run("scan_exact_match_filters", func(t *testing.T) {
		s := fresh(t)
		ctx := context.Background()
		_, _ = s.Insert(ctx, Note{Title: "a", Status: "open", Rank: 1, Pinned: true})
		_, _ = s.Insert(ctx, Note{Title: "b", Status: "open", Rank: 2})
		_, _ = s.Insert(ctx, Note{Title: "c", Status: "closed", Rank: 1, Pinned: true})
		_, _ = s.Insert(ctx, Note{Title: "d"})

		cases := []struct {
			filters repository.Filters
			want    []string
		}{
			{nil, []string{"a", "b", "c", "d"}},
			{repository.Filters{"status": "open"}, []string{"a", "b"}},
			{repository.Filters{"status": "open", "rank": "1"}, []string{"a"}},
			{repository.Filters{"pinned": "true"}, []string{"a", "c"}},
			{repository.Filters{"status": "Open"}, nil},
			{repository.Filters{"missing": "x"}, nil},
		}
		for _, tc := range cases {
			got, err := s.Scan(ctx, tc.filters)
			if err != nil {
				t.Fatalf("scan %v: %v", tc.filters, err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("scan %v: expected %d records, got %d", tc.filters, len(tc.want), len(got))
			}
			for i, title := range tc.want {
				if got[i].Title != title {
					t.Fatalf("scan %v: position %d expected %q, got %q", tc.filters, i, title, got[i].Title)
				}
			}
		}
	})

	t.Run("list_twenty_five_records", func(t *testing.T) {
		s := fresh(t)
		ctx := context.Background()
		seed(t, s, 25)

		first, err := s.List(ctx, nil, repository.Page{Offset: 0, Limit: 20})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if first.Total != 25 || first.Page != 1 || first.TotalPages != 2 || len(first.Items) != 20 {
			t.Fatalf("unexpected first page: total=%d page=%d pages=%d len=%d", first.Total, first.Page, first.TotalPages, len(first.Items))
		}
		second, err := s.List(ctx, nil, repository.Page{Offset: 20, Limit: 20})
		if err != nil {
			t.Fatalf("list2: %v", err)
		}
		if len(second.Items) != 5 || second.Page != 2 || second.Total != 25 {
			t.Fatalf("unexpected second page: len=%d page=%d total=%d", len(second.Items), second.Page, second.Total)
		}
		if second.Items[0].Title != "note-20" {
			t.Fatalf("expected insertion order, got %q first", second.Items[0].Title)
		}
	})

	t.Run("list_last_page_length", func(t *testing.T) {
		for _, tc := range []struct{ n, limit int }{{7, 3}, {9, 3}, {1, 5}, {10, 1}} {
			s := fresh(t)
			seed(t, s, tc.n)
			pages := (tc.n + tc.limit - 1) / tc.limit
			last, err := s.List(context.Background(), nil, repository.Page{Offset: (pages - 1) * tc.limit, Limit: tc.limit})
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if last.TotalPages != pages {
				t.Fatalf("n=%d limit=%d: expected %d pages, got %d", tc.n, tc.limit, pages, last.TotalPages)
			}
			if want := tc.n - (pages-1)*tc.limit; len(last.Items) != want {
				t.Fatalf("n=%d limit=%d: expected last page of %d, got %d", tc.n, tc.limit, want, len(last.Items))
			}
		}
	})

	t.Run("list_zero_limit_and_overrun", func(t *testing.T) {
		s := fresh(t)
		seed(t, s, 4)
		zero, err := s.List(context.Background(), nil, repository.Page{Limit: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if zero.Page != 1 || zero.TotalPages != 1 || zero.Total != 4 || len(zero.Items) != 0 {
			t.Fatalf("unexpected zero-limit page: %+v", zero)
		}
		over, err := s.List(context.Background(), nil, repository.Page{Offset: 40, Limit: 10})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if over.Total != 4 || len(over.Items) != 0 || over.Items == nil {
			t.Fatalf("unexpected overrun page: %+v", over)
		}
	})

	t.Run("list_filtered_total", func(t *testing.T) {
		s := fresh(t)
		ctx := context.Background()
		for i := 0; i < 6; i++ {
			status := "open"
			if i%3 == 0 {
				status = "closed"
			}
			_, _ = s.Insert(ctx, Note{Title: fmt.Sprint(i), Status: status})
		}
		res, err := s.List(ctx, repository.Filters{"status": "open"}, repository.Page{Limit: 3})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if res.Total != 4 || len(res.Items) != 3 || res.TotalPages != 2 {
			t.Fatalf("unexpected filtered page: total=%d len=%d pages=%d", res.Total, len(res.Items), res.TotalPages)
		}
	})

	t.Run("resources_are_isolated", func(t *testing.T) {
		open, cleanup := makeStore(t)
		t.Cleanup(cleanup)
		notes, drafts := open("notes"), open("drafts")
		created, _ := notes.Insert(context.Background(), Note{Title: "only in notes"})
		if _, err := drafts.Get(context.Background(), created.ID); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound across resources, got %v", err)
		}
		if n := size(t, drafts); n != 0 {
			t.Fatalf("sibling resource sees %d records", n)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	t.Run("ping_ok", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		if err := p.Ping(context.Background()); err != nil {
			t.Fatalf("ping: %v", err)
		}
	})
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/maxviazov/planning-api/internal/service"
)

func TestPolicyService_Create(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t).Policies

	t.Run("assigns key and lastModified", func(t *testing.T) {
		p, err := svc.Create(ctx, newPolicy("H1", "Housing Mix"))
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, p.ID)
		assert.False(t, p.LastModified.IsZero())

		got, err := svc.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	})

	t.Run("keeps a client key", func(t *testing.T) {
		id := uuid.New()
		in := newPolicy("H2", "Affordable Housing")
		in.ID = id
		p, err := svc.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, id, p.ID)

		_, err = svc.Create(ctx, in)
		require.ErrorIs(t, err, repository.ErrAlreadyExists)
	})

	cases := []struct {
		name  string
		edit  func(*model.Policy)
		field string
	}{
		{"missing reference", func(p *model.Policy) { p.Reference = "" }, "reference"},
		{"unknown status", func(p *model.Policy) { p.Status = "Pending" }, "status"},
		{"missing document", func(p *model.Policy) { p.DocumentID = uuid.Nil }, "documentId"},
		{"bad link", func(p *model.Policy) {
			p.LinkedPolicies = []model.LinkedPolicy{{PolicyID: uuid.New(), PolicyReference: "DM5", Relationship: "LIKES"}}
		}, "linkedPolicies[0].relationship"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := newPolicy("X1", "Invalid")
			tc.edit(&p)
			_, err := svc.Create(ctx, p)
			require.ErrorIs(t, err, service.ErrInvalidInput)
			assert.True(t, hasField(err, tc.field), "field errors: %v", service.FieldErrors(err))
		})
	}
}

func TestPolicyService_GetMissing(t *testing.T) {
	_, err := newServices(t).Policies.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, "policy not found", err.Error())
}

func TestPolicyService_List(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t).Policies
	for _, ref := range []string{"H3", "H1", "E10", "H2"} {
		p := newPolicy(ref, "Policy "+ref)
		if ref == "E10" {
			p.Status = model.PolicyStatusDraft
			p.Wording = "Employment land in the Zone Économique"
		}
		_, err := svc.Create(ctx, p)
		require.NoError(t, err)
	}

	t.Run("insertion order with metadata", func(t *testing.T) {
		res, err := svc.List(ctx, service.ListQuery{Page: repository.Page{Limit: 3}})
		require.NoError(t, err)
		assert.Equal(t, 4, res.Total)
		assert.Equal(t, 2, res.TotalPages)
		assert.Equal(t, 1, res.Page)
		require.Len(t, res.Items, 3)
		assert.Equal(t, "H3", res.Items[0].Reference)
	})

	t.Run("default limit", func(t *testing.T) {
		res, err := svc.List(ctx, service.ListQuery{})
		require.NoError(t, err)
		assert.Equal(t, 20, res.Limit)
	})

	t.Run("filter", func(t *testing.T) {
		res, err := svc.List(ctx, service.ListQuery{Filters: repository.Filters{"status": "Draft"}})
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "E10", res.Items[0].Reference)
	})

	t.Run("search folds case and accents", func(t *testing.T) {
		res, err := svc.List(ctx, service.ListQuery{Search: "ÉCONOMIQUE"})
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "E10", res.Items[0].Reference)
	})

	t.Run("search ignores accents in the query", func(t *testing.T) {
		res, err := svc.List(ctx, service.ListQuery{Search: "economique"})
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "E10", res.Items[0].Reference)
	})

	t.Run("sort desc", func(t *testing.T) {
		res, err := svc.List(ctx, service.ListQuery{SortBy: "reference", Order: "desc"})
		require.NoError(t, err)
		refs := make([]string, 0, len(res.Items))
		for _, p := range res.Items {
			refs = append(refs, p.Reference)
		}
		assert.Equal(t, []string{"H3", "H2", "H1", "E10"}, refs)
	})

	t.Run("bad order", func(t *testing.T) {
		_, err := svc.List(ctx, service.ListQuery{SortBy: "reference", Order: "sideways"})
		require.ErrorIs(t, err, service.ErrInvalidInput)
		assert.True(t, hasField(err, "order"))
	})

	t.Run("bad sort field", func(t *testing.T) {
		_, err := svc.List(ctx, service.ListQuery{SortBy: "a.b"})
		assert.True(t, hasField(err, "sort_by"))
	})
}

func TestPolicyService_Update(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t).Policies
	p, err := svc.Create(ctx, newPolicy("H1", "Housing Mix"))
	require.NoError(t, err)

	t.Run("merges and keeps absent fields", func(t *testing.T) {
		got, err := svc.Update(ctx, p.ID, patchOf(t, `{"title":"Housing Mix and Density"}`))
		require.NoError(t, err)
		assert.Equal(t, "Housing Mix and Density", got.Title)
		assert.Equal(t, p.Reference, got.Reference)
		assert.Equal(t, p.ID, got.ID)
		assert.False(t, got.LastModified.Before(p.LastModified))
	})

	t.Run("ignores server fields", func(t *testing.T) {
		got, err := svc.Update(ctx, p.ID, patchOf(t, `{"id":"`+uuid.NewString()+`","reference":"H1a"}`))
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
		assert.Equal(t, "H1a", got.Reference)
	})

	t.Run("empty patch", func(t *testing.T) {
		_, err := svc.Update(ctx, p.ID, patchOf(t, `{"lastModified":"2020-01-01T00:00:00Z"}`))
		require.ErrorIs(t, err, service.ErrInvalidInput)
		assert.True(t, hasField(err, "body"))
	})

	t.Run("unknown fields only", func(t *testing.T) {
		before, err := svc.Get(ctx, p.ID)
		require.NoError(t, err)
		_, err = svc.Update(ctx, p.ID, patchOf(t, `{"bogus":1,"titel":"typo"}`))
		require.ErrorIs(t, err, service.ErrInvalidInput)
		assert.True(t, hasField(err, "body"))

		after, err := svc.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, before.LastModified, after.LastModified)
	})

	t.Run("unknown fields are dropped", func(t *testing.T) {
		got, err := svc.Update(ctx, p.ID, patchOf(t, `{"bogus":1,"author":"Planning Policy Team"}`))
		require.NoError(t, err)
		assert.Equal(t, "Planning Policy Team", got.Author)
	})

	t.Run("validates merged record", func(t *testing.T) {
		_, err := svc.Update(ctx, p.ID, patchOf(t, `{"status":"Nope"}`))
		assert.True(t, hasField(err, "status"))
	})

	t.Run("type mismatch", func(t *testing.T) {
		_, err := svc.Update(ctx, p.ID, patchOf(t, `{"keywords":"housing"}`))
		require.ErrorIs(t, err, service.ErrInvalidInput)
		assert.True(t, hasField(err, "keywords"), "field errors: %v", service.FieldErrors(err))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := svc.Update(ctx, uuid.New(), patchOf(t, `{"title":"x"}`))
		require.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestPolicyService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t).Policies
	p, err := svc.Create(ctx, newPolicy("H1", "Housing Mix"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID))
	_, err = svc.Get(ctx, p.ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
	assert.ErrorIs(t, svc.Delete(ctx, p.ID), repository.ErrNotFound)
}

func TestPolicyService_SubViews(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t).Policies
	p, err := svc.Create(ctx, newPolicy("H1", "Housing Mix"))
	require.NoError(t, err)

	links, err := svc.LinkedPolicies(ctx, p.ID)
	require.NoError(t, err)
	assert.NotNil(t, links)
	assert.Empty(t, links)

	aligns, err := svc.GoalAlignments(ctx, p.ID)
	require.NoError(t, err)
	assert.NotNil(t, aligns)

	msg, err := svc.SiteImpacts(ctx, p.ID)
	require.NoError(t, err)
	assert.Contains(t, msg.Message, p.ID.String())

	_, err = svc.LinkedPolicies(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSiteService_Views(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t).Sites
	s, err := svc.Create(ctx, model.Site{
		Name:        "Land at Mill Lane",
		Constraints: []model.Constraint{{Name: "Flood Zone 3", Type: "Flood"}},
	})
	require.NoError(t, err)
	require.Len(t, s.Constraints, 1)
	assert.NotEqual(t, uuid.Nil, s.Constraints[0].ID)

	pols, err := svc.ApplicablePolicies(ctx, s.ID)
	require.NoError(t, err)
	assert.Len(t, pols, 2)

	ds, err := svc.DeliverabilitySoundness(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, ds.DeliverabilityScore)

	_, err = svc.Constraints(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/maxviazov/planning-api/internal/service"
)

func newDocument() model.PlanDocument {
	return model.PlanDocument{
		Name: "Local Plan 2040",
		Type: model.DocumentLocalPlan,
		RootNode: model.DocumentNode{
			Title: "Local Plan 2040",
			Type:  model.NodeDocumentRoot,
			Children: []model.DocumentNode{
				{Title: "Housing", Type: model.NodeChapter, Children: []model.DocumentNode{
					{Title: "H1 Housing Mix", Type: model.NodePolicySection},
				}},
			},
		},
	}
}

func TestDocumentService_CreateStampsTree(t *testing.T) {
	svc := newServices(t).Documents
	d, err := svc.Create(context.Background(), newDocument())
	require.NoError(t, err)

	root := d.RootNode
	assert.NotEqual(t, uuid.Nil, root.ID)
	require.Len(t, root.Children, 1)
	assert.NotEqual(t, uuid.Nil, root.Children[0].ID)
	require.Len(t, root.Children[0].Children, 1)
	leaf := root.Children[0].Children[0]
	assert.NotEqual(t, uuid.Nil, leaf.ID)
	assert.False(t, leaf.LastModified.IsZero())
}

func TestDocumentService_RootNodeValidated(t *testing.T) {
	d := newDocument()
	d.RootNode.Title = ""
	_, err := newServices(t).Documents.Create(context.Background(), d)
	require.ErrorIs(t, err, service.ErrInvalidInput)
	assert.True(t, hasField(err, "rootNode.title"), "field errors: %v", service.FieldErrors(err))
}

func TestDocumentService_Nodes(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t).Documents
	d, err := svc.Create(ctx, newDocument())
	require.NoError(t, err)
	other, err := svc.Create(ctx, newDocument())
	require.NoError(t, err)

	n, err := svc.AddNode(ctx, d.ID, model.DocumentNode{Title: "Appendix A", Type: model.NodeAppendix})
	require.NoError(t, err)
	assert.Equal(t, d.ID, n.DocumentID)
	_, err = svc.AddNode(ctx, other.ID, model.DocumentNode{Title: "Glossary", Type: model.NodeGlossaryItem})
	require.NoError(t, err)

	res, err := svc.ListNodes(ctx, d.ID, repository.Page{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, n.ID, res.Items[0].ID)

	t.Run("node of another document", func(t *testing.T) {
		_, err := svc.GetNode(ctx, other.ID, n.ID)
		require.ErrorIs(t, err, repository.ErrNotFound)
		assert.Equal(t, "document node not found", err.Error())
	})

	t.Run("update keeps documentId", func(t *testing.T) {
		got, err := svc.UpdateNode(ctx, d.ID, n.ID, patchOf(t, `{"content":"Definitions","documentId":"`+other.ID.String()+`"}`))
		require.NoError(t, err)
		assert.Equal(t, "Definitions", got.Content)
		assert.Equal(t, d.ID, got.DocumentID)
	})

	t.Run("update assigns keys to new children", func(t *testing.T) {
		got, err := svc.UpdateNode(ctx, d.ID, n.ID, patchOf(t, `{"children":[{"title":"A.1","type":"SubChapter"}]}`))
		require.NoError(t, err)
		require.Len(t, got.Children, 1)
		assert.NotEqual(t, uuid.Nil, got.Children[0].ID)
	})

	t.Run("document delete removes its nodes", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, d.ID))
		_, err := svc.ListNodes(ctx, d.ID, repository.Page{})
		require.ErrorIs(t, err, repository.ErrNotFound)

		rest, err := svc.ListNodes(ctx, other.ID, repository.Page{})
		require.NoError(t, err)
		assert.Equal(t, 1, rest.Total)
	})
}

func TestDocumentService_MissingDocument(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t).Documents
	_, err := svc.AddNode(ctx, uuid.New(), model.DocumentNode{Title: "x", Type: model.NodeChapter})
	require.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, "plan document not found", err.Error())
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/rs/zerolog"
)

type documentService struct {
	*crud[model.PlanDocument]
	nodes *crud[model.DocumentNode]
}

func NewDocumentService(docs repository.Store[model.PlanDocument], nodes repository.Store[model.DocumentNode], logger zerolog.Logger) DocumentService {
	s := &documentService{}
	s.nodes = newCRUD(nodes, crudOptions[model.DocumentNode]{
		name:         "document node",
		searchFields: []string{"title", "reference", "content"},
		readOnly:     []string{"documentId", fieldLastModified},
		stampFields:  []string{fieldLastModified},
		beforeCreate: func(_ context.Context, n model.DocumentNode, now time.Time) (model.DocumentNode, error) {
			return n.Stamp(now), nil
		},
		beforeUpdate: restampChildren,
	}, logger)
	s.crud = newCRUD(docs, crudOptions[model.PlanDocument]{
		name:         "plan document",
		searchFields: []string{"name", "version"},
		beforeCreate: func(_ context.Context, d model.PlanDocument, now time.Time) (model.PlanDocument, error) {
			d.RootNode = d.RootNode.Stamp(now)
			return d, nil
		},
		beforeUpdate: func(_ context.Context, merged model.PlanDocument, patch repository.Patch, now time.Time) error {
			if _, ok := patch["rootNode"]; !ok {
				return nil
			}
			return patch.Set("rootNode", merged.RootNode.Stamp(now))
		},
		beforeDelete: s.deleteNodes,
	}, logger)
	return s
}

// restampChildren gives new children keys when a node update replaces them.
func restampChildren(_ context.Context, merged model.DocumentNode, patch repository.Patch, now time.Time) error {
	if _, ok := patch["children"]; !ok {
		return nil
	}
	return patch.Set("children", merged.Stamp(now).Children)
}

func docFilter(docID uuid.UUID) repository.Filters {
	return repository.Filters{"documentId": docID.String()}
}

// deleteNodes removes the nodes stored under a deleted document.
func (s *documentService) deleteNodes(ctx context.Context, d model.PlanDocument) error {
	nodes, err := s.nodes.store.Scan(ctx, docFilter(d.ID))
	if err != nil {
		return err
	}
	for _, n := range nodes {
		if _, err := s.nodes.store.Remove(ctx, n.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
	}
	return nil
}

func (s *documentService) AddNode(ctx context.Context, docID uuid.UUID, node model.DocumentNode) (model.DocumentNode, error) {
	if _, err := s.Get(ctx, docID); err != nil {
		return model.DocumentNode{}, err
	}
	node.DocumentID = docID
	return s.nodes.Create(ctx, node)
}

func (s *documentService) ListNodes(ctx context.Context, docID uuid.UUID, page repository.Page) (repository.PageResult[model.DocumentNode], error) {
	if _, err := s.Get(ctx, docID); err != nil {
		return repository.PageResult[model.DocumentNode]{}, err
	}
	return s.nodes.List(ctx, ListQuery{Page: page, Filters: docFilter(docID)})
}

// GetNode reports not found for nodes that belong to another document.
func (s *documentService) GetNode(ctx context.Context, docID, nodeID uuid.UUID) (model.DocumentNode, error) {
	if _, err := s.Get(ctx, docID); err != nil {
		return model.DocumentNode{}, err
	}
	n, err := s.nodes.Get(ctx, nodeID)
	if err != nil {
		return model.DocumentNode{}, err
	}
	if n.DocumentID != docID {
		return model.DocumentNode{}, notFound(s.nodes.opts.name)
	}
	return n, nil
}

func (s *documentService) UpdateNode(ctx context.Context, docID, nodeID uuid.UUID, patch repository.Patch) (model.DocumentNode, error) {
	if _, err := s.GetNode(ctx, docID, nodeID); err != nil {
		return model.DocumentNode{}, err
	}
	return s.nodes.Update(ctx, nodeID, patch)
}

func (s *documentService) DeleteNode(ctx context.Context, docID, nodeID uuid.UUID) error {
	if _, err := s.GetNode(ctx, docID, nodeID); err != nil {
		return err
	}
	return s.nodes.Delete(ctx, nodeID)
}

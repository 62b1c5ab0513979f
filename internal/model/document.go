package model

import (
	"time"

	"github.com/google/uuid"
)

// PlanDocument is a structured plan (local plan, SPD, ...) rooted at a single node tree.
type PlanDocument struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name" validate:"required"`
	Type           PlanDocumentType   `json:"type" validate:"required,enum"`
	RootNode       DocumentNode       `json:"rootNode"`
	Version        string             `json:"version,omitempty"`
	DocumentStatus PlanDocumentStatus `json:"documentStatus,omitempty" validate:"omitempty,enum"`
}

func (d PlanDocument) RecordID() uuid.UUID { return d.ID }

func (d PlanDocument) WithRecordID(id uuid.UUID) PlanDocument {
	d.ID = id
	return d
}

// DocumentNode is one chapter, section or item of a plan document.
// Nodes created through the nodes sub-resource are stored on their own and carry DocumentID.
type DocumentNode struct {
	ID               uuid.UUID        `json:"id"`
	DocumentID       uuid.UUID        `json:"documentId,omitzero"`
	Title            string           `json:"title" validate:"required"`
	Type             DocumentNodeType `json:"type" validate:"required,enum"`
	Reference        string           `json:"reference,omitempty"`
	Content          string           `json:"content,omitempty"`
	Children         []DocumentNode   `json:"children,omitempty" validate:"dive"`
	UnresolvedIssues []string         `json:"unresolvedIssues,omitempty"`
	LinkedEntities   []LinkedEntity   `json:"linkedEntities,omitempty" validate:"dive"`
	Author           string           `json:"author,omitempty"`
	LastModified     time.Time        `json:"lastModified,omitzero"`
}

func (n DocumentNode) RecordID() uuid.UUID { return n.ID }

func (n DocumentNode) WithRecordID(id uuid.UUID) DocumentNode {
	n.ID = id
	return n
}

// Stamp assigns missing keys and sets lastModified across the whole subtree.
func (n DocumentNode) Stamp(now time.Time) DocumentNode {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	n.LastModified = now
	if len(n.Children) > 0 {
		children := make([]DocumentNode, len(n.Children))
		for i, c := range n.Children {
			children[i] = c.Stamp(now)
		}
		n.Children = children
	}
	return n
}

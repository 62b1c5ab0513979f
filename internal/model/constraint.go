package model

import "github.com/google/uuid"

// Constraint is a designation limiting development, e.g. a flood zone.
type Constraint struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name" validate:"required"`
	Type           string             `json:"type" validate:"required"`
	Severity       ConstraintSeverity `json:"severity,omitempty" validate:"omitempty,enum"`
	SourceDocument string             `json:"sourceDocument,omitempty"`
	Geometry       *GeoJSON           `json:"geometry,omitempty"`
	Description    string             `json:"description,omitempty"`
}

func (c Constraint) RecordID() uuid.UUID { return c.ID }

func (c Constraint) WithRecordID(id uuid.UUID) Constraint {
	c.ID = id
	return c
}

package model

import "github.com/google/uuid"

// Goal is a strategic objective tracked against a target metric.
type Goal struct {
	ID                    uuid.UUID   `json:"id"`
	Name                  string      `json:"name" validate:"required"`
	Category              string      `json:"category" validate:"required"`
	Description           string      `json:"description,omitempty"`
	TargetMetric          string      `json:"targetMetric" validate:"required"`
	TargetValue           *float64    `json:"targetValue,omitempty"`
	CurrentValue          *float64    `json:"currentValue,omitempty"`
	Unit                  string      `json:"unit,omitempty"`
	Source                string      `json:"source,omitempty"`
	Status                GoalStatus  `json:"status" validate:"required,enum"`
	Type                  GoalType    `json:"type" validate:"required,enum"`
	ContributingPolicyIDs []uuid.UUID `json:"contributingPolicyIds,omitempty"`
	ContributingSiteIDs   []uuid.UUID `json:"contributingSiteIds,omitempty"`
	RelatedGoalIDs        []uuid.UUID `json:"relatedGoalIds,omitempty"`
	Risks                 []string    `json:"risks,omitempty"`
	Notes                 string      `json:"notes,omitempty"`
}

func (g Goal) RecordID() uuid.UUID { return g.ID }

func (g Goal) WithRecordID(id uuid.UUID) Goal {
	g.ID = id
	return g
}

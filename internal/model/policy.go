package model

import (
	"time"

	"github.com/google/uuid"
)

// Policy is a planning policy within a plan document.
type Policy struct {
	ID                      uuid.UUID       `json:"id"`
	Reference               string          `json:"reference" validate:"required"`
	Title                   string          `json:"title" validate:"required"`
	Wording                 string          `json:"wording" validate:"required"`
	Status                  PolicyStatus    `json:"status" validate:"required,enum"`
	Type                    PolicyType      `json:"type" validate:"required,enum"`
	Version                 string          `json:"version,omitempty"`
	Author                  string          `json:"author,omitempty"`
	AuthorNotes             string          `json:"authorNotes,omitempty"`
	SupportingText          string          `json:"supportingText,omitempty"`
	InternalNotes           string          `json:"internalNotes,omitempty"`
	LinkedPolicies          []LinkedPolicy  `json:"linkedPolicies,omitempty" validate:"dive"`
	AffectedSiteCategories  []string        `json:"affectedSiteCategories,omitempty"`
	StrategicGoalAlignments []GoalAlignment `json:"strategicGoalAlignments,omitempty" validate:"dive"`
	AIGuidance              []AIGuidance    `json:"aiGuidance,omitempty" validate:"dive"`
	DocumentID              uuid.UUID       `json:"documentId" validate:"required"`
	Keywords                []string        `json:"keywords,omitempty"`
	RequirementsSummary     string          `json:"requirementsSummary,omitempty"`
	LastModified            time.Time       `json:"lastModified,omitzero"`
}

func (p Policy) RecordID() uuid.UUID { return p.ID }

func (p Policy) WithRecordID(id uuid.UUID) Policy {
	p.ID = id
	return p
}

// LinkedPolicy is a typed edge to another policy.
type LinkedPolicy struct {
	PolicyID        uuid.UUID        `json:"policyId" validate:"required"`
	PolicyReference string           `json:"policyReference" validate:"required"`
	Relationship    RelationshipType `json:"relationship" validate:"required,enum"`
	Summary         string           `json:"summary,omitempty"`
}

// GoalAlignment records how a policy or site lines up with a strategic goal.
type GoalAlignment struct {
	GoalID    string `json:"goalId" validate:"required"`
	GoalName  string `json:"goalName" validate:"required"`
	Alignment string `json:"alignment" validate:"required"`
	Notes     string `json:"notes,omitempty"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// PrecedentCase is a past decision or appeal cited when assessing applications.
type PrecedentCase struct {
	ID                        uuid.UUID           `json:"id"`
	CaseReference             string              `json:"caseReference" validate:"required"`
	Address                   string              `json:"address" validate:"required"`
	DecisionType              string              `json:"decisionType" validate:"required"`
	DecisionDate              time.Time           `json:"decisionDate" validate:"required"`
	Outcome                   PrecedentOutcome    `json:"outcome" validate:"required,enum"`
	KeyPoliciesCited          []string            `json:"keyPoliciesCited,omitempty"`
	InspectorReasoningSummary string              `json:"inspectorReasoningSummary,omitempty"`
	DecisionExtractLink       string              `json:"decisionExtractLink,omitempty" validate:"omitempty,url"`
	RelevanceSummary          string              `json:"relevanceSummary,omitempty"`
	SimilarityCriteria        *SimilarityCriteria `json:"similarityCriteria,omitempty"`
}

func (p PrecedentCase) RecordID() uuid.UUID { return p.ID }

func (p PrecedentCase) WithRecordID(id uuid.UUID) PrecedentCase {
	p.ID = id
	return p
}

type SimilarityCriteria struct {
	Site          string   `json:"site,omitempty"`
	PolicyOverlap []string `json:"policyOverlap,omitempty"`
}

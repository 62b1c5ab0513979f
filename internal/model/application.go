package model

import (
	"time"

	"github.com/google/uuid"
)

// PlanningApplication is a development management case.
type PlanningApplication struct {
	ID               uuid.UUID         `json:"id"`
	ReferenceNumber  string            `json:"referenceNumber" validate:"required"`
	Address          string            `json:"address" validate:"required"`
	SiteID           uuid.UUID         `json:"siteId,omitzero"`
	SiteDescription  string            `json:"siteDescription,omitempty"`
	ProposalDetails  string            `json:"proposalDetails" validate:"required"`
	ApplicationType  ApplicationType   `json:"applicationType" validate:"required,enum"`
	Status           ApplicationStatus `json:"status" validate:"required,enum"`
	ReceivedDate     time.Time         `json:"receivedDate" validate:"required"`
	ValidatedDate    *time.Time        `json:"validatedDate,omitempty"`
	DecisionDate     *time.Time        `json:"decisionDate,omitempty"`
	Decision         string            `json:"decision,omitempty"`
	ApplicantName    string            `json:"applicantName,omitempty"`
	AgentName        string            `json:"agentName,omitempty"`
	CaseOfficer      string            `json:"caseOfficer,omitempty"`
	Constraints      []Constraint      `json:"constraints,omitempty" validate:"dive"`
	RelevantPolicies []Policy          `json:"relevantPolicies,omitempty" validate:"dive"`
	ReasoningSteps   []ReasoningStep   `json:"reasoningSteps,omitempty" validate:"dive"`
	TradeOffAnalysis *TradeOffAnalysis `json:"tradeOffAnalysis,omitempty"`
	LinkedPrecedents []PrecedentCase   `json:"linkedPrecedents,omitempty" validate:"dive"`
	OfficerReport    *OfficerReport    `json:"officerReport,omitempty"`
}

func (a PlanningApplication) RecordID() uuid.UUID { return a.ID }

func (a PlanningApplication) WithRecordID(id uuid.UUID) PlanningApplication {
	a.ID = id
	return a
}

// ReasoningStep is one numbered step of an officer's planning balance.
type ReasoningStep struct {
	ID               uuid.UUID `json:"id,omitzero"`
	Step             int       `json:"step" validate:"min=1"`
	Description      string    `json:"description" validate:"required"`
	PolicyReferences []string  `json:"policyReferences,omitempty"`
}

func (s ReasoningStep) RecordID() uuid.UUID { return s.ID }

func (s ReasoningStep) WithRecordID(id uuid.UUID) ReasoningStep {
	s.ID = id
	return s
}

type CompetingGoal struct {
	GoalA   string `json:"goalA" validate:"required"`
	GoalB   string `json:"goalB" validate:"required"`
	Tension string `json:"tension" validate:"required"`
}

type TradeOffAnalysis struct {
	CompetingGoals    []CompetingGoal    `json:"competingGoals,omitempty" validate:"dive"`
	AINarrative       string             `json:"aiNarrative,omitempty"`
	PlannerWeightings map[string]float64 `json:"plannerWeightings,omitempty"`
}

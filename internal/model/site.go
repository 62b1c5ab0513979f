package model

import (
	"time"

	"github.com/google/uuid"
)

// Site is a parcel of land considered during plan making or development management.
// Only the name is required; everything else accrues as the site is assessed.
type Site struct {
	ID                         uuid.UUID              `json:"id"`
	Name                       string                 `json:"name" validate:"required"`
	Address                    string                 `json:"address,omitempty"`
	UPRN                       string                 `json:"uprn,omitempty"`
	LPACode                    string                 `json:"lpaCode,omitempty"`
	Coordinates                *SiteCoordinates       `json:"coordinates,omitempty"`
	AreaHa                     *float64               `json:"areaHa,omitempty" validate:"omitempty,gte=0"`
	Parish                     string                 `json:"parish,omitempty"`
	PlanMakingStatus           PlanMakingStatus       `json:"planMakingStatus,omitempty" validate:"omitempty,enum"`
	SubmissionDate             *time.Time             `json:"submissionDate,omitempty"`
	Source                     SiteSource             `json:"source,omitempty" validate:"omitempty,enum"`
	ProposedUsePlanMaking      string                 `json:"proposedUsePlanMaking,omitempty"`
	PlanningHistorySummary     []string               `json:"planningHistorySummary,omitempty"`
	Constraints                []Constraint           `json:"constraints,omitempty" validate:"dive"`
	ApplicablePolicies         []Policy               `json:"applicablePolicies,omitempty" validate:"dive"`
	PolicyRequirementsSummary  []PolicyRequirement    `json:"policyRequirementsSummary,omitempty" validate:"dive"`
	AllocationJustification    string                 `json:"allocationJustification,omitempty"`
	AIDraftJustification       string                 `json:"aiDraftJustification,omitempty"`
	StrategicGoalContributions []GoalAlignment        `json:"strategicGoalContributions,omitempty" validate:"dive"`
	DeliverabilityAssessment   []DeliverabilityFactor `json:"deliverabilityAssessment,omitempty" validate:"dive"`
	SoundnessChecksPlanMaking  []SoundnessCheck       `json:"soundnessChecksPlanMaking,omitempty" validate:"dive"`
}

func (s Site) RecordID() uuid.UUID { return s.ID }

func (s Site) WithRecordID(id uuid.UUID) Site {
	s.ID = id
	return s
}

type PolicyRequirement struct {
	PolicyID    string `json:"policyId" validate:"required"`
	PolicyRef   string `json:"policyRef" validate:"required"`
	Requirement string `json:"requirement" validate:"required"`
	Relevance   string `json:"relevance,omitempty"`
}

type DeliverabilityFactor struct {
	Name       string `json:"name" validate:"required"`
	Score      int    `json:"score"`
	Confidence *int   `json:"confidence,omitempty"`
	Rationale  string `json:"rationale,omitempty"`
}

// SoundnessCheck is one soundness criterion with its assessed status.
// Sites and scenarios share it.
type SoundnessCheck struct {
	Criterion string          `json:"criterion" validate:"required"`
	Status    SoundnessStatus `json:"status" validate:"required,enum"`
	Rationale string          `json:"rationale,omitempty"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// Scenario is a what-if combination of sites and policy settings.
type Scenario struct {
	ID                 uuid.UUID         `json:"id"`
	Name               string            `json:"name" validate:"required"`
	Description        string            `json:"description,omitempty"`
	BaselineScenarioID uuid.UUID         `json:"baselineScenarioId,omitzero"`
	Tags               []string          `json:"tags,omitempty"`
	SummaryMetrics     *ScenarioMetrics  `json:"summaryMetrics,omitempty"`
	IncludedSiteIDs    []uuid.UUID       `json:"includedSiteIds,omitempty"`
	ExcludedSiteIDs    []uuid.UUID       `json:"excludedSiteIds,omitempty"`
	ActivePolicyIDs    []uuid.UUID       `json:"activePolicyIds,omitempty"`
	ModifiedPolicies   []ModifiedPolicy  `json:"modifiedPolicies,omitempty" validate:"dive"`
	GoalPerformance    []GoalPerformance `json:"goalPerformance,omitempty" validate:"dive"`
	SoundnessFlags     []SoundnessCheck  `json:"soundnessFlags,omitempty" validate:"dive"`
	AICommentary       string            `json:"aiCommentary,omitempty"`
	CreatedAt          time.Time         `json:"createdAt,omitzero"`
	LastModified       time.Time         `json:"lastModified,omitzero"`
}

func (s Scenario) RecordID() uuid.UUID { return s.ID }

func (s Scenario) WithRecordID(id uuid.UUID) Scenario {
	s.ID = id
	return s
}

type ScenarioMetrics struct {
	TotalHomes         *int     `json:"totalHomes,omitempty"`
	JobsEnabled        *int     `json:"jobsEnabled,omitempty"`
	InfrastructureNeed *int     `json:"infrastructureNeed,omitempty"`
	RiskFlags          *int     `json:"riskFlags,omitempty"`
	TradeOffIndex      *float64 `json:"tradeOffIndex,omitempty"`
}

// ModifiedPolicy carries the policy fields a scenario overrides.
type ModifiedPolicy struct {
	PolicyID uuid.UUID      `json:"policyId" validate:"required"`
	Changes  map[string]any `json:"changes"`
}

// GoalPerformance is a goal's outcome under a scenario. Value is a number or a label.
type GoalPerformance struct {
	GoalID uuid.UUID  `json:"goalId" validate:"required"`
	Status GoalStatus `json:"status" validate:"required,enum"`
	Value  any        `json:"value" validate:"required"`
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/rs/zerolog"
)

// SitePolicyRequirement is one row of the applicable-policies view.
type SitePolicyRequirement struct {
	PolicyID    string `json:"policy_id"`
	Requirement string `json:"requirement"`
}

type SiteConstraint struct {
	ConstraintID string `json:"constraint_id"`
	Name         string `json:"name"`
}

type SiteGoalContribution struct {
	GoalID       string `json:"goal_id"`
	Contribution string `json:"contribution"`
}

type DeliverabilitySoundness struct {
	DeliverabilityScore int    `json:"deliverability_score"`
	SoundnessStatus     string `json:"soundness_status"`
}

type siteService struct {
	*crud[model.Site]
}

func NewSiteService(store repository.Store[model.Site], logger zerolog.Logger) SiteService {
	return &siteService{newCRUD(store, crudOptions[model.Site]{
		name:         "site",
		searchFields: []string{"name", "address", "parish"},
		beforeCreate: func(_ context.Context, s model.Site, _ time.Time) (model.Site, error) {
			s.Constraints = model.AssignIDs(s.Constraints)
			s.ApplicablePolicies = model.AssignIDs(s.ApplicablePolicies)
			return s, nil
		},
	}, logger)}
}

// The assessment views below return fixed placeholder rows until site assessment exists.

func (s *siteService) ApplicablePolicies(ctx context.Context, id uuid.UUID) ([]SitePolicyRequirement, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return []SitePolicyRequirement{
		{PolicyID: "pol-1", Requirement: "30% affordable"},
		{PolicyID: "pol-2", Requirement: "Design code compliance"},
	}, nil
}

func (s *siteService) Constraints(ctx context.Context, id uuid.UUID) ([]SiteConstraint, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return []SiteConstraint{{ConstraintID: "con-1", Name: "Flood Zone 3"}}, nil
}

func (s *siteService) GoalContributions(ctx context.Context, id uuid.UUID) ([]SiteGoalContribution, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return []SiteGoalContribution{{GoalID: "goal-1", Contribution: "Supports Housing Target"}}, nil
}

func (s *siteService) DeliverabilitySoundness(ctx context.Context, id uuid.UUID) (DeliverabilitySoundness, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return DeliverabilitySoundness{}, err
	}
	return DeliverabilitySoundness{DeliverabilityScore: 8, SoundnessStatus: "Sound"}, nil
}

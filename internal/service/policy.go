package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/rs/zerolog"
)

type policyService struct {
	*crud[model.Policy]
}

func NewPolicyService(store repository.Store[model.Policy], logger zerolog.Logger) PolicyService {
	return &policyService{newCRUD(store, crudOptions[model.Policy]{
		name:         "policy",
		searchFields: []string{"reference", "title", "wording"},
		readOnly:     []string{fieldLastModified},
		stampFields:  []string{fieldLastModified},
		beforeCreate: func(_ context.Context, p model.Policy, now time.Time) (model.Policy, error) {
			p.LastModified = now
			return p, nil
		},
	}, logger)}
}

// LinkedPolicies returns the policy's typed links; never nil.
func (s *policyService) LinkedPolicies(ctx context.Context, id uuid.UUID) ([]model.LinkedPolicy, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.LinkedPolicies == nil {
		return []model.LinkedPolicy{}, nil
	}
	return p.LinkedPolicies, nil
}

func (s *policyService) GoalAlignments(ctx context.Context, id uuid.UUID) ([]model.GoalAlignment, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.StrategicGoalAlignments == nil {
		return []model.GoalAlignment{}, nil
	}
	return p.StrategicGoalAlignments, nil
}

func (s *policyService) SiteImpacts(ctx context.Context, id uuid.UUID) (Message, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return Message{}, err
	}
	return Message{Message: fmt.Sprintf("Site impacts for policy %s (stub). E.g., 20 sites require affordable housing.", id)}, nil
}

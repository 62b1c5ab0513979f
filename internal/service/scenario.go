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

type scenarioService struct {
	*crud[model.Scenario]
}

func NewScenarioService(store repository.Store[model.Scenario], logger zerolog.Logger) ScenarioService {
	return &scenarioService{newCRUD(store, crudOptions[model.Scenario]{
		name:         "scenario",
		searchFields: []string{"name", "description"},
		readOnly:     []string{fieldCreatedAt, fieldLastModified},
		stampFields:  []string{fieldLastModified},
		beforeCreate: func(_ context.Context, s model.Scenario, now time.Time) (model.Scenario, error) {
			s.CreatedAt = now
			s.LastModified = now
			return s, nil
		},
	}, logger)}
}

// Duplicate stores a copy of the scenario under a new key with fresh timestamps.
func (s *scenarioService) Duplicate(ctx context.Context, id uuid.UUID) (model.Scenario, error) {
	src, err := s.Get(ctx, id)
	if err != nil {
		return model.Scenario{}, err
	}
	cp := src.WithRecordID(uuid.Nil)
	cp.Name = src.Name + " (Copy)"
	return s.Create(ctx, cp)
}

func (s *scenarioService) Compare(ctx context.Context, id, baselineID uuid.UUID) (Message, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return Message{}, err
	}
	if _, err := s.Get(ctx, baselineID); err != nil {
		return Message{}, fmt.Errorf("baseline %w", err)
	}
	return Message{Message: fmt.Sprintf("Comparison details for scenario %s against baseline %s (stub).", id, baselineID)}, nil
}

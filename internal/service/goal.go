package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/rs/zerolog"
)

// GoalPerformanceSummary is the monitoring view of one goal.
type GoalPerformanceSummary struct {
	GoalID       uuid.UUID        `json:"goal_id"`
	Name         string           `json:"name"`
	Status       model.GoalStatus `json:"status"`
	CurrentValue *float64         `json:"current_value"`
	TargetValue  *float64         `json:"target_value"`
	Summary      string           `json:"summary"`
}

type goalService struct {
	*crud[model.Goal]
}

func NewGoalService(store repository.Store[model.Goal], logger zerolog.Logger) GoalService {
	return &goalService{newCRUD(store, crudOptions[model.Goal]{
		name:         "goal",
		searchFields: []string{"name", "description", "targetMetric", "notes"},
	}, logger)}
}

func (s *goalService) PerformanceSummary(ctx context.Context, id uuid.UUID) (GoalPerformanceSummary, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return GoalPerformanceSummary{}, err
	}
	return GoalPerformanceSummary{
		GoalID:       g.ID,
		Name:         g.Name,
		Status:       g.Status,
		CurrentValue: g.CurrentValue,
		TargetValue:  g.TargetValue,
		Summary:      fmt.Sprintf("Performance summary for %s (stub).", g.Name),
	}, nil
}

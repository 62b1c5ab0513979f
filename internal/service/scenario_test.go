package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/maxviazov/planning-api/internal/service"
)

func TestScenarioService_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t).Scenarios
	homes := 1200
	src, err := svc.Create(ctx, model.Scenario{
		Name:           "Growth option A",
		Tags:           []string{"growth"},
		SummaryMetrics: &model.ScenarioMetrics{TotalHomes: &homes},
	})
	require.NoError(t, err)
	assert.False(t, src.CreatedAt.IsZero())
	assert.Equal(t, src.CreatedAt, src.LastModified)

	cp, err := svc.Duplicate(ctx, src.ID)
	require.NoError(t, err)
	assert.NotEqual(t, src.ID, cp.ID)
	assert.Equal(t, "Growth option A (Copy)", cp.Name)
	assert.Equal(t, src.Tags, cp.Tags)
	require.NotNil(t, cp.SummaryMetrics)
	assert.Equal(t, homes, *cp.SummaryMetrics.TotalHomes)
	assert.False(t, cp.CreatedAt.Before(src.CreatedAt))

	_, err = svc.Duplicate(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestScenarioService_UpdateKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t).Scenarios
	s, err := svc.Create(ctx, model.Scenario{Name: "Baseline"})
	require.NoError(t, err)

	got, err := svc.Update(ctx, s.ID, patchOf(t, `{"description":"current plan","createdAt":"2001-01-01T00:00:00Z"}`))
	require.NoError(t, err)
	assert.Equal(t, s.CreatedAt, got.CreatedAt)
	assert.Equal(t, "current plan", got.Description)
}

func TestScenarioService_Compare(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t).Scenarios
	a, err := svc.Create(ctx, model.Scenario{Name: "A"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, model.Scenario{Name: "B"})
	require.NoError(t, err)

	msg, err := svc.Compare(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Comparison details for scenario "+a.ID.String()+" against baseline "+b.ID.String()+" (stub).", msg.Message)

	_, err = svc.Compare(ctx, a.ID, uuid.New())
	require.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, "baseline scenario not found", err.Error())
}

func TestGoalService_PerformanceSummary(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t).Goals
	target, current := 1000.0, 640.0
	g, err := svc.Create(ctx, model.Goal{
		Name:         "Housing delivery",
		Category:     "Housing",
		TargetMetric: "Net additional dwellings",
		TargetValue:  &target,
		CurrentValue: &current,
		Status:       model.GoalStatusPartial,
		Type:         model.GoalTypeMonitoring,
	})
	require.NoError(t, err)

	sum, err := svc.PerformanceSummary(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, sum.GoalID)
	assert.Equal(t, model.GoalStatusPartial, sum.Status)
	assert.Equal(t, 640.0, *sum.CurrentValue)
	assert.Equal(t, "Performance summary for Housing delivery (stub).", sum.Summary)

	_, err = svc.PerformanceSummary(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGoalService_SortNumeric(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t).Goals
	for _, v := range []float64{90, 100, 9} {
		val := v
		_, err := svc.Create(ctx, model.Goal{
			Name: "g", Category: "c", TargetMetric: "m", TargetValue: &val,
			Status: model.GoalStatusOnTrack, Type: model.GoalTypePolicy,
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, model.Goal{Name: "none", Category: "c", TargetMetric: "m", Status: model.GoalStatusOnTrack, Type: model.GoalTypePolicy})
	require.NoError(t, err)

	res, err := svc.List(ctx, service.ListQuery{SortBy: "targetValue"})
	require.NoError(t, err)
	require.Len(t, res.Items, 4)
	assert.Equal(t, 9.0, *res.Items[0].TargetValue)
	assert.Equal(t, 90.0, *res.Items[1].TargetValue)
	assert.Equal(t, 100.0, *res.Items[2].TargetValue)
	assert.Nil(t, res.Items[3].TargetValue)
}

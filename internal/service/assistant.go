package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/maxviazov/planning-api/internal/model"
	"github.com/rs/zerolog"
)

// assistantService returns canned drafting text. Nothing here reads the stores.
type assistantService struct {
	log zerolog.Logger
}

func NewAssistantService(logger zerolog.Logger) AssistantService {
	return &assistantService{log: logger.With().Str("module", "service").Str("component", "assistant").Logger()}
}

func (s *assistantService) PolicyGuidance(_ context.Context, policyText string, ctxFields map[string]any) []model.AIGuidance {
	s.log.Debug().Int("text_len", len(policyText)).Int("context_keys", len(ctxFields)).Msg("policy guidance requested")
	if strings.Contains(strings.ToLower(policyText), "ambiguous") {
		return []model.AIGuidance{
			{Type: "Ambiguity", Message: "The term 'adequate' could be ambiguous. Consider defining specific thresholds.", Source: "AI Model X"},
			{Type: "Conflict Check", Message: "This phrasing might conflict with Policy DM5 regarding height restrictions.", Source: "AI Model X"},
		}
	}
	return []model.AIGuidance{
		{Type: "Clarity", Message: "Consider rephrasing for better clarity regarding implementation.", Source: "AI Model Y"},
	}
}

func (s *assistantService) SiteJustification(_ context.Context, siteID uuid.UUID, policyIDs []uuid.UUID) string {
	return fmt.Sprintf("AI-generated draft justification for site %s considering policies %s (stub).", siteID, joinIDs(policyIDs))
}

func (s *assistantService) ScenarioCommentary(_ context.Context, scenarioID uuid.UUID) string {
	return fmt.Sprintf("AI-generated commentary for scenario %s (stub). This scenario appears to balance housing delivery "+
		"with environmental constraints effectively, though transport impacts need further assessment.", scenarioID)
}

func (s *assistantService) GoalRisks(_ context.Context, goalID uuid.UUID, policyIDs, _ []uuid.UUID) []string {
	dep := "N/A"
	if len(policyIDs) > 0 {
		dep = policyIDs[0].String()
	}
	return []string{
		fmt.Sprintf("Risk 1 for goal %s (stub)", goalID),
		fmt.Sprintf("Risk 2: Dependency on policy %s (stub)", dep),
	}
}

func (s *assistantService) ReasoningSteps(_ context.Context, _ uuid.UUID) []model.ReasoningStep {
	return []model.ReasoningStep{
		{Step: 1, Description: "Assess compliance with Policy H1 (Housing Mix)."},
		{Step: 2, Description: "Evaluate impact on Conservation Area (Policy HE2)."},
	}
}

func (s *assistantService) TradeOffNarrative(_ context.Context, appID uuid.UUID, goals []model.CompetingGoal) string {
	s.log.Debug().Str("application_id", appID.String()).Int("goals", len(goals)).Msg("trade-off narrative requested")
	return fmt.Sprintf("AI-generated trade-off narrative for application %s considering competing goals (stub).", appID)
}

// ReportDraft builds an unsaved Draft report; callers store it through the report endpoints if they keep it.
func (s *assistantService) ReportDraft(_ context.Context, appID uuid.UUID) model.OfficerReport {
	return model.OfficerReport{
		ApplicationID: appID,
		Version:       "0.1",
		Sections: []model.OfficerReportSection{
			{Title: "Assessment", Content: fmt.Sprintf("AI-generated draft assessment for application %s (stub).", appID), Order: 1},
		},
		Status: model.ReportDraft,
	}
}

func joinIDs(ids []uuid.UUID) string {
	if len(ids) == 0 {
		return "none"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ", ")
}

package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/service"
	"github.com/maxviazov/planning-api/pkg/response"
)

// AssistantHandler exposes the drafting endpoints under /ai. Responses are canned text.
type AssistantHandler struct {
	svc service.AssistantService
}

func NewAssistantHandler(svc service.AssistantService) *AssistantHandler {
	return &AssistantHandler{svc: svc}
}

func (h *AssistantHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/ai")
	{
		g.POST("/generate-policy-guidance", h.policyGuidance)
		g.POST("/generate-site-justification", h.siteJustification)
		g.POST("/generate-scenario-commentary", h.scenarioCommentary)
		g.POST("/analyze-goal-risks", h.goalRisks)
		g.POST("/generate-dm-reasoning-steps", h.reasoningSteps)
		g.POST("/generate-dm-tradeoff-narrative", h.tradeOffNarrative)
		g.POST("/generate-report-draft", h.reportDraft)
	}
}

func requireID(field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return service.InvalidField(field, "is required")
	}
	return nil
}

type policyGuidanceRequest struct {
	PolicyText string         `json:"policy_text"`
	Context    map[string]any `json:"context"`
}

func (h *AssistantHandler) policyGuidance(c *gin.Context) {
	var req policyGuidanceRequest
	if !bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.PolicyText) == "" {
		response.WriteError(c, service.InvalidField("policy_text", "is required"))
		return
	}
	out := h.svc.PolicyGuidance(c.Request.Context(), req.PolicyText, req.Context)
	response.WriteData(c, http.StatusOK, gin.H{"suggestions": out})
}

type siteJustificationRequest struct {
	SiteID            uuid.UUID   `json:"site_id"`
	RelevantPolicyIDs []uuid.UUID `json:"relevant_policy_ids"`
}

func (h *AssistantHandler) siteJustification(c *gin.Context) {
	var req siteJustificationRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := requireID("site_id", req.SiteID); err != nil {
		response.WriteError(c, err)
		return
	}
	text := h.svc.SiteJustification(c.Request.Context(), req.SiteID, req.RelevantPolicyIDs)
	response.WriteData(c, http.StatusOK, gin.H{"justificationText": text})
}

type scenarioCommentaryRequest struct {
	ScenarioID uuid.UUID `json:"scenario_id"`
}

func (h *AssistantHandler) scenarioCommentary(c *gin.Context) {
	var req scenarioCommentaryRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := requireID("scenario_id", req.ScenarioID); err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"commentary": h.svc.ScenarioCommentary(c.Request.Context(), req.ScenarioID)})
}

type goalRisksRequest struct {
	GoalID                uuid.UUID   `json:"goal_id"`
	ContributingPolicyIDs []uuid.UUID `json:"contributing_policy_ids"`
	ContributingSiteIDs   []uuid.UUID `json:"contributing_site_ids"`
}

func (h *AssistantHandler) goalRisks(c *gin.Context) {
	var req goalRisksRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := requireID("goal_id", req.GoalID); err != nil {
		response.WriteError(c, err)
		return
	}
	risks := h.svc.GoalRisks(c.Request.Context(), req.GoalID, req.ContributingPolicyIDs, req.ContributingSiteIDs)
	response.WriteData(c, http.StatusOK, gin.H{"risks": risks})
}

type applicationRequest struct {
	ApplicationID uuid.UUID `json:"application_id"`
}

func (h *AssistantHandler) reasoningSteps(c *gin.Context) {
	var req applicationRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := requireID("application_id", req.ApplicationID); err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"reasoningSteps": h.svc.ReasoningSteps(c.Request.Context(), req.ApplicationID)})
}

type tradeOffRequest struct {
	ApplicationID  uuid.UUID             `json:"application_id"`
	CompetingGoals []model.CompetingGoal `json:"competing_goals"`
}

func (h *AssistantHandler) tradeOffNarrative(c *gin.Context) {
	var req tradeOffRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := requireID("application_id", req.ApplicationID); err != nil {
		response.WriteError(c, err)
		return
	}
	if req.CompetingGoals == nil {
		response.WriteError(c, service.InvalidField("competing_goals", "is required"))
		return
	}
	text := h.svc.TradeOffNarrative(c.Request.Context(), req.ApplicationID, req.CompetingGoals)
	response.WriteData(c, http.StatusOK, gin.H{"aiNarrative": text})
}

type reportDraftRequest struct {
	ApplicationID uuid.UUID `json:"applicationId"`
}

func (h *AssistantHandler) reportDraft(c *gin.Context) {
	var req reportDraftRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := requireID("applicationId", req.ApplicationID); err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"report": h.svc.ReportDraft(c.Request.Context(), req.ApplicationID)})
}

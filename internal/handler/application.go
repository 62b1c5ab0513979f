package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/service"
	"github.com/maxviazov/planning-api/pkg/response"
)

type ApplicationHandler struct {
	crudHandler[model.PlanningApplication]
	svc service.ApplicationService
}

func NewApplicationHandler(svc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		crudHandler: newCRUDHandler[model.PlanningApplication](svc, "status", "applicationType", "siteId", "caseOfficer"),
		svc:         svc,
	}
}

func (h *ApplicationHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/planning-applications")
	h.routes(g)

	g.POST("/:id/officer-report", h.createReport)
	g.GET("/:id/officer-report", byID(h.svc.GetReport))
	g.PUT("/:id/officer-report", h.updateReport)
	g.PATCH("/:id/officer-report", h.updateReport)
	g.DELETE("/:id/officer-report", h.deleteReport)
	g.POST("/:id/officer-report/sections", h.addSection)
	g.GET("/:id/officer-report/sections", byID(h.svc.ListReportSections))

	g.GET("/:id/site-assessment", byID(h.svc.SiteAssessment))
	g.GET("/:id/reasoning", byID(h.svc.Reasoning))
	g.POST("/:id/reasoning/steps", h.addReasoningStep)
	g.POST("/:id/linked-precedents", h.linkPrecedent)
}

func (h *ApplicationHandler) createReport(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var report model.OfficerReport
	if !bindJSON(c, &report) {
		return
	}
	out, err := h.svc.CreateReport(c.Request.Context(), id, report)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, out)
}

func (h *ApplicationHandler) updateReport(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	out, err := h.svc.UpdateReport(c.Request.Context(), id, patch)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out)
}

func (h *ApplicationHandler) deleteReport(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteReport(c.Request.Context(), id); err != nil {
		response.WriteError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *ApplicationHandler) addSection(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var section model.OfficerReportSection
	if !bindJSON(c, &section) {
		return
	}
	out, err := h.svc.AddReportSection(c.Request.Context(), id, section)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, out)
}

func (h *ApplicationHandler) addReasoningStep(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var step model.ReasoningStep
	if !bindJSON(c, &step) {
		return
	}
	out, err := h.svc.AddReasoningStep(c.Request.Context(), id, step)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, out)
}

type linkPrecedentRequest struct {
	PrecedentCaseID uuid.UUID `json:"precedentCaseId"`
}

func (h *ApplicationHandler) linkPrecedent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req linkPrecedentRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.PrecedentCaseID == uuid.Nil {
		response.WriteError(c, service.InvalidField("precedentCaseId", "is required"))
		return
	}
	app, err := h.svc.LinkPrecedent(c.Request.Context(), id, req.PrecedentCaseID)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, app)
}

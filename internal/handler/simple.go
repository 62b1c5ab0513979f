package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/service"
)

// Resources with no routes beyond CRUD.

type ConstraintHandler struct{ crudHandler[model.Constraint] }

func NewConstraintHandler(svc service.ConstraintService) *ConstraintHandler {
	return &ConstraintHandler{newCRUDHandler[model.Constraint](svc, "type", "severity")}
}

func (h *ConstraintHandler) Register(r *gin.RouterGroup) { h.routes(r.Group("/constraints")) }

type PrecedentHandler struct{ crudHandler[model.PrecedentCase] }

func NewPrecedentHandler(svc service.PrecedentService) *PrecedentHandler {
	return &PrecedentHandler{newCRUDHandler[model.PrecedentCase](svc, "outcome", "decisionType")}
}

func (h *PrecedentHandler) Register(r *gin.RouterGroup) { h.routes(r.Group("/precedent-cases")) }

// ReportHandler manages officer reports directly; the per-application routes live on ApplicationHandler.
type ReportHandler struct{ crudHandler[model.OfficerReport] }

func NewReportHandler(svc service.ReportService) *ReportHandler {
	return &ReportHandler{newCRUDHandler[model.OfficerReport](svc, "applicationId", "status", "recommendation")}
}

func (h *ReportHandler) Register(r *gin.RouterGroup) { h.routes(r.Group("/officer-reports")) }

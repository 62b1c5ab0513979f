package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/service"
)

type PolicyHandler struct {
	crudHandler[model.Policy]
	svc service.PolicyService
}

func NewPolicyHandler(svc service.PolicyService) *PolicyHandler {
	h := &PolicyHandler{crudHandler: newCRUDHandler[model.Policy](svc, "status", "type", "documentId"), svc: svc}
	h.page = pageParams{skip: "skip", limit: "limit", skipAlias: "page_offset", limitAlias: "page_limit"}
	return h
}

func (h *PolicyHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/policies")
	h.routes(g)
	g.GET("/:id/linked-policies", byID(h.svc.LinkedPolicies))
	g.GET("/:id/goal-alignments", byID(h.svc.GoalAlignments))
	g.GET("/:id/site-impacts", byID(h.svc.SiteImpacts))
}

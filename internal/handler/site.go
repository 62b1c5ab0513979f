package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/service"
)

type SiteHandler struct {
	crudHandler[model.Site]
	svc service.SiteService
}

func NewSiteHandler(svc service.SiteService) *SiteHandler {
	return &SiteHandler{crudHandler: newCRUDHandler[model.Site](svc, "planMakingStatus", "source", "parish", "lpaCode"), svc: svc}
}

// Register mounts the site CRUD routes and the assessment views.
func (h *SiteHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/sites")
	h.routes(g)
	g.GET("/:id/applicable-policies", byID(h.svc.ApplicablePolicies))
	g.GET("/:id/constraints", byID(h.svc.Constraints))
	g.GET("/:id/goal-contributions", byID(h.svc.GoalContributions))
	g.GET("/:id/deliverability-soundness", byID(h.svc.DeliverabilitySoundness))
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/service"
)

type GoalHandler struct {
	crudHandler[model.Goal]
	svc service.GoalService
}

func NewGoalHandler(svc service.GoalService) *GoalHandler {
	return &GoalHandler{crudHandler: newCRUDHandler[model.Goal](svc, "category", "status", "type"), svc: svc}
}

func (h *GoalHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/goals")
	h.routes(g)
	g.GET("/:id/performance-summary", byID(h.svc.PerformanceSummary))
}

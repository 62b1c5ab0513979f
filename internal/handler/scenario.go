package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/service"
	"github.com/maxviazov/planning-api/pkg/response"
)

type ScenarioHandler struct {
	crudHandler[model.Scenario]
	svc service.ScenarioService
}

func NewScenarioHandler(svc service.ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{crudHandler: newCRUDHandler[model.Scenario](svc, "baselineScenarioId"), svc: svc}
}

func (h *ScenarioHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/scenarios")
	h.routes(g)
	g.POST("/:id/duplicate", byID(h.svc.Duplicate))
	g.GET("/:id/comparison", h.compare)
}

func (h *ScenarioHandler) compare(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	raw := c.Query("baseline_scenario_id")
	if raw == "" {
		response.WriteError(c, service.InvalidField("baseline_scenario_id", "is required"))
		return
	}
	baseline, err := uuid.Parse(raw)
	if err != nil {
		response.WriteError(c, service.InvalidField("baseline_scenario_id", "must be a valid UUID"))
		return
	}
	msg, err := h.svc.Compare(c.Request.Context(), id, baseline)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, msg)
}

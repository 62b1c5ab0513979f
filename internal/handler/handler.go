package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/planning-api/internal/service"
)

// Options carries what Register needs besides the services.
type Options struct {
	Storage Pinger
	Driver  string
}

// Register mounts all public routes on the given engine.
func Register(r *gin.Engine, opts Options, svcs service.Services) {
	h := NewHealthHandler(opts.Storage, opts.Driver)

	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	RegisterDocs(r)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewPolicyHandler(svcs.Policies).Register(api)
		NewSiteHandler(svcs.Sites).Register(api)
		NewConstraintHandler(svcs.Constraints).Register(api)
		NewDocumentHandler(svcs.Documents).Register(api)
		NewScenarioHandler(svcs.Scenarios).Register(api)
		NewGoalHandler(svcs.Goals).Register(api)
		NewApplicationHandler(svcs.Applications).Register(api)
		NewPrecedentHandler(svcs.Precedents).Register(api)
		NewReportHandler(svcs.Reports).Register(api)
		NewAssistantHandler(svcs.Assistant).Register(api)
	}
}

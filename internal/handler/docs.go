package handler

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/planning-api/api"
)

// Swagger UI loads from a CDN and points at /openapi.yaml.
//
//go:embed swagger.html
var swaggerHTML []byte

// RegisterDocs mounts documentation endpoints at the root:
//   - GET /openapi.yaml: the embedded OpenAPI document
//   - GET /docs: Swagger UI rendering of it
func RegisterDocs(r *gin.Engine) {
	r.GET("/openapi.yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", api.OpenAPI)
	})
	r.GET("/docs", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", swaggerHTML)
	})
}

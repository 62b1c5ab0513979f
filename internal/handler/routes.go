package handler

import (
	"fmt"
	"io"
	"sort"

	"github.com/gin-gonic/gin"
)

// APIV1Prefix is the canonical base path for public HTTP API v1.
const APIV1Prefix = "/api/v1"

// PrintRoutes writes the engine's route table sorted by path, then method.
func PrintRoutes(w io.Writer, r *gin.Engine) error {
	routes := r.Routes()
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
	for _, rt := range routes {
		if _, err := fmt.Fprintf(w, "%-7s %s\n", rt.Method, rt.Path); err != nil {
			return err
		}
	}
	return nil
}

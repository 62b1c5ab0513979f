package handler

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/maxviazov/planning-api/internal/service"
	"github.com/maxviazov/planning-api/pkg/response"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// pageParams names the query parameters carrying the list window.
// Policies additionally accept page_offset / page_limit.
type pageParams struct {
	skip, limit           string
	skipAlias, limitAlias string
}

var defaultPageParams = pageParams{skip: "skip", limit: "limit"}

func (p pageParams) lookup(c *gin.Context, name, alias string) (string, string) {
	if v, ok := c.GetQuery(name); ok || alias == "" {
		return name, v
	}
	if v, ok := c.GetQuery(alias); ok {
		return alias, v
	}
	return name, ""
}

// parse reads skip (>= 0, default 0) and limit (1..100, default 20).
func (p pageParams) parse(c *gin.Context) (repository.Page, error) {
	page := repository.Page{Limit: defaultLimit}

	if name, raw := p.lookup(c, p.skip, p.skipAlias); raw != "" {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 0 {
			return page, service.InvalidField(name, "must be an integer >= 0")
		}
		page.Offset = n
	}
	if name, raw := p.lookup(c, p.limit, p.limitAlias); raw != "" {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 1 || n > maxLimit {
			return page, service.InvalidField(name, "must be an integer between 1 and 100")
		}
		page.Limit = n
	}
	return page, nil
}

// parseID reads a UUID path parameter, writing a 400 on failure.
func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.WriteError(c, service.InvalidField(name, "must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body into v, writing a 400 on failure.
func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		response.WriteError(c, bodyError(err))
		return false
	}
	return true
}

// bindPatch decodes a partial record. The body must be a JSON object.
func bindPatch(c *gin.Context) (repository.Patch, bool) {
	var p repository.Patch
	if !bindJSON(c, &p) {
		return nil, false
	}
	if p == nil {
		response.WriteError(c, service.InvalidField("body", "must be a JSON object"))
		return nil, false
	}
	return p, true
}

func bodyError(err error) error {
	var ute *json.UnmarshalTypeError
	var se *json.SyntaxError
	switch {
	case errors.Is(err, io.EOF):
		return service.InvalidField("body", "request body is required")
	case errors.As(err, &ute):
		field := ute.Field
		if field == "" {
			field = "body"
		}
		return service.InvalidField(field, "must be "+ute.Type.String())
	case errors.As(err, &se):
		return service.InvalidField("body", "malformed JSON")
	default:
		return service.InvalidField("body", err.Error())
	}
}

// listQuery collects the window, the whitelisted filters and the search/sort parameters.
func listQuery(c *gin.Context, pp pageParams, filters []string) (service.ListQuery, error) {
	page, err := pp.parse(c)
	if err != nil {
		return service.ListQuery{}, err
	}
	q := service.ListQuery{
		Page:   page,
		Search: c.Query("search"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
	}
	for _, f := range filters {
		if v, ok := c.GetQuery(f); ok && v != "" {
			if q.Filters == nil {
				q.Filters = repository.Filters{}
			}
			q.Filters[f] = v
		}
	}
	return q, nil
}

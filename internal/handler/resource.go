package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/maxviazov/planning-api/internal/service"
	"github.com/maxviazov/planning-api/pkg/response"
)

// crudHandler serves the uniform create/list/get/update/delete surface of one resource.
// Resource handlers embed it and add their sub-routes on the same group.
type crudHandler[T any] struct {
	svc     service.Resource[T]
	filters []string
	page    pageParams
}

func newCRUDHandler[T any](svc service.Resource[T], filters ...string) crudHandler[T] {
	return crudHandler[T]{svc: svc, filters: filters, page: defaultPageParams}
}

// routes mounts the CRUD routes. Every route names its key :id so sub-routes can share the wildcard.
func (h crudHandler[T]) routes(g *gin.RouterGroup) {
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h crudHandler[T]) create(c *gin.Context) {
	var rec T
	if !bindJSON(c, &rec) {
		return
	}
	out, err := h.svc.Create(c.Request.Context(), rec)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, out)
}

func (h crudHandler[T]) list(c *gin.Context) {
	q, err := listQuery(c, h.page, h.filters)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	res, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h crudHandler[T]) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	rec, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, rec)
}

// update serves both PUT and PATCH: supplied fields are merged, absent ones kept.
func (h crudHandler[T]) update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	rec, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, rec)
}

func (h crudHandler[T]) delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.WriteError(c, err)
		return
	}
	response.NoContent(c)
}

// byID adapts a read-only view of one record, keyed by the :id path parameter, to a handler.
func byID[V any](fn func(context.Context, uuid.UUID) (V, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		v, err := fn(c.Request.Context(), id)
		if err != nil {
			response.WriteError(c, err)
			return
		}
		response.WriteData(c, http.StatusOK, v)
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/service"
	"github.com/maxviazov/planning-api/pkg/response"
)

type DocumentHandler struct {
	crudHandler[model.PlanDocument]
	svc service.DocumentService
}

func NewDocumentHandler(svc service.DocumentService) *DocumentHandler {
	return &DocumentHandler{crudHandler: newCRUDHandler[model.PlanDocument](svc, "type", "documentStatus"), svc: svc}
}

func (h *DocumentHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/plan-documents")
	h.routes(g)
	g.POST("/:id/nodes", h.addNode)
	g.GET("/:id/nodes", h.listNodes)
	g.GET("/:id/nodes/:node_id", h.getNode)
	g.PUT("/:id/nodes/:node_id", h.updateNode)
	g.PATCH("/:id/nodes/:node_id", h.updateNode)
	g.DELETE("/:id/nodes/:node_id", h.deleteNode)
}

func (h *DocumentHandler) addNode(c *gin.Context) {
	docID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var node model.DocumentNode
	if !bindJSON(c, &node) {
		return
	}
	out, err := h.svc.AddNode(c.Request.Context(), docID, node)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, out)
}

func (h *DocumentHandler) listNodes(c *gin.Context) {
	docID, ok := parseID(c, "id")
	if !ok {
		return
	}
	page, err := defaultPageParams.parse(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	res, err := h.svc.ListNodes(c.Request.Context(), docID, page)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func nodeIDs(c *gin.Context) (docID, nodeID uuid.UUID, ok bool) {
	if docID, ok = parseID(c, "id"); !ok {
		return
	}
	nodeID, ok = parseID(c, "node_id")
	return
}

func (h *DocumentHandler) getNode(c *gin.Context) {
	docID, nodeID, ok := nodeIDs(c)
	if !ok {
		return
	}
	n, err := h.svc.GetNode(c.Request.Context(), docID, nodeID)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, n)
}

func (h *DocumentHandler) updateNode(c *gin.Context) {
	docID, nodeID, ok := nodeIDs(c)
	if !ok {
		return
	}
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	n, err := h.svc.UpdateNode(c.Request.Context(), docID, nodeID, patch)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, n)
}

func (h *DocumentHandler) deleteNode(c *gin.Context) {
	docID, nodeID, ok := nodeIDs(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteNode(c.Request.Context(), docID, nodeID); err != nil {
		response.WriteError(c, err)
		return
	}
	response.NoContent(c)
}

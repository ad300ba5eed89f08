package handler

import (
	"net/http"

	"salesdash/internal/dto"
	"salesdash/internal/service"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct{ svc service.InventoryService }

func NewInventoryHandler(svc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// List returns the inventory snapshot filtered by category, subcategory,
// vendor and stock status.
func (h *InventoryHandler) List(c *gin.Context) {
	var q dto.InventoryQuery
	if !bindQuery(c, &q) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Unsold returns in-stock products without a sale in the selected periods.
func (h *InventoryHandler) Unsold(c *gin.Context) {
	var q dto.UnsoldQuery
	if !bindQuery(c, &q) {
		return
	}
	resp, err := h.svc.Unsold(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

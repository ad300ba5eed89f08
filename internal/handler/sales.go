package handler

import (
	"net/http"

	"salesdash/internal/dto"
	"salesdash/internal/service"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct{ svc service.SalesService }

func NewSalesHandler(svc service.SalesService) *SalesHandler { return &SalesHandler{svc: svc} }

// Summary returns the dashboard headline metrics for the selected periods.
func (h *SalesHandler) Summary(c *gin.Context) {
	var q dto.SalesQuery
	if !bindQuery(c, &q) {
		return
	}
	resp, err := h.svc.Summary(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Products returns per-product aggregates, sorted by sales descending.
func (h *SalesHandler) Products(c *gin.Context) {
	var q dto.SalesQuery
	if !bindQuery(c, &q) {
		return
	}
	resp, err := h.svc.Products(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LineItems returns the normalized, order-context-filled rows.
func (h *SalesHandler) LineItems(c *gin.Context) {
	var q dto.SalesQuery
	if !bindQuery(c, &q) {
		return
	}
	resp, err := h.svc.LineItems(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

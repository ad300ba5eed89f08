package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"salesdash/internal/dto"
	"salesdash/internal/service"

	"github.com/gin-gonic/gin"
)

type ReconciliationHandler struct{ svc service.ReconciliationService }

func NewReconciliationHandler(svc service.ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{svc: svc}
}

// Reconcile returns product aggregates joined against an inventory snapshot.
func (h *ReconciliationHandler) Reconcile(c *gin.Context) {
	var q dto.ReconciliationQuery
	if !bindQuery(c, &q) {
		return
	}
	resp, err := h.svc.Reconcile(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Export returns the reconciled table as a CSV or XLSX download. The file
// is rendered into memory first so that errors can still produce a JSON
// response instead of a truncated download.
func (h *ReconciliationHandler) Export(c *gin.Context) {
	var q dto.ExportQuery
	if !bindQuery(c, &q) {
		return
	}

	var buf bytes.Buffer
	name, contentType, err := h.svc.Export(c.Request.Context(), q, &buf)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

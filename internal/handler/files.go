package handler

import (
	"context"
	"io"
	"net/http"

	"salesdash/internal/apierror"
	"salesdash/internal/dto"
	"salesdash/internal/service"

	"github.com/gin-gonic/gin"
)

type FilesHandler struct{ svc service.FileService }

func NewFilesHandler(svc service.FileService) *FilesHandler { return &FilesHandler{svc: svc} }

// ListSales returns the sales workbooks available on disk.
func (h *FilesHandler) ListSales(c *gin.Context) {
	resp, err := h.svc.ListSales(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListInventory returns the inventory snapshots available on disk.
func (h *FilesHandler) ListInventory(c *gin.Context) {
	resp, err := h.svc.ListInventory(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UploadSales accepts a multipart sales workbook upload.
func (h *FilesHandler) UploadSales(c *gin.Context) {
	h.upload(c, h.svc.SaveSales)
}

// UploadInventory accepts a multipart inventory snapshot upload.
func (h *FilesHandler) UploadInventory(c *gin.Context) {
	h.upload(c, h.svc.SaveInventory)
}

func (h *FilesHandler) upload(c *gin.Context, save func(ctx context.Context, filename string, r io.Reader) (*dto.UploadResponse, error)) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(`missing multipart field "file"`))
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("unreadable upload: "+err.Error()))
		return
	}
	defer f.Close()

	resp, err := save(c.Request.Context(), fh.Filename, f)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

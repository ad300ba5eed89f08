package handler

import (
	"net/http"

	"salesdash/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type CacheHandler struct{ loader *service.Loader }

func NewCacheHandler(loader *service.Loader) *CacheHandler { return &CacheHandler{loader: loader} }

// Purge drops every cached workbook and aggregate, forcing the next request
// to re-read from disk.
func (h *CacheHandler) Purge(c *gin.Context) {
	h.loader.PurgeAll()
	log.Info().Msg("caches purged")
	c.JSON(http.StatusOK, gin.H{"purged": true})
}

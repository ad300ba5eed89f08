package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Health returns a JSON health check response.
// Checks that both data directories are readable; never exposes paths.
func Health(salesDir, inventoryDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		salesStatus := dirStatus(salesDir)
		inventoryStatus := dirStatus(inventoryDir)

		status := http.StatusOK
		if salesStatus != "ok" || inventoryStatus != "ok" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":             status == http.StatusOK,
			"sales_data":     salesStatus,
			"inventory_data": inventoryStatus,
		})
	}
}

func dirStatus(dir string) string {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "error"
	}
	return "ok"
}

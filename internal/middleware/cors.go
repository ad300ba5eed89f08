package middleware

import (
	"github.com/gin-gonic/gin"
)

// CORS sets permissive headers so the dashboard frontend can talk to this
// backend from another origin during development.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID, Content-Disposition")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusspots/config"
)

// AdminAuthMiddleware guards the bulk-import endpoints with the configured
// API key. An empty configured key disables admin access entirely.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Admin-Key")
		expected := config.AppConfig.AdminAPIKey
		if expected == "" || key != expected {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarelalush/Orel-site/config"
)

// ValidateAPIKey guards the admin surface.
func ValidateAPIKey(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-KEY")
		if cfg.Auth.AdminAPIKey == "" || apiKey != cfg.Auth.AdminAPIKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
			c.Abort()
			return
		}
		c.Next()
	}
}

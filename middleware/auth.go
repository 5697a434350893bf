package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarelalush/Orel-site/auth"
	"github.com/sarelalush/Orel-site/config"
)

// ValidateToken guards user routes. It accepts both registered-user and
// guest tokens, exposing user_id and role to the handlers.
func ValidateToken(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
			tokenString = tokenString[7:]
		}

		claims, err := auth.ParseToken(cfg.Auth.JWTSecret, tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims["user_id"])
		c.Set("role", claims["role"])
		c.Next()
	}
}

// RequireUser rejects guest sessions on routes that need a registered account.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, _ := c.Get("role"); role == "guest" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

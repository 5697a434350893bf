package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sarelalush/Orel-site/config"
)

// POST /auth/guest
//
// Issues an anonymous session: a guest id plus a signed token scoped to the
// guest role. No row is written; guest carts and wishlists are created lazily
// on first use.
func CreateGuestSession(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := "guest_" + uuid.NewString()

		token, err := IssueToken(cfg.Auth.JWTSecret, guestID, "", "guest", cfg.Auth.TokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"guest_id":   guestID,
			"token":      token,
			"expires_at": time.Now().Add(cfg.Auth.TokenTTL),
		})
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sarelalush/Orel-site/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db, deps.Config))
		authGroup.POST("/login", auth.Login(db, deps.Config))
		authGroup.POST("/guest", auth.CreateGuestSession(deps.Config))
	}
}

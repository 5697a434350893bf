package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sarelalush/Orel-site/cache"
	"github.com/sarelalush/Orel-site/config"
	orderControllers "github.com/sarelalush/Orel-site/controllers/order"
	"github.com/sarelalush/Orel-site/mailer"
	"github.com/sarelalush/Orel-site/monitoring"
	"github.com/sarelalush/Orel-site/storage"
)

// Deps carries the shared components handlers need beyond the database. Every
// piece is constructed once in main and threaded through here; nothing is a
// package-level global.
type Deps struct {
	Config   *config.Config
	Cache    *cache.Cache
	Storage  storage.Uploader
	Mailer   *mailer.Mailer
	Hub      *orderControllers.Hub
	Logger   *monitoring.Logger
	Recorder *monitoring.Recorder
}

// SetupRoutes wires every route group onto the engine.
func SetupRoutes(r *gin.Engine, db *gorm.DB, deps Deps) {
	// Public auth endpoints (no middleware)
	SetupAuthRoutes(r, db, deps)

	// Public storefront reads + guest state
	SetupCatalogRoutes(r, db, deps)
	SetupGuestRoutes(r, db)

	// Live order feed. Browser websocket handshakes cannot carry the
	// X-API-KEY header, so this sits outside the admin group; push-only.
	r.GET("/ws/orders", deps.Hub.Handler())

	// JWT-protected user surface
	SetupUserRoutes(r, db, deps)

	// API-key-protected admin console
	SetupAdminRoutes(r, db, deps)
}

package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sarelalush/Orel-site/cache"
	"github.com/sarelalush/Orel-site/config"
	orderControllers "github.com/sarelalush/Orel-site/controllers/order"
	"github.com/sarelalush/Orel-site/mailer"
	"github.com/sarelalush/Orel-site/models"
	"github.com/sarelalush/Orel-site/monitoring"
	"github.com/sarelalush/Orel-site/routes"
	"github.com/sarelalush/Orel-site/storage"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	db := initDatabase(cfg)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.GuestCart{},
		&models.GuestCartItem{},
		&models.WishlistItem{},
		&models.GuestWishlistItem{},
		&models.CompareItem{},
		&models.Review{},
		&models.ReviewVote{},
		&models.Coupon{},
		&models.LoyaltyAccount{},
		&models.LoyaltyTransaction{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	if cfg.SeedFile != "" {
		if err := seedDatabase(db, cfg.SeedFile); err != nil {
			log.Fatalf("❌ Seeding failed: %v", err)
		}
	}

	// Shared components, built once and injected everywhere
	logger := monitoring.NewLogger(1024, cfg.Server.Env == "development")
	recorder := monitoring.NewRecorder(2048)
	catalogCache := cache.New(cfg.Catalog.CacheTTL)

	uploader, err := storage.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("❌ Storage init failed: %v", err)
	}

	hub := orderControllers.NewHub(logger)
	mail := mailer.New(cfg, logger)

	// Gin setup
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.MaxMultipartMemory = 1 << 30 // 1GB

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins(cfg),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(monitoring.RequestTimer(recorder))

	// Serve uploaded images directly when not on S3
	if cfg.Storage.S3Bucket == "" {
		r.Static(cfg.Storage.PublicPath, cfg.Storage.UploadDir)
	}

	routes.SetupRoutes(r, db, routes.Deps{
		Config:   cfg,
		Cache:    catalogCache,
		Storage:  uploader,
		Mailer:   mail,
		Hub:      hub,
		Logger:   logger,
		Recorder: recorder,
	})

	log.Printf("🚀 Server running on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func initDatabase(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	return db
}

func allowOrigins(cfg *config.Config) []string {
	if cfg.Server.AllowOrigins == "" {
		return []string{"*"}
	}
	origins := strings.Split(cfg.Server.AllowOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}

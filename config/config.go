package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Loyalty  LoyaltyConfig
	Compare  CompareConfig
	Catalog  CatalogConfig
	Storage  StorageConfig
	Payment  PaymentConfig
	Mail     MailConfig
	SeedFile string
}

type ServerConfig struct {
	Port         string
	Env          string
	AllowOrigins string
}

type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type AuthConfig struct {
	JWTSecret   string
	AdminAPIKey string
	TokenTTL    time.Duration
}

type LoyaltyConfig struct {
	// PointValue is the monetary value of a single loyalty point.
	PointValue float64
	// EarnRate is the number of points credited per currency unit of a
	// completed order.
	EarnRate float64
}

type CompareConfig struct {
	MaxItems int
}

type CatalogConfig struct {
	CacheTTL time.Duration
}

type StorageConfig struct {
	S3Bucket   string
	S3Region   string
	S3BaseURL  string
	UploadDir  string
	PublicPath string
}

type PaymentConfig struct {
	PublishableKey string
	Mode           string
}

type MailConfig struct {
	SendgridKey string
	FromEmail   string
	FromName    string
}

// Load builds the configuration from the environment, with a .env file as a
// fallback source for local development.
func Load() *Config {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("no .env file found, reading environment variables only: %v", err)
	}

	viper.AutomaticEnv()

	viper.BindEnv("SERVER_PORT", "PORT")
	viper.BindEnv("DATABASE_URL")
	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("ADMIN_API_KEY")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("TOKEN_TTL_HOURS", 24)
	viper.SetDefault("LOYALTY_POINT_VALUE", 0.01)
	viper.SetDefault("LOYALTY_EARN_RATE", 1.0)
	viper.SetDefault("COMPARE_MAX_ITEMS", 4)
	viper.SetDefault("CATALOG_CACHE_TTL_SECONDS", 300)
	viper.SetDefault("UPLOAD_DIR", "./uploads")
	viper.SetDefault("UPLOAD_PUBLIC_PATH", "/uploads")
	viper.SetDefault("PAYMENT_MODE", "test")

	return &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Env:          viper.GetString("SERVER_ENV"),
			AllowOrigins: viper.GetString("ALLOW_ORIGINS"),
		},
		Database: DatabaseConfig{
			URL:      viper.GetString("DATABASE_URL"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Auth: AuthConfig{
			JWTSecret:   viper.GetString("JWT_SECRET"),
			AdminAPIKey: viper.GetString("ADMIN_API_KEY"),
			TokenTTL:    time.Duration(viper.GetInt("TOKEN_TTL_HOURS")) * time.Hour,
		},
		Loyalty: LoyaltyConfig{
			PointValue: viper.GetFloat64("LOYALTY_POINT_VALUE"),
			EarnRate:   viper.GetFloat64("LOYALTY_EARN_RATE"),
		},
		Compare: CompareConfig{
			MaxItems: viper.GetInt("COMPARE_MAX_ITEMS"),
		},
		Catalog: CatalogConfig{
			CacheTTL: time.Duration(viper.GetInt("CATALOG_CACHE_TTL_SECONDS")) * time.Second,
		},
		Storage: StorageConfig{
			S3Bucket:   viper.GetString("S3_BUCKET"),
			S3Region:   viper.GetString("S3_REGION"),
			S3BaseURL:  viper.GetString("S3_BASE_URL"),
			UploadDir:  viper.GetString("UPLOAD_DIR"),
			PublicPath: viper.GetString("UPLOAD_PUBLIC_PATH"),
		},
		Payment: PaymentConfig{
			PublishableKey: viper.GetString("PAYMENT_PUBLISHABLE_KEY"),
			Mode:           viper.GetString("PAYMENT_MODE"),
		},
		Mail: MailConfig{
			SendgridKey: viper.GetString("SENDGRID_API_KEY"),
			FromEmail:   viper.GetString("MAIL_FROM_EMAIL"),
			FromName:    viper.GetString("MAIL_FROM_NAME"),
		},
		SeedFile: viper.GetString("SEED_FILE"),
	}
}

// DSN returns the postgres connection string, preferring DATABASE_URL.
func (c *Config) DSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.Database.Host, c.Database.User, c.Database.Password, c.Database.Name, c.Database.Port,
	)
}

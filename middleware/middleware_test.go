package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sarelalush/Orel-site/auth"
	"github.com/sarelalush/Orel-site/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:   "test-secret",
			AdminAPIKey: "admin-key",
			TokenTTL:    time.Hour,
		},
	}
}

func protectedRouter(cfg *config.Config, requireUser bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/")
	group.Use(ValidateToken(cfg))
	if requireUser {
		group.Use(RequireUser())
	}
	group.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return r
}

func TestValidateToken(t *testing.T) {
	cfg := testConfig()
	token, err := auth.IssueToken(cfg.Auth.JWTSecret, "user-1", "a@b.c", "user", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"garbage token", "Bearer junk", http.StatusUnauthorized},
		{"bare token", token, http.StatusOK},
		{"bearer prefix", "Bearer " + token, http.StatusOK},
	}

	r := protectedRouter(cfg, false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestRequireUserRejectsGuests(t *testing.T) {
	cfg := testConfig()
	guestToken, _ := auth.IssueToken(cfg.Auth.JWTSecret, "guest_abc", "", "guest", time.Hour)
	userToken, _ := auth.IssueToken(cfg.Auth.JWTSecret, "user-1", "a@b.c", "user", time.Hour)

	r := protectedRouter(cfg, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+guestToken)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("guest: status = %d, want 401", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("user: status = %d, want 200", w.Code)
	}
}

func TestValidateAPIKey(t *testing.T) {
	cfg := testConfig()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ValidateAPIKey(cfg))
	r.GET("/admin-ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name string
		key  string
		want int
	}{
		{"missing key", "", http.StatusUnauthorized},
		{"wrong key", "nope", http.StatusUnauthorized},
		{"right key", "admin-key", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin-ping", nil)
			if tt.key != "" {
				req.Header.Set("X-API-KEY", tt.key)
			}
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestValidateAPIKeyRefusesWhenUnconfigured(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.AdminAPIKey = ""

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ValidateAPIKey(cfg))
	r.GET("/admin-ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	// an empty configured key must never grant access to an empty header
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-ping", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

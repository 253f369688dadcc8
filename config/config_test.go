package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_PATH", "JWT_TTL_HOURS", "ADMIN_USERNAME", "GEMINI_API_KEY", "API_KEY", "CART_IDLE_MINUTES", "MAX_UPLOAD_BYTES"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.Port != "8080" || c.DatabasePath != "restaurant.db" || c.AdminUsername != "admin" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.JWTTTL != 24*time.Hour || c.CartIdle != 240*time.Minute || c.MaxUploadBytes != 10<<20 {
		t.Fatalf("unexpected durations/limits: %+v", c)
	}
	if c.GeminiAPIKey != "" {
		t.Fatalf("GeminiAPIKey = %q", c.GeminiAPIKey)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("CART_IDLE_MINUTES", "nope")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "legacy-key")

	c := Load()
	if c.Port != "9090" || c.JWTTTL != 2*time.Hour {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.CartIdle != 240*time.Minute {
		t.Fatalf("bad integer should fall back, got %v", c.CartIdle)
	}
	if c.GeminiAPIKey != "legacy-key" {
		t.Fatalf("API_KEY fallback not used: %q", c.GeminiAPIKey)
	}
}

func TestOpenDB(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "site.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	if err := db.Exec("SELECT 1").Error; err != nil {
		t.Fatalf("query: %v", err)
	}
}

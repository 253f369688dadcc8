package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port    string
	GinMode string

	DatabasePath string

	JWTSecret []byte
	JWTTTL    time.Duration

	AdminUsername string
	AdminPassword string

	// Remote mirror, optional
	RemoteStoreURL string
	RemoteStoreKey string
	TiDBCA         string

	CloudinaryURL  string
	MaxUploadBytes int64

	GeminiAPIKey string
	GeminiModel  string

	CartIdle time.Duration
}

// Load reads .env when present, then the process environment.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Println("📄 Loaded .env")
	}

	return Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        os.Getenv("GIN_MODE"),
		DatabasePath:   getEnv("DATABASE_PATH", "restaurant.db"),
		JWTSecret:      []byte(getEnv("JWT_SECRET", "restaurant_site_secret_change_me")),
		JWTTTL:         time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		AdminUsername:  getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "admin"),
		RemoteStoreURL: os.Getenv("REMOTE_STORE_URL"),
		RemoteStoreKey: os.Getenv("REMOTE_STORE_KEY"),
		TiDBCA:         os.Getenv("TIDB_CA"),
		CloudinaryURL:  os.Getenv("CLOUDINARY_URL"),
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", getEnv("API_KEY", "")),
		GeminiModel:    os.Getenv("GEMINI_MODEL"),
		CartIdle:       time.Duration(getEnvInt("CART_IDLE_MINUTES", 240)) * time.Minute,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("⚠️ %s=%q is not a positive integer, using %d", key, v, fallback)
		return fallback
	}
	return n
}

// OpenDB opens the local sqlite database.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	log.Printf("✅ Database opened at %s", path)
	return db, nil
}

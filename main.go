package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"restaurant-site/assistant"
	"restaurant-site/auth"
	"restaurant-site/cart"
	"restaurant-site/config"
	"restaurant-site/content"
	"restaurant-site/handlers"
	"restaurant-site/media"
	"restaurant-site/middleware"
	"restaurant-site/routes"
	"restaurant-site/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Set Gin mode
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// Local store is required; the remote mirror is optional
	db, err := config.OpenDB(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	local, err := store.NewLocal(db)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	var remote store.Store
	if cfg.RemoteStoreURL != "" {
		r, err := store.OpenRemote(ctx, cfg.RemoteStoreURL, cfg.RemoteStoreKey, cfg.TiDBCA)
		if err != nil {
			log.Printf("⚠️ Remote store unavailable, running local-only: %v", err)
		} else {
			defer r.Close()
			remote = r
			log.Println("✅ Remote store connected")
		}
	}
	mirror := store.NewMirror(local, remote)

	svc := content.New(mirror, content.Options{
		SeedUsername: cfg.AdminUsername,
		SeedPassword: cfg.AdminPassword,
	})
	snap, err := svc.Load(ctx)
	if err != nil {
		log.Printf("⚠️ Could not load content, serving defaults until the next write: %v", err)
	} else {
		log.Printf("📋 Loaded %d menu items, %d categories, %d admins", len(snap.MenuItems), len(snap.Categories), len(snap.Admins))
	}

	var ingestor media.Ingestor = media.DataURI{MaxBytes: cfg.MaxUploadBytes}
	if cfg.CloudinaryURL != "" {
		cld, err := media.NewCloudinary(cfg.CloudinaryURL, "restaurant-site", cfg.MaxUploadBytes)
		if err != nil {
			log.Printf("⚠️ Cloudinary disabled, images will be inlined: %v", err)
		} else {
			ingestor = cld
		}
	}

	var provider assistant.Provider
	if cfg.GeminiAPIKey != "" {
		g, err := assistant.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("⚠️ AI assistant disabled: %v", err)
		} else {
			provider = g
		}
	}

	carts := cart.NewSessions(cfg.CartIdle)
	go sweepCarts(carts, cfg.CartIdle)

	h := &handlers.Handler{
		Content:   svc,
		Verifier:  auth.NewPasswordVerifier(svc),
		JWT:       middleware.NewJWT(cfg.JWTSecret, cfg.JWTTTL),
		Carts:     carts,
		CartIdle:  int(cfg.CartIdle.Seconds()),
		Media:     ingestor,
		Assistant: assistant.New(provider),
		MaxUpload: cfg.MaxUploadBytes,
	}

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Site API",
			"remote":  mirror.Remote(),
			"ai":      h.Assistant.Configured(),
		})
	})

	// Register all routes
	routes.SetupRoutes(r, h)

	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// sweepCarts drops idle cart sessions for the life of the process
func sweepCarts(carts *cart.Sessions, idle time.Duration) {
	interval := idle / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		if n := carts.Sweep(); n > 0 {
			log.Printf("🧹 Swept %d idle cart sessions", n)
		}
	}
}

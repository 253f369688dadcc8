package handlers

import (
	"errors"
	"log"
	"net/http"

	"restaurant-site/assistant"
	"restaurant-site/auth"
	"restaurant-site/carousel"
	"restaurant-site/cart"
	"restaurant-site/content"
	"restaurant-site/media"
	"restaurant-site/middleware"
	"restaurant-site/validation"

	"github.com/gin-gonic/gin"
)

// Handler carries the services every route needs.
type Handler struct {
	Content   *content.Service
	Verifier  auth.Verifier
	JWT       *middleware.JWT
	Carts     *cart.Sessions
	CartIdle  int // cookie max-age in seconds
	Media     media.Ingestor
	Assistant *assistant.Assistant
	MaxUpload int64

	// Tick drives the testimonial stream; nil means a real ticker.
	Tick carousel.TickFunc
}

var errInvalidBody = errors.New("invalid request body")

// respondError maps service errors onto HTTP responses.
func respondError(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": verr.Fields})
	case errors.Is(err, errInvalidBody):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, content.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, content.ErrProtectedAdmin):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		log.Printf("❌ %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

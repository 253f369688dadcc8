package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"restaurant-site/content"
	"restaurant-site/models"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

// GetSettings returns the full settings document, testimonials included
func (h *Handler) GetSettings(c *gin.Context) {
	s, err := h.Content.Settings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": s})
}

// UpdateSettings merges a partial settings document over the stored one.
// Fields absent from the body keep their current value.
func (h *Handler) UpdateSettings(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := h.Content.UpdateSettings(c.Request.Context(), func(s *models.SiteSettings) error {
		if err := json.Unmarshal(body, s); err != nil {
			return fmt.Errorf("%w: %v", errInvalidBody, err)
		}
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings saved", "settings": s})
}

// ── Gallery Management ───────────────────────────────────────────────────────

// AddGalleryImage appends an image URL
func (h *Handler) AddGalleryImage(c *gin.Context) {
	var req struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := h.Content.UpdateSettings(c.Request.Context(), func(s *models.SiteSettings) error {
		s.GalleryImages = append(s.GalleryImages, req.URL)
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Image added", "images": s.GalleryImages})
}

// RemoveGalleryImage drops the image at :index
func (h *Handler) RemoveGalleryImage(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image index"})
		return
	}
	s, err := h.Content.UpdateSettings(c.Request.Context(), func(s *models.SiteSettings) error {
		if idx < 0 || idx >= len(s.GalleryImages) {
			return fmt.Errorf("gallery image %d: %w", idx, content.ErrNotFound)
		}
		s.GalleryImages = append(s.GalleryImages[:idx], s.GalleryImages[idx+1:]...)
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image removed", "images": s.GalleryImages})
}

// SetGalleryLayout switches between grid, slider and masonry
func (h *Handler) SetGalleryLayout(c *gin.Context) {
	var req struct {
		Layout models.GalleryLayout `json:"layout" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := h.Content.UpdateSettings(c.Request.Context(), func(s *models.SiteSettings) error {
		s.GalleryLayout = req.Layout
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gallery layout updated", "layout": s.GalleryLayout})
}

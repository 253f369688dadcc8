package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"restaurant-site/assistant"
	"restaurant-site/content"
	"restaurant-site/models"
	"restaurant-site/testimonial"
	"restaurant-site/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ── Testimonial Management ───────────────────────────────────────────────────

type TestimonialRequest struct {
	Name    string `json:"name" binding:"required"`
	Comment string `json:"comment" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Date    string `json:"date"`
}

// ListAllTestimonials returns every testimonial, hidden ones included
func (h *Handler) ListAllTestimonials(c *gin.Context) {
	s, err := h.Content.Settings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(s.Testimonials), "testimonials": s.Testimonials})
}

// CreateTestimonial adds a visible local testimonial dated today
func (h *Handler) CreateTestimonial(c *gin.Context) {
	var req TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t := models.Testimonial{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Comment:   req.Comment,
		Rating:    req.Rating,
		Date:      req.Date,
		Source:    models.SourceLocal,
		IsVisible: true,
	}
	if t.Date == "" {
		t.Date = time.Now().Format("02.01.2006")
	}
	if err := validation.Testimonial(t); err != nil {
		respondError(c, err)
		return
	}
	_, err := h.Content.UpdateSettings(c.Request.Context(), func(s *models.SiteSettings) error {
		s.Testimonials = append(s.Testimonials, t)
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Testimonial added", "testimonial": t})
}

// editTestimonial applies fn to the testimonial with the given id
func (h *Handler) editTestimonial(ctx context.Context, id string, fn func(*models.SiteSettings, int)) (models.Testimonial, error) {
	var out models.Testimonial
	_, err := h.Content.UpdateSettings(ctx, func(s *models.SiteSettings) error {
		for i := range s.Testimonials {
			if s.Testimonials[i].ID == id {
				fn(s, i)
				if i < len(s.Testimonials) {
					out = s.Testimonials[i]
				}
				return nil
			}
		}
		return fmt.Errorf("testimonial %s: %w", id, content.ErrNotFound)
	})
	return out, err
}

// UpdateTestimonial edits the text, rating and date of a testimonial
func (h *Handler) UpdateTestimonial(c *gin.Context) {
	var req TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.editTestimonial(c.Request.Context(), c.Param("id"), func(s *models.SiteSettings, i int) {
		s.Testimonials[i].Name = req.Name
		s.Testimonials[i].Comment = req.Comment
		s.Testimonials[i].Rating = req.Rating
		if req.Date != "" {
			s.Testimonials[i].Date = req.Date
		}
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial updated", "testimonial": t})
}

// ToggleTestimonial flips the visibility of a testimonial
func (h *Handler) ToggleTestimonial(c *gin.Context) {
	t, err := h.editTestimonial(c.Request.Context(), c.Param("id"), func(s *models.SiteSettings, i int) {
		s.Testimonials[i].IsVisible = !s.Testimonials[i].IsVisible
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Visibility updated", "testimonial": t})
}

// DeleteTestimonial removes a testimonial
func (h *Handler) DeleteTestimonial(c *gin.Context) {
	_, err := h.editTestimonial(c.Request.Context(), c.Param("id"), func(s *models.SiteSettings, i int) {
		s.Testimonials = append(s.Testimonials[:i], s.Testimonials[i+1:]...)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
}

// ImportTestimonials pulls reviews for a Google Maps link and appends them
func (h *Handler) ImportTestimonials(c *gin.Context) {
	var req struct {
		MapsLink string `json:"mapsLink"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.MapsLink == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": testimonial.ErrEmptyLink.Error()})
		return
	}

	ctx := c.Request.Context()
	// fetched outside the content lock
	candidates, err := h.Assistant.FetchReviews(ctx, req.MapsLink)
	if errors.Is(err, assistant.ErrNotConfigured) {
		log.Printf("⚠️ review import skipped: %v", err)
		c.JSON(http.StatusOK, gin.H{"message": testimonial.ErrNoReviews.Error(), "added": 0})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not fetch reviews: " + err.Error()})
		return
	}

	added := 0
	_, err = h.Content.UpdateSettings(ctx, func(s *models.SiteSettings) error {
		var ierr error
		s.Testimonials, added, ierr = testimonial.Import(ctx, testimonial.Fixed(candidates), req.MapsLink, s.Testimonials)
		return ierr
	})
	if errors.Is(err, testimonial.ErrNoReviews) {
		c.JSON(http.StatusOK, gin.H{"message": err.Error(), "added": 0})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("%d reviews imported", added), "added": added})
}

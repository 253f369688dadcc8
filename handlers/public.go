package handlers

import (
	"net/http"

	"restaurant-site/carousel"
	"restaurant-site/catalog"
	"restaurant-site/models"
	"restaurant-site/testimonial"

	"github.com/gin-gonic/gin"
)

// siteResponse is the public settings document. The testimonial list is
// served separately by Testimonials.
type siteResponse struct {
	models.SiteSettings
	Testimonials *struct{} `json:"testimonials,omitempty"`
	WhatsAppLink string    `json:"whatsappLink,omitempty"`
}

// Site returns the public site settings
func (h *Handler) Site(c *gin.Context) {
	s, err := h.Content.Settings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"site": siteResponse{SiteSettings: s, WhatsAppLink: s.WhatsAppLink()}})
}

type widget struct {
	Type     string                `json:"type"`
	Position models.WidgetPosition `json:"position"`
	Link     string                `json:"link,omitempty"`
}

// Widgets lists the enabled floating widgets with their screen corner
func (h *Handler) Widgets(c *gin.Context) {
	s, err := h.Content.Settings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	widgets := []widget{}
	if s.AIAssistantEnabled {
		widgets = append(widgets, widget{Type: "assistant", Position: s.AIAssistantPosition})
	}
	if s.WhatsAppEnabled && s.WhatsAppLink() != "" {
		widgets = append(widgets, widget{Type: "whatsapp", Position: s.WhatsAppPosition, Link: s.WhatsAppLink()})
	}
	c.JSON(http.StatusOK, gin.H{"widgets": widgets})
}

// ── Menu ─────────────────────────────────────────────────────────────────────

// menuEntry is a menu item with the icon of its category. Items whose
// category no longer exists carry no icon.
type menuEntry struct {
	models.MenuItem
	CategoryIcon string `json:"categoryIcon,omitempty"`
}

// ListMenu returns menu items filtered by ?category= and ?search=
func (h *Handler) ListMenu(c *gin.Context) {
	ctx := c.Request.Context()
	items, err := h.Content.MenuItems(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	categories, err := h.Content.Categories(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	category := c.DefaultQuery("category", catalog.AllCategories)
	filtered := catalog.Filter(items, category, c.Query("search"))
	menu := make([]menuEntry, len(filtered))
	for i, item := range filtered {
		menu[i] = menuEntry{MenuItem: item, CategoryIcon: catalog.IconFor(categories, item.Category)}
	}
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"count":    len(menu),
		"menu":     menu,
	})
}

// PopularMenu returns the home page picks
func (h *Handler) PopularMenu(c *gin.Context) {
	items, err := h.Content.MenuItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": catalog.Popular(items, 3)})
}

// ListCategories returns categories plus the filter strip names
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.Content.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"names":      catalog.CategoryNames(categories),
	})
}

// ── Gallery & testimonials ───────────────────────────────────────────────────

// Gallery returns the gallery layout and images
func (h *Handler) Gallery(c *gin.Context) {
	s, err := h.Content.Settings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if !s.GalleryEnabled {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery is disabled"})
		return
	}
	resp := gin.H{"layout": s.GalleryLayout, "images": s.GalleryImages}
	if s.GalleryLayout == models.GallerySlider {
		resp["slides"] = carousel.Groups(len(s.GalleryImages), 1)
	}
	c.JSON(http.StatusOK, resp)
}

// Testimonials returns the testimonial section model
func (h *Handler) Testimonials(c *gin.Context) {
	s, err := h.Content.Settings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	d, ok := testimonial.BuildDisplay(s)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No testimonials to show"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": d})
}

// TestimonialStream pushes the current slider page as server-sent events so
// every open page rotates in step.
func (h *Handler) TestimonialStream(c *gin.Context) {
	s, err := h.Content.Settings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	d, ok := testimonial.BuildDisplay(s)
	if !ok || d.Layout != models.TestimonialSlider {
		c.JSON(http.StatusNotFound, gin.H{"error": "No testimonial slider to stream"})
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.SSEvent("slide", 0)
	c.Writer.Flush()

	r := carousel.Rotator{Count: len(d.Groups), Interval: testimonial.SlideInterval, Tick: h.Tick}
	r.Run(c.Request.Context(), func(i int) {
		c.SSEvent("slide", i)
		c.Writer.Flush()
	})
}

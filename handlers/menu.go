package handlers

import (
	"net/http"

	"restaurant-site/models"

	"github.com/gin-gonic/gin"
)

// ── Menu Management ──────────────────────────────────────────────────────────

type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	IsPopular   bool    `json:"isPopular"`
}

func (r MenuItemRequest) item(id string) models.MenuItem {
	return models.MenuItem{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Image:       r.Image,
		IsPopular:   r.IsPopular,
	}
}

// CreateMenuItem adds a dish to the menu
func (h *Handler) CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.Content.UpsertMenuItem(c.Request.Context(), req.item(""))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// UpdateMenuItem replaces a dish by id
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.Content.UpsertMenuItem(c.Request.Context(), req.item(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem removes a dish by id
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	if err := h.Content.DeleteMenuItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

// ── Category Management ──────────────────────────────────────────────────────

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon"`
}

// CreateCategory adds a category. Names must be unique.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, err := h.Content.UpsertCategory(c.Request.Context(), models.Category{Name: req.Name, Icon: req.Icon})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category added", "category": category})
}

// UpdateCategory renames or re-icons a category. Menu items keep their old
// category name.
func (h *Handler) UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, err := h.Content.UpsertCategory(c.Request.Context(), models.Category{ID: c.Param("id"), Name: req.Name, Icon: req.Icon})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated", "category": category})
}

// DeleteCategory removes a category without touching menu items
func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.Content.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

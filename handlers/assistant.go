package handlers

import (
	"net/http"

	"restaurant-site/assistant"

	"github.com/gin-gonic/gin"
)

// Chat answers a visitor question about the menu. It always responds 200;
// provider problems come back as a static reply.
func (h *Handler) Chat(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	s, err := h.Content.Settings(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	if !s.AIAssistantEnabled {
		c.JSON(http.StatusOK, gin.H{"reply": assistant.NotConfiguredMessage})
		return
	}
	items, err := h.Content.MenuItems(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": h.Assistant.Recommend(ctx, req.Message, items, s.RestaurantName)})
}

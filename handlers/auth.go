package handlers

import (
	"errors"
	"net/http"

	"restaurant-site/auth"
	"restaurant-site/middleware"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks admin credentials and returns a JWT
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := h.Verifier.Verify(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidCredentials.Error()})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	token, expires, err := h.JWT.GenerateToken(admin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Login successful",
		"token":     token,
		"expiresAt": expires,
		"admin":     admin.View(),
	})
}

// Me returns the logged-in admin
func (h *Handler) Me(c *gin.Context) {
	admins, err := h.Content.Admins(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	id := middleware.GetAdminID(c)
	for _, a := range admins {
		if a.ID == id {
			c.JSON(http.StatusOK, gin.H{"admin": a.View()})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Admin account no longer exists"})
}

// ActiveAdmin rejects tokens whose account was deleted after they were
// issued and refreshes the caller role from storage.
func (h *Handler) ActiveAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		admins, err := h.Content.Admins(c.Request.Context())
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}
		id := middleware.GetAdminID(c)
		for _, a := range admins {
			if a.ID == id {
				c.Set("role", string(a.Role))
				c.Next()
				return
			}
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account no longer exists"})
		c.Abort()
	}
}

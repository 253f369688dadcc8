package handlers

import (
	"net/http"

	"restaurant-site/models"

	"github.com/gin-gonic/gin"
)

// ── Admin Accounts (super only) ──────────────────────────────────────────────

type CreateAdminRequest struct {
	Username string           `json:"username" binding:"required"`
	Email    string           `json:"email" binding:"omitempty,email"`
	Password string           `json:"password" binding:"required,min=4"`
	Role     models.AdminRole `json:"role"`
}

// ListAdmins returns every account without credentials
func (h *Handler) ListAdmins(c *gin.Context) {
	admins, err := h.Content.Admins(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	views := make([]models.AdminView, len(admins))
	for i, a := range admins {
		views[i] = a.View()
	}
	c.JSON(http.StatusOK, gin.H{"count": len(views), "admins": views})
}

// CreateAdmin adds an account
func (h *Handler) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	admin, err := h.Content.AddAdmin(c.Request.Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Admin created", "admin": admin.View()})
}

// DeleteAdmin removes an account. The bootstrap account is protected.
func (h *Handler) DeleteAdmin(c *gin.Context) {
	if err := h.Content.DeleteAdmin(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin deleted"})
}

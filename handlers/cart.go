package handlers

import (
	"net/http"

	"restaurant-site/cart"

	"github.com/gin-gonic/gin"
)

const cartCookie = "cart_session"

type cartView struct {
	Items    []cart.Item `json:"items"`
	Total    float64     `json:"total"`
	Count    int         `json:"count"`
	Distinct int         `json:"distinct"`
}

func viewOf(c *cart.Cart) cartView {
	return cartView{Items: c.Items(), Total: c.Total(), Count: c.Count(), Distinct: c.Len()}
}

// cartSession returns the visitor's session id, issuing a cookie on first use
func (h *Handler) cartSession(c *gin.Context) string {
	if id, err := c.Cookie(cartCookie); err == nil && id != "" {
		return id
	}
	id := cart.NewID()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cartCookie, id, h.CartIdle, "/", "", false, true)
	return id
}

// GetCart returns the visitor's cart
func (h *Handler) GetCart(c *gin.Context) {
	var v cartView
	h.Carts.With(h.cartSession(c), func(ct *cart.Cart) { v = viewOf(ct) })
	c.JSON(http.StatusOK, gin.H{"cart": v})
}

// AddToCart adds one of a menu item. Price and name come from the current
// menu, never from the client.
func (h *Handler) AddToCart(c *gin.Context) {
	var req struct {
		ID string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	items, err := h.Content.MenuItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	for _, item := range items {
		if item.ID != req.ID {
			continue
		}
		var v cartView
		h.Carts.With(h.cartSession(c), func(ct *cart.Cart) {
			ct.Add(item)
			v = viewOf(ct)
		})
		c.JSON(http.StatusOK, gin.H{"cart": v})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
}

// UpdateCartItem shifts a line quantity by delta, never below 1
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req struct {
		Delta int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var v cartView
	h.Carts.With(h.cartSession(c), func(ct *cart.Cart) {
		ct.UpdateQuantity(c.Param("id"), req.Delta)
		v = viewOf(ct)
	})
	c.JSON(http.StatusOK, gin.H{"cart": v})
}

// RemoveCartItem drops a line
func (h *Handler) RemoveCartItem(c *gin.Context) {
	var v cartView
	h.Carts.With(h.cartSession(c), func(ct *cart.Cart) {
		ct.Remove(c.Param("id"))
		v = viewOf(ct)
	})
	c.JSON(http.StatusOK, gin.H{"cart": v})
}

// ClearCart empties the cart
func (h *Handler) ClearCart(c *gin.Context) {
	var v cartView
	h.Carts.With(h.cartSession(c), func(ct *cart.Cart) {
		ct.Clear()
		v = viewOf(ct)
	})
	c.JSON(http.StatusOK, gin.H{"cart": v})
}

// WaiterSummary returns the list a visitor shows the waiter
func (h *Handler) WaiterSummary(c *gin.Context) {
	var s cart.Summary
	h.Carts.With(h.cartSession(c), func(ct *cart.Cart) { s = ct.WaiterSummary() })
	c.JSON(http.StatusOK, gin.H{"summary": s})
}

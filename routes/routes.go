package routes

import (
	"restaurant-site/handlers"
	"restaurant-site/middleware"
	"restaurant-site/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/login", h.Login)

		// Site content
		public.GET("/site", h.Site)
		public.GET("/widgets", h.Widgets)
		public.GET("/menu", h.ListMenu)
		public.GET("/menu/popular", h.PopularMenu)
		public.GET("/categories", h.ListCategories)
		public.GET("/gallery", h.Gallery)
		public.GET("/testimonials", h.Testimonials)
		public.GET("/testimonials/stream", h.TestimonialStream)

		// AI waiter
		public.POST("/assistant/chat", h.Chat)

		// Session cart (cookie-keyed, never persisted)
		public.GET("/cart", h.GetCart)
		public.POST("/cart/items", h.AddToCart)
		public.PATCH("/cart/items/:id", h.UpdateCartItem)
		public.DELETE("/cart/items/:id", h.RemoveCartItem)
		public.DELETE("/cart", h.ClearCart)
		public.GET("/cart/waiter", h.WaiterSummary)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(h.JWT.AuthRequired(), h.ActiveAdmin())
	{
		admin.GET("/auth/me", h.Me)

		// Menu & categories
		admin.POST("/admin/menu", h.CreateMenuItem)
		admin.PUT("/admin/menu/:id", h.UpdateMenuItem)
		admin.DELETE("/admin/menu/:id", h.DeleteMenuItem)
		admin.POST("/admin/categories", h.CreateCategory)
		admin.PUT("/admin/categories/:id", h.UpdateCategory)
		admin.DELETE("/admin/categories/:id", h.DeleteCategory)

		// Settings & gallery
		admin.GET("/admin/settings", h.GetSettings)
		admin.PUT("/admin/settings", h.UpdateSettings)
		admin.POST("/admin/gallery", h.AddGalleryImage)
		admin.DELETE("/admin/gallery/:index", h.RemoveGalleryImage)
		admin.PUT("/admin/gallery/layout", h.SetGalleryLayout)

		// Testimonials
		admin.GET("/admin/testimonials", h.ListAllTestimonials)
		admin.POST("/admin/testimonials", h.CreateTestimonial)
		admin.POST("/admin/testimonials/import", h.ImportTestimonials)
		admin.PUT("/admin/testimonials/:id", h.UpdateTestimonial)
		admin.PATCH("/admin/testimonials/:id/visibility", h.ToggleTestimonial)
		admin.DELETE("/admin/testimonials/:id", h.DeleteTestimonial)

		// Images
		admin.POST("/admin/media", h.UploadImage)
	}

	// ── Account management (super admins only) ─────────────────────
	accounts := r.Group("/api/admin/admins")
	accounts.Use(h.JWT.AuthRequired(), h.ActiveAdmin(), middleware.RoleRequired(models.RoleSuper))
	{
		accounts.GET("", h.ListAdmins)
		accounts.POST("", h.CreateAdmin)
		accounts.DELETE("/:id", h.DeleteAdmin)
	}
}

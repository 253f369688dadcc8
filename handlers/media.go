package handlers

import (
	"errors"
	"log"
	"net/http"

	"restaurant-site/media"

	"github.com/gin-gonic/gin"
)

// UploadImage stores the multipart "file" and returns its URI
func (h *Handler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Multipart field \"file\" is required"})
		return
	}
	if h.MaxUpload > 0 && fh.Size > h.MaxUpload {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": media.ErrTooLarge.Error()})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read upload"})
		return
	}
	defer f.Close()

	url, err := h.Media.Ingest(c.Request.Context(), fh.Filename, f)
	switch {
	case errors.Is(err, media.ErrTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	case errors.Is(err, media.ErrNotImage), errors.Is(err, media.ErrEmpty):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		log.Printf("❌ image upload: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upload failed"})
	default:
		c.JSON(http.StatusCreated, gin.H{"url": url})
	}
}

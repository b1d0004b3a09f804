package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"connected/pkg/media"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	cloud media.Client
}

func NewUploadHandler(cloud media.Client) *UploadHandler {
	return &UploadHandler{cloud: cloud}
}

// UploadEventImage uploads an event cover image and returns its URL, for use
// in the add-event form's image field. When no media backend is configured
// the endpoint degrades gracefully and the form keeps accepting plain URLs.
func (h *UploadHandler) UploadEventImage(c *gin.Context) {
	if h.cloud == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "media uploads not configured"})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	publicID := "event_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	url, err := h.cloud.UploadImage(c.Request.Context(), f, "Connected/events", publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

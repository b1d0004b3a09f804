package handler

import (
	"net/http"

	"connected/internal/service"

	"github.com/gin-gonic/gin"
)

type FilterHandler struct {
	app *service.App
}

func NewFilterHandler(app *service.App) *FilterHandler {
	return &FilterHandler{app: app}
}

// Get returns the active center/radius pair.
func (h *FilterHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.Filter())
}

// SetCenter moves the filter center directly (the non-gesture path, e.g. a
// search box). Map, list and calendar are re-rendered before the response.
func (h *FilterHandler) SetCenter(c *gin.Context) {
	var req struct {
		Lat *float64 `json:"lat" binding:"required,gte=-90,lte=90"`
		Lon *float64 `json:"lon" binding:"required,gte=-180,lte=180"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.app.SetCenter(*req.Lat, *req.Lon))
}

// ApplyRadius reads the radius input against the unchanged current center.
// The input arrives as raw text; blank or non-numeric falls back to the
// default radius rather than filtering everything out.
func (h *FilterHandler) ApplyRadius(c *gin.Context) {
	var req struct {
		Radius string `json:"radius"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.app.ApplyRadius(req.Radius))
}

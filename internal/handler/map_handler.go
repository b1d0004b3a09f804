package handler

import (
	"net/http"

	"connected/internal/render"
	"connected/internal/service"

	"github.com/gin-gonic/gin"
)

// MapHandler feeds pointer and zoom gestures into the map interaction
// controller. Zoom buttons post to their own endpoints and are never relayed
// as pointer events, so pressing them cannot move the filter center.
type MapHandler struct {
	app *service.App
}

func NewMapHandler(app *service.App) *MapHandler {
	return &MapHandler{app: app}
}

// Pointer dispatches one pointer phase. Down anchors a drag, move pans the
// map surface only, and up ends the drag. An up with no net movement is a
// click and recenters the filter.
func (h *MapHandler) Pointer(c *gin.Context) {
	var req struct {
		Phase string   `json:"phase" binding:"required,oneof=down move up"`
		X     *float64 `json:"x" binding:"required"`
		Y     *float64 `json:"y" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	switch req.Phase {
	case "down":
		h.app.PointerDown(*req.X, *req.Y)
	case "move":
		h.app.PointerMove(*req.X, *req.Y)
	case "up":
		h.app.PointerUp(*req.X, *req.Y)
	}
	c.JSON(http.StatusOK, gin.H{"cursor": h.app.Cursor(), "filter": h.app.Filter()})
}

// Zoom applies one zoom step, clamped to the configured scale bounds.
func (h *MapHandler) Zoom(c *gin.Context) {
	var req struct {
		Direction string `json:"direction" binding:"required,oneof=in out"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var snap render.MapSnapshot
	if req.Direction == "in" {
		snap = h.app.ZoomIn()
	} else {
		snap = h.app.ZoomOut()
	}
	c.JSON(http.StatusOK, snap)
}

// Reset restores the identity transform; the client calls it whenever the
// map view is (re)initialised.
func (h *MapHandler) Reset(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.ResetMap())
}

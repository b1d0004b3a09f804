package handler

import (
	"net/http"
	"strconv"

	"connected/internal/models"
	"connected/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	app *service.App
}

func NewEventHandler(app *service.App) *EventHandler {
	return &EventHandler{app: app}
}

// List returns the full store in insertion order.
func (h *EventHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"events": h.app.Events()})
}

// Detail surfaces one event's full detail view, looked up by id against the
// full store so calendar clicks resolve even outside the current subset.
func (h *EventHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}
	detail, ok := h.app.Detail(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Create handles the add-event form. A rejected submission reports the
// validation failure and leaves the store unchanged.
func (h *EventHandler) Create(c *gin.Context) {
	var in models.EventInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ev, err := h.app.AddEvent(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"event": ev})
}

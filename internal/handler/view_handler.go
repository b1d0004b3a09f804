package handler

import (
	"net/http"

	"connected/internal/domain"
	"connected/internal/service"
	"connected/internal/ws"

	"github.com/gin-gonic/gin"
)

// ViewHandler serves the latest snapshot of each view. Hidden views fetch on
// switch and always see the current state (lazy-consistent, never stale).
type ViewHandler struct {
	app *service.App
}

func NewViewHandler(app *service.App) *ViewHandler {
	return &ViewHandler{app: app}
}

func (h *ViewHandler) Get(c *gin.Context) {
	sync := h.app.Sync()
	switch c.Param("view") {
	case domain.ViewMap:
		c.JSON(http.StatusOK, sync.MapSnapshot())
	case domain.ViewCalendar:
		c.JSON(http.StatusOK, sync.CalendarSnapshot())
	case domain.ViewList:
		c.JSON(http.StatusOK, sync.ListSnapshot())
	case domain.ViewProfile:
		c.JSON(http.StatusOK, sync.ProfileSnapshot())
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown view"})
	}
}

// InitialSnapshots builds the messages sent to each new view subscriber. All
// four views come from one consistent read so the replay can never mix the
// map from one refresh with the list from another.
func (h *ViewHandler) InitialSnapshots() []ws.ViewMessage {
	mapSnap, calSnap, listSnap, profileSnap := h.app.Sync().Snapshots()
	return []ws.ViewMessage{
		{Type: "view", View: domain.ViewMap, Data: mapSnap},
		{Type: "view", View: domain.ViewCalendar, Data: calSnap},
		{Type: "view", View: domain.ViewList, Data: listSnap},
		{Type: "view", View: domain.ViewProfile, Data: profileSnap},
	}
}

package render

import (
	"time"

	"connected/internal/models"
)

// Detail is the modal-like detail surface for one event: same payload whether
// it was opened from a map marker, a calendar entry or a list card.
type Detail struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	City        string   `json:"city"`
	Description string   `json:"description"`
	Reels       []string `json:"reels"`
}

// NewDetail builds the detail view, substituting the shared default reel set
// when the event has none of its own.
func NewDetail(ev models.Event, defaultReels []string) Detail {
	reels := ev.Reels
	if len(reels) == 0 {
		reels = defaultReels
	}
	return Detail{
		ID:          ev.ID,
		Title:       ev.Title,
		Date:        FormatDate(ev.Date),
		City:        ev.City,
		Description: ev.Description,
		Reels:       append([]string(nil), reels...),
	}
}

// FormatDate renders a stored date for display. Unparseable dates are shown
// raw rather than erased.
func FormatDate(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006 3:04 PM")
}

package render

import (
	"fmt"
	"strconv"
	"time"

	"connected/internal/models"
)

// CalendarEntry mirrors what the calendar widget needs: a stable id key, the
// start time, and enough auxiliary data for its click popup. Detail clicks
// resolve the id against the full store, not the subset.
type CalendarEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Start       string `json:"start"`
	Description string `json:"description"`
	City        string `json:"city"`
}

type CalendarSnapshot struct {
	Entries []CalendarEntry `json:"entries"`
	// Degraded is set when the calendar could not be built; the other views
	// keep working and the client shows a placeholder instead of a grid.
	Degraded bool `json:"degraded,omitempty"`
}

type CalendarRenderer struct{}

func NewCalendarRenderer() *CalendarRenderer {
	return &CalendarRenderer{}
}

// Render replaces all prior entries with one entry per event in the subset.
// An event whose date does not parse poisons the whole grid, so it is
// reported as an error and the synchronizer degrades the view.
func (r *CalendarRenderer) Render(subset []models.Event) (CalendarSnapshot, error) {
	snap := CalendarSnapshot{Entries: make([]CalendarEntry, 0, len(subset))}
	for _, ev := range subset {
		if _, err := time.Parse(models.DateLayout, ev.Date); err != nil {
			return CalendarSnapshot{Degraded: true}, fmt.Errorf("calendar entry %d: bad date %q: %w", ev.ID, ev.Date, err)
		}
		snap.Entries = append(snap.Entries, CalendarEntry{
			ID:          strconv.FormatInt(ev.ID, 10),
			Title:       ev.Title,
			Start:       ev.Date,
			Description: ev.Description,
			City:        ev.City,
		})
	}
	return snap, nil
}

package render

import "connected/internal/models"

// ListCard is one clickable card in the list view.
type ListCard struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Meta        string `json:"meta"` // "formatted date • city"
	Description string `json:"description"`
	Image       string `json:"image"`
}

type ListSnapshot struct {
	Cards []ListCard `json:"cards"`
	// Placeholder is set instead of a blank area when the subset is empty.
	Placeholder string `json:"placeholder,omitempty"`
}

type ListRenderer struct {
	defaultImage string
}

func NewListRenderer(defaultImage string) *ListRenderer {
	return &ListRenderer{defaultImage: defaultImage}
}

func (r *ListRenderer) Render(subset []models.Event) ListSnapshot {
	if len(subset) == 0 {
		return ListSnapshot{Cards: []ListCard{}, Placeholder: "No events found in this area."}
	}
	snap := ListSnapshot{Cards: make([]ListCard, 0, len(subset))}
	for _, ev := range subset {
		image := ev.Image
		if image == "" {
			image = r.defaultImage
		}
		snap.Cards = append(snap.Cards, ListCard{
			ID:          ev.ID,
			Title:       ev.Title,
			Meta:        FormatDate(ev.Date) + " • " + ev.City,
			Description: ev.Description,
			Image:       image,
		})
	}
	return snap
}

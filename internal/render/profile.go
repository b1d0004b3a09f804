package render

import "connected/internal/models"

// ProfileCard is one card in the profile view. Profile cards carry no detail
// wiring, matching the modeled behaviour.
type ProfileCard struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Meta  string `json:"meta"`
	Image string `json:"image"`
}

type ProfileSnapshot struct {
	Cards       []ProfileCard `json:"cards"`
	Reels       []string      `json:"reels"`
	Placeholder string        `json:"placeholder,omitempty"`
}

// ProfileRenderer shows every event attributed to the local identity,
// independent of the radius filter.
type ProfileRenderer struct {
	creator      string
	defaultImage string
	defaultReels []string
}

func NewProfileRenderer(creator, defaultImage string, defaultReels []string) *ProfileRenderer {
	return &ProfileRenderer{creator: creator, defaultImage: defaultImage, defaultReels: defaultReels}
}

func (r *ProfileRenderer) Render(all []models.Event) ProfileSnapshot {
	snap := ProfileSnapshot{
		Cards: []ProfileCard{},
		Reels: append([]string(nil), r.defaultReels...),
	}
	for _, ev := range all {
		if ev.Creator != r.creator {
			continue
		}
		image := ev.Image
		if image == "" {
			image = r.defaultImage
		}
		snap.Cards = append(snap.Cards, ProfileCard{
			ID:    ev.ID,
			Title: ev.Title,
			Meta:  FormatDate(ev.Date) + " • " + ev.City,
			Image: image,
		})
	}
	if len(snap.Cards) == 0 {
		snap.Placeholder = "You haven't created any events yet."
	}
	return snap
}

// Package render turns the event store and filter state into view snapshots.
// Every renderer is a pure function over its inputs so the synchronizer can
// rebuild any view at any time and always get the same answer for the same
// state.
package render

import (
	"connected/internal/models"
	"connected/pkg/geo"
	"connected/pkg/projection"
)

// MapMarker is one event pin at its projected and transformed screen
// position. ID is enough for the client to request the full detail view.
type MapMarker struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	City  string  `json:"city"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// MapSnapshot is the complete drawable state of the map surface: one marker
// per in-range event, the filter center marker and the radius ring.
type MapSnapshot struct {
	Markers   []MapMarker          `json:"markers"`
	CenterX   float64              `json:"center_x"`
	CenterY   float64              `json:"center_y"`
	RadiusPx  float64              `json:"radius_px"`
	Transform projection.Transform `json:"transform"`
}

type MapRenderer struct {
	canvas projection.Canvas
}

func NewMapRenderer(canvas projection.Canvas) *MapRenderer {
	return &MapRenderer{canvas: canvas}
}

// Render clears and redraws the marker set for the subset. Prior markers
// never survive: the snapshot is rebuilt from scratch on every call.
func (r *MapRenderer) Render(subset []models.Event, filter models.FilterState, tr projection.Transform) MapSnapshot {
	snap := MapSnapshot{
		Markers:   make([]MapMarker, 0, len(subset)),
		Transform: tr,
	}
	for _, ev := range subset {
		x, y := r.canvas.ToPixel(ev.Lat, ev.Lon)
		sx, sy := tr.Apply(x, y)
		snap.Markers = append(snap.Markers, MapMarker{
			ID:    ev.ID,
			Title: ev.Title,
			City:  ev.City,
			X:     sx,
			Y:     sy,
		})
	}
	cx, cy := r.canvas.ToPixel(filter.Lat, filter.Lon)
	snap.CenterX, snap.CenterY = tr.Apply(cx, cy)
	// Ring size approximates the radius as degrees of latitude on the flat map.
	radiusDeg := filter.RadiusMiles / geo.MilesPerDegreeLat
	snap.RadiusPx = radiusDeg / 180 * r.canvas.Height * tr.Scale
	return snap
}

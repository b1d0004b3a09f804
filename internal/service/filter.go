package service

import (
	"strconv"
	"strings"

	"connected/internal/models"
	"connected/pkg/geo"
)

// FilterByRadius returns the events within radiusMiles of the center,
// preserving the relative order of the input. A radius of zero keeps only
// exact-coincident points.
func FilterByRadius(events []models.Event, centerLat, centerLon, radiusMiles float64) []models.Event {
	subset := make([]models.Event, 0, len(events))
	for _, ev := range events {
		if geo.DistanceMiles(centerLat, centerLon, ev.Lat, ev.Lon) <= radiusMiles {
			subset = append(subset, ev)
		}
	}
	return subset
}

// ParseRadius reads the radius input. Blank, non-numeric or negative input
// falls back to the default; an explicit 0 is kept as 0.
func ParseRadius(input string, fallback float64) float64 {
	input = strings.TrimSpace(input)
	if input == "" {
		return fallback
	}
	r, err := strconv.ParseFloat(input, 64)
	if err != nil || r < 0 {
		return fallback
	}
	return r
}

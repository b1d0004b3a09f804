package service

import (
	"testing"

	"connected/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	columbiaLat = 38.9517
	columbiaLon = -92.3341
)

func TestFilterByRadiusSeedCompleteness(t *testing.T) {
	// The seed set holds 6 worldwide events and 3 at the default center;
	// a 100 mile radius around Columbia keeps exactly the near three.
	subset := FilterByRadius(repository.SeedEvents(), columbiaLat, columbiaLon, 100)
	require.Len(t, subset, 3)
	ids := []int64{subset[0].ID, subset[1].ID, subset[2].ID}
	assert.Equal(t, []int64{7, 8, 9}, ids)
}

func TestFilterByRadiusPreservesOrder(t *testing.T) {
	subset := FilterByRadius(repository.SeedEvents(), 45, 0, 25000)
	prev := int64(0)
	for _, ev := range subset {
		assert.Greater(t, ev.ID, prev, "relative order must be preserved")
		prev = ev.ID
	}
}

func TestFilterByRadiusMonotonic(t *testing.T) {
	events := repository.SeedEvents()
	radii := []float64{0, 50, 100, 500, 2000, 5000, 15000}
	var prevIDs map[int64]bool
	for _, r := range radii {
		subset := FilterByRadius(events, columbiaLat, columbiaLon, r)
		ids := make(map[int64]bool, len(subset))
		for _, ev := range subset {
			ids[ev.ID] = true
		}
		for id := range prevIDs {
			assert.True(t, ids[id], "radius %v lost event %d present at a smaller radius", r, id)
		}
		prevIDs = ids
	}
}

func TestFilterByRadiusZeroKeepsCoincidentOnly(t *testing.T) {
	subset := FilterByRadius(repository.SeedEvents(), columbiaLat, columbiaLon, 0)
	require.Len(t, subset, 3, "the three Columbia events sit exactly at the center")
	for _, ev := range subset {
		assert.Equal(t, columbiaLat, ev.Lat)
		assert.Equal(t, columbiaLon, ev.Lon)
	}

	subset = FilterByRadius(repository.SeedEvents(), 0, 0, 0)
	assert.Empty(t, subset)
}

func TestParseRadius(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"blank", "", 100},
		{"whitespace", "   ", 100},
		{"non-numeric", "abc", 100},
		{"negative", "-5", 100},
		{"valid", "250", 250},
		{"valid decimal", "12.5", 12.5},
		{"explicit zero stays zero", "0", 0},
		{"padded", " 42 ", 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRadius(tt.input, 100))
		})
	}
}

package models

// Event is one location-and-time-tagged happening. Events are stored as a
// single JSON array snapshot, so the struct carries json tags only.
// Dates are local ISO-8601 date-times without timezone, e.g. "2026-06-15T18:00".
type Event struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lon"`
	City        string   `json:"city"`
	Image       string   `json:"image"`
	Privacy     string   `json:"privacy"`
	Creator     string   `json:"creator"`
	Reels       []string `json:"reels,omitempty"`
}

// DateLayout is the layout events are entered and stored with.
const DateLayout = "2006-01-02T15:04"

// EventInput is the add-event form payload. Image is the only optional field;
// latitude/longitude are validated against their legal ranges and the date
// must parse with DateLayout (checked separately, validator tags cannot).
type EventInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Date        string   `json:"date" validate:"required"`
	Lat         *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lon         *float64 `json:"lon" validate:"required,gte=-180,lte=180"`
	City        string   `json:"city" validate:"required"`
	Image       string   `json:"image" validate:"omitempty,url"`
	Privacy     string   `json:"privacy" validate:"required,oneof=public friends private"`
}

package models

// FilterState is the single active center/radius pair all radius-filtered
// views derive from. Not persisted; reset to the configured defaults on start.
type FilterState struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	RadiusMiles float64 `json:"radius_miles"`
}

// Package projection maps geographic coordinates onto a flat equirectangular
// world canvas and back. The canvas is a fixed logical pixel space; zoom and
// pan are applied on top of it as an affine view transform.
package projection

// Canvas is the logical pixel space of the world map surface.
type Canvas struct {
	Width  float64
	Height float64
}

// ToPixel converts lat/lon (degrees) to canvas pixel coordinates.
func (c Canvas) ToPixel(lat, lon float64) (x, y float64) {
	x = (lon + 180) / 360 * c.Width
	y = (90 - lat) / 180 * c.Height
	return x, y
}

// ToLatLon is the exact inverse of ToPixel.
func (c Canvas) ToLatLon(x, y float64) (lat, lon float64) {
	lon = x/c.Width*360 - 180
	lat = 90 - y/c.Height*180
	return lat, lon
}

// Transform is the presentational zoom/pan state of the map surface. It never
// affects which events are in filter range, only where pixels land.
type Transform struct {
	Scale      float64 `json:"scale"`
	TranslateX float64 `json:"translate_x"`
	TranslateY float64 `json:"translate_y"`
}

// Identity returns the reset transform used whenever the map view is
// (re)initialised.
func Identity() Transform {
	return Transform{Scale: 1}
}

// Apply maps canvas pixels to screen pixels under the transform.
func (t Transform) Apply(x, y float64) (sx, sy float64) {
	return x*t.Scale + t.TranslateX, y*t.Scale + t.TranslateY
}

// Invert maps raw pointer screen pixels back to canvas pixels: translation is
// subtracted before dividing by scale, mirroring Apply.
func (t Transform) Invert(sx, sy float64) (x, y float64) {
	s := t.Scale
	if s == 0 {
		s = 1
	}
	return (sx - t.TranslateX) / s, (sy - t.TranslateY) / s
}

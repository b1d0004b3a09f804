package service

import (
	"connected/config"
	"connected/pkg/projection"
)

type dragState int

const (
	stateIdle dragState = iota
	stateDragging
)

// MapController translates pointer gestures into filter-center changes and
// view-transform updates. Zoom controls arrive as their own message types, so
// a zoom click can never be mistaken for a map click and move the center.
//
// Not goroutine-safe on its own; the app state lock serializes gestures the
// way a browser UI thread would.
type MapController struct {
	cfg    config.MapConfig
	canvas projection.Canvas

	tr      projection.Transform
	state   dragState
	lastX   float64
	lastY   float64
	moved   bool
	pointer string // cursor affordance: "grab" or "grabbing"
}

func NewMapController(cfg config.MapConfig) *MapController {
	return &MapController{
		cfg:     cfg,
		canvas:  projection.Canvas{Width: cfg.CanvasWidth, Height: cfg.CanvasHeight},
		tr:      projection.Identity(),
		pointer: "grab",
	}
}

// Reset restores the identity transform; called whenever the map view is
// (re)initialised.
func (m *MapController) Reset() {
	m.tr = projection.Identity()
	m.state = stateIdle
	m.moved = false
	m.pointer = "grab"
}

func (m *MapController) Transform() projection.Transform { return m.tr }
func (m *MapController) Cursor() string                  { return m.pointer }

// PointerDown anchors a potential drag.
func (m *MapController) PointerDown(x, y float64) {
	if m.state != stateIdle {
		return
	}
	m.state = stateDragging
	m.lastX, m.lastY = x, y
	m.moved = false
	m.pointer = "grabbing"
}

// PointerMove accumulates the pixel delta since the last position into the
// translation. Returns true when the transform changed, which re-renders the
// map surface only.
func (m *MapController) PointerMove(x, y float64) bool {
	if m.state != stateDragging {
		return false
	}
	dx, dy := x-m.lastX, y-m.lastY
	if dx == 0 && dy == 0 {
		return false
	}
	m.tr.TranslateX += dx
	m.tr.TranslateY += dy
	m.lastX, m.lastY = x, y
	m.moved = true
	return true
}

// PointerUp ends a drag. A release with no net movement is a plain click: the
// raw position is de-transformed and invert-projected into the new filter
// center.
func (m *MapController) PointerUp(x, y float64) (lat, lon float64, clicked bool) {
	if m.state != stateDragging {
		return 0, 0, false
	}
	m.state = stateIdle
	m.pointer = "grab"
	if m.moved {
		return 0, 0, false
	}
	cx, cy := m.tr.Invert(x, y)
	lat, lon = m.canvas.ToLatLon(cx, cy)
	// A click landing off the canvas (possible when zoomed out) de-projects
	// beyond the legal ranges; clamp so the center stays a valid coordinate.
	lat = clamp(lat, -90, 90)
	lon = clamp(lon, -180, 180)
	return lat, lon, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ZoomIn multiplies the scale by the configured factor, clamped to bounds.
func (m *MapController) ZoomIn() {
	m.setScale(m.tr.Scale * m.cfg.ZoomFactor)
}

// ZoomOut divides the scale by the configured factor, clamped to bounds.
func (m *MapController) ZoomOut() {
	m.setScale(m.tr.Scale / m.cfg.ZoomFactor)
}

func (m *MapController) setScale(s float64) {
	if s < m.cfg.MinScale {
		s = m.cfg.MinScale
	}
	if s > m.cfg.MaxScale {
		s = m.cfg.MaxScale
	}
	m.tr.Scale = s
}

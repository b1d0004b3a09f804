package service

import (
	"log"
	"sync"

	"connected/internal/domain"
	"connected/internal/metrics"
	"connected/internal/models"
	"connected/internal/render"
	"connected/pkg/projection"
)

// ViewBroadcaster pushes fresh snapshots to connected view subscribers.
type ViewBroadcaster interface {
	BroadcastView(view string, snapshot interface{})
}

// Synchronizer is the single re-render fan-out point. Every mutation of the
// store or the filter state goes through exactly one of its Refresh methods,
// so no view can ever be rebuilt from a different subset than its siblings.
//
// Refresh calls are serialized by the app state lock, but snapshots are read
// by concurrent request and websocket goroutines, so the cached fields carry
// their own read-write lock.
type Synchronizer struct {
	mapR     *render.MapRenderer
	calR     *render.CalendarRenderer
	listR    *render.ListRenderer
	profileR *render.ProfileRenderer

	hub ViewBroadcaster

	mu          sync.RWMutex
	mapSnap     render.MapSnapshot
	calSnap     render.CalendarSnapshot
	listSnap    render.ListSnapshot
	profileSnap render.ProfileSnapshot
}

func NewSynchronizer(mapR *render.MapRenderer, calR *render.CalendarRenderer, listR *render.ListRenderer, profileR *render.ProfileRenderer, hub ViewBroadcaster) *Synchronizer {
	return &Synchronizer{mapR: mapR, calR: calR, listR: listR, profileR: profileR, hub: hub}
}

// RefreshFiltered rebuilds the three radius-filtered views (map, calendar,
// list) from the same subset at the same logical moment.
func (s *Synchronizer) RefreshFiltered(subset []models.Event, filter models.FilterState, tr projection.Transform) {
	mapSnap := s.mapR.Render(subset, filter, tr)
	metrics.ViewRenders.WithLabelValues(domain.ViewMap).Inc()

	calSnap, err := s.calR.Render(subset)
	if err != nil {
		// Calendar failures degrade the calendar only; map and list stay live.
		log.Printf("calendar render failed: %v", err)
	}
	metrics.ViewRenders.WithLabelValues(domain.ViewCalendar).Inc()

	listSnap := s.listR.Render(subset)
	metrics.ViewRenders.WithLabelValues(domain.ViewList).Inc()

	// All three land in one critical section so a concurrent reader can
	// never see the map from one subset and the list from another.
	s.mu.Lock()
	s.mapSnap, s.calSnap, s.listSnap = mapSnap, calSnap, listSnap
	s.mu.Unlock()

	if s.hub != nil {
		s.hub.BroadcastView(domain.ViewMap, mapSnap)
		s.hub.BroadcastView(domain.ViewCalendar, calSnap)
		s.hub.BroadcastView(domain.ViewList, listSnap)
	}
}

// RefreshMap rebuilds the map surface only, for transform-only changes
// (drag-pan, zoom) that leave the filtered subset untouched. The fresh
// snapshot is returned so gesture responses can carry the exact state they
// produced rather than re-reading a field another writer may have advanced.
func (s *Synchronizer) RefreshMap(subset []models.Event, filter models.FilterState, tr projection.Transform) render.MapSnapshot {
	mapSnap := s.mapR.Render(subset, filter, tr)
	metrics.ViewRenders.WithLabelValues(domain.ViewMap).Inc()
	s.mu.Lock()
	s.mapSnap = mapSnap
	s.mu.Unlock()
	if s.hub != nil {
		s.hub.BroadcastView(domain.ViewMap, mapSnap)
	}
	return mapSnap
}

// RefreshProfile rebuilds the creator-filtered profile view from the full
// store; it is independent of the radius filter.
func (s *Synchronizer) RefreshProfile(all []models.Event) {
	profileSnap := s.profileR.Render(all)
	metrics.ViewRenders.WithLabelValues(domain.ViewProfile).Inc()
	s.mu.Lock()
	s.profileSnap = profileSnap
	s.mu.Unlock()
	if s.hub != nil {
		s.hub.BroadcastView(domain.ViewProfile, profileSnap)
	}
}

func (s *Synchronizer) MapSnapshot() render.MapSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mapSnap
}

func (s *Synchronizer) CalendarSnapshot() render.CalendarSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calSnap
}

func (s *Synchronizer) ListSnapshot() render.ListSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listSnap
}

func (s *Synchronizer) ProfileSnapshot() render.ProfileSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profileSnap
}

// Snapshots returns all four views from one consistent read, for subscribers
// that replay the whole state on connect.
func (s *Synchronizer) Snapshots() (render.MapSnapshot, render.CalendarSnapshot, render.ListSnapshot, render.ProfileSnapshot) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mapSnap, s.calSnap, s.listSnap, s.profileSnap
}

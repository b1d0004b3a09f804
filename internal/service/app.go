package service

import (
	"fmt"
	"sync"
	"time"

	"connected/config"
	"connected/internal/metrics"
	"connected/internal/models"
	"connected/internal/render"
	"connected/internal/repository"

	"github.com/go-playground/validator/v10"
)

// App owns all mutable application state: the event store, the filter state
// and the map view transform. One mutex gives every gesture handler a
// run-to-completion guarantee, so no view can observe a half-applied mutation.
type App struct {
	mu sync.Mutex

	cfg      *config.Config
	repo     *repository.EventRepository
	filter   models.FilterState
	mapctl   *MapController
	sync     *Synchronizer
	validate *validator.Validate
}

func NewApp(cfg *config.Config, repo *repository.EventRepository, sync *Synchronizer) *App {
	return &App{
		cfg:    cfg,
		repo:   repo,
		mapctl: NewMapController(cfg.Map),
		sync:   sync,
		filter: models.FilterState{
			Lat:         cfg.Filter.DefaultLat,
			Lon:         cfg.Filter.DefaultLon,
			RadiusMiles: cfg.Filter.DefaultRadius,
		},
		validate: validator.New(),
	}
}

// Init loads the store (seed fallback included) and renders every view once.
func (a *App) Init() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.repo.Load()
	a.mapctl.Reset()
	a.refreshFiltered()
	a.sync.RefreshProfile(a.repo.All())
}

// SetCenter moves the filter center and re-renders map, list and calendar
// against the unchanged radius.
func (a *App) SetCenter(lat, lon float64) models.FilterState {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.setCenter(lat, lon)
	return a.filter
}

// ApplyRadius reads the radius input against the unchanged current center.
// Blank or non-numeric input falls back to the default radius, never to zero.
func (a *App) ApplyRadius(input string) models.FilterState {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.filter.RadiusMiles = ParseRadius(input, a.cfg.Filter.DefaultRadius)
	metrics.FilterOps.WithLabelValues("radius").Inc()
	a.refreshFiltered()
	return a.filter
}

// Filter returns the active center/radius pair.
func (a *App) Filter() models.FilterState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.filter
}

// AddEvent validates the form input and appends a new event. A rejected
// submission leaves the store untouched; an accepted one persists immediately
// and re-renders every view, profile included.
func (a *App) AddEvent(in models.EventInput) (models.Event, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.validate.Struct(in); err != nil {
		metrics.EventsRejected.Inc()
		return models.Event{}, fmt.Errorf("invalid event: %w", err)
	}
	if _, err := time.Parse(models.DateLayout, in.Date); err != nil {
		metrics.EventsRejected.Inc()
		return models.Event{}, fmt.Errorf("invalid event date %q: %w", in.Date, err)
	}

	image := in.Image
	if image == "" {
		image = a.cfg.Profile.DefaultImage
	}
	ev := models.Event{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Lat:         *in.Lat,
		Lon:         *in.Lon,
		City:        in.City,
		Image:       image,
		Privacy:     in.Privacy,
		Creator:     a.cfg.Profile.Creator,
	}
	ev, err := a.repo.Append(ev)
	if err != nil {
		return models.Event{}, fmt.Errorf("append event: %w", err)
	}
	metrics.EventsCreated.Inc()
	a.refreshFiltered()
	a.sync.RefreshProfile(a.repo.All())
	return ev, nil
}

// Events returns the full store in insertion order.
func (a *App) Events() []models.Event {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.repo.All()
}

// Detail resolves an event id against the full store and builds its detail
// view, falling back to the shared default reels.
func (a *App) Detail(id int64) (render.Detail, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	ev, ok := a.repo.GetByID(id)
	if !ok {
		return render.Detail{}, false
	}
	return render.NewDetail(*ev, a.cfg.Profile.DefaultReels), true
}

// PointerDown, PointerMove and PointerUp forward pointer gestures to the map
// controller. Moves re-render the map only; a click (release with no net
// movement) becomes a center change and re-renders the filtered views.
func (a *App) PointerDown(x, y float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mapctl.PointerDown(x, y)
	metrics.Gestures.WithLabelValues("pointer_down").Inc()
}

func (a *App) PointerMove(x, y float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mapctl.PointerMove(x, y) {
		a.refreshMap()
	}
	metrics.Gestures.WithLabelValues("pointer_move").Inc()
}

func (a *App) PointerUp(x, y float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	metrics.Gestures.WithLabelValues("pointer_up").Inc()
	if lat, lon, clicked := a.mapctl.PointerUp(x, y); clicked {
		a.setCenter(lat, lon)
	}
}

// ZoomIn and ZoomOut change the scale only; the filtered subset is untouched
// and the map alone is re-rendered. The snapshot produced under the lock is
// returned so the response cannot interleave with a concurrent gesture.
func (a *App) ZoomIn() render.MapSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mapctl.ZoomIn()
	metrics.Gestures.WithLabelValues("zoom_in").Inc()
	return a.refreshMap()
}

func (a *App) ZoomOut() render.MapSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mapctl.ZoomOut()
	metrics.Gestures.WithLabelValues("zoom_out").Inc()
	return a.refreshMap()
}

// ResetMap restores the identity transform when the map view is
// (re)initialised, then re-renders the map surface.
func (a *App) ResetMap() render.MapSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mapctl.Reset()
	metrics.Gestures.WithLabelValues("reset").Inc()
	return a.refreshMap()
}

// Cursor reports the current drag affordance ("grab" or "grabbing").
func (a *App) Cursor() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mapctl.Cursor()
}

// Sync exposes the synchronizer for snapshot reads.
func (a *App) Sync() *Synchronizer { return a.sync }

func (a *App) setCenter(lat, lon float64) {
	a.filter.Lat, a.filter.Lon = lat, lon
	metrics.FilterOps.WithLabelValues("center").Inc()
	a.refreshFiltered()
}

func (a *App) refreshFiltered() {
	subset := FilterByRadius(a.repo.All(), a.filter.Lat, a.filter.Lon, a.filter.RadiusMiles)
	a.sync.RefreshFiltered(subset, a.filter, a.mapctl.Transform())
}

func (a *App) refreshMap() render.MapSnapshot {
	subset := FilterByRadius(a.repo.All(), a.filter.Lat, a.filter.Lon, a.filter.RadiusMiles)
	return a.sync.RefreshMap(subset, a.filter, a.mapctl.Transform())
}

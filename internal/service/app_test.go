package service

import (
	"strconv"
	"testing"

	"connected/config"
	"connected/internal/models"
	"connected/internal/render"
	"connected/internal/repository"
	"connected/pkg/projection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, *repository.EventRepository) {
	t.Helper()
	cfg := config.Load()
	kv := repository.NewMemoryKV()
	repo := repository.NewEventRepository(kv, cfg.Storage.SnapshotKey)
	canvas := projection.Canvas{Width: cfg.Map.CanvasWidth, Height: cfg.Map.CanvasHeight}
	sync := NewSynchronizer(
		render.NewMapRenderer(canvas),
		render.NewCalendarRenderer(),
		render.NewListRenderer(cfg.Profile.DefaultImage),
		render.NewProfileRenderer(cfg.Profile.Creator, cfg.Profile.DefaultImage, cfg.Profile.DefaultReels),
		nil,
	)
	app := NewApp(cfg, repo, sync)
	app.Init()
	return app, repo
}

func f64(v float64) *float64 { return &v }

func validInput() models.EventInput {
	return models.EventInput{
		Title:       "Garden Party",
		Description: "An afternoon in the park.",
		Date:        "2026-10-01T14:00",
		Lat:         f64(38.9517),
		Lon:         f64(-92.3341),
		City:        "Columbia",
		Privacy:     "public",
	}
}

// snapshotIDs collects the event ids each radius-filtered view is currently
// showing.
func snapshotIDs(t *testing.T, app *App) (mapIDs, listIDs, calIDs []int64) {
	t.Helper()
	for _, m := range app.Sync().MapSnapshot().Markers {
		mapIDs = append(mapIDs, m.ID)
	}
	for _, c := range app.Sync().ListSnapshot().Cards {
		listIDs = append(listIDs, c.ID)
	}
	for _, e := range app.Sync().CalendarSnapshot().Entries {
		id, err := strconv.ParseInt(e.ID, 10, 64)
		require.NoError(t, err)
		calIDs = append(calIDs, id)
	}
	return mapIDs, listIDs, calIDs
}

func assertViewsConsistent(t *testing.T, app *App) {
	t.Helper()
	mapIDs, listIDs, calIDs := snapshotIDs(t, app)
	assert.Equal(t, mapIDs, listIDs, "map and list must show the same subset")
	assert.Equal(t, mapIDs, calIDs, "map and calendar must show the same subset")
}

func TestInitRendersDefaultSubset(t *testing.T) {
	app, _ := newTestApp(t)
	mapIDs, _, _ := snapshotIDs(t, app)
	assert.Equal(t, []int64{7, 8, 9}, mapIDs)
	assertViewsConsistent(t, app)
}

func TestSetCenterRefreshesAllFilteredViews(t *testing.T) {
	app, _ := newTestApp(t)
	app.SetCenter(51.5074, -0.1278) // London
	mapIDs, _, _ := snapshotIDs(t, app)
	assert.Equal(t, []int64{3}, mapIDs)
	assertViewsConsistent(t, app)
}

func TestApplyRadiusRefreshesAllFilteredViews(t *testing.T) {
	app, _ := newTestApp(t)
	app.ApplyRadius("25000") // everything on Earth
	mapIDs, _, _ := snapshotIDs(t, app)
	assert.Len(t, mapIDs, 9)
	assertViewsConsistent(t, app)

	app.ApplyRadius("") // blank falls back to the 100 mile default
	assert.Equal(t, 100.0, app.Filter().RadiusMiles)
	mapIDs, _, _ = snapshotIDs(t, app)
	assert.Equal(t, []int64{7, 8, 9}, mapIDs)
	assertViewsConsistent(t, app)
}

func TestAddEventRejectsMissingTitle(t *testing.T) {
	app, repo := newTestApp(t)
	before := repo.Len()

	in := validInput()
	in.Title = ""
	_, err := app.AddEvent(in)
	require.Error(t, err)
	assert.Equal(t, before, repo.Len(), "a rejected submission must not mutate the store")
}

func TestAddEventRejectsOutOfRangeCoordinates(t *testing.T) {
	app, repo := newTestApp(t)
	before := repo.Len()

	in := validInput()
	in.Lat = f64(91)
	_, err := app.AddEvent(in)
	require.Error(t, err)

	in = validInput()
	in.Lon = f64(-181)
	_, err = app.AddEvent(in)
	require.Error(t, err)

	assert.Equal(t, before, repo.Len())
}

func TestAddEventRejectsUnparseableDate(t *testing.T) {
	app, repo := newTestApp(t)
	before := repo.Len()

	in := validInput()
	in.Date = "next tuesday"
	_, err := app.AddEvent(in)
	require.Error(t, err)
	assert.Equal(t, before, repo.Len())
}

func TestAddEventAppendsAndRefreshesEveryView(t *testing.T) {
	app, repo := newTestApp(t)
	before := repo.Len()

	ev, err := app.AddEvent(validInput())
	require.NoError(t, err)
	assert.Equal(t, before+1, repo.Len())
	assert.Equal(t, "Jane Doe", ev.Creator, "creator is always the local identity")
	assert.NotZero(t, ev.ID)

	// The new event is at the filter center, so it lands in every view.
	mapIDs, _, _ := snapshotIDs(t, app)
	assert.Contains(t, mapIDs, ev.ID)
	assertViewsConsistent(t, app)

	profile := app.Sync().ProfileSnapshot()
	found := false
	for _, card := range profile.Cards {
		if card.ID == ev.ID {
			found = true
		}
	}
	assert.True(t, found, "profile must show the newly created event")
}

func TestAddEventDefaultsImage(t *testing.T) {
	app, _ := newTestApp(t)
	ev, err := app.AddEvent(validInput())
	require.NoError(t, err)
	assert.Equal(t, config.Load().Profile.DefaultImage, ev.Image)
}

func TestDragRefreshesMapOnly(t *testing.T) {
	app, _ := newTestApp(t)
	listBefore := app.Sync().ListSnapshot()
	calBefore := app.Sync().CalendarSnapshot()
	mapBefore := app.Sync().MapSnapshot()

	app.PointerDown(100, 100)
	app.PointerMove(160, 130)
	app.PointerUp(160, 130)

	assert.NotEqual(t, mapBefore.Transform, app.Sync().MapSnapshot().Transform)
	assert.Equal(t, listBefore, app.Sync().ListSnapshot(), "drag must not touch the list")
	assert.Equal(t, calBefore, app.Sync().CalendarSnapshot(), "drag must not touch the calendar")

	// The filter center survives a drag untouched.
	assert.Equal(t, 38.9517, app.Filter().Lat)
	assert.Equal(t, -92.3341, app.Filter().Lon)
}

func TestMapClickRecentersAndRefreshes(t *testing.T) {
	app, _ := newTestApp(t)
	// Click the canvas center: lat 0, lon 0, nothing within 100 miles.
	app.PointerDown(500, 250)
	app.PointerUp(500, 250)

	f := app.Filter()
	assert.InDelta(t, 0.0, f.Lat, 1e-9)
	assert.InDelta(t, 0.0, f.Lon, 1e-9)

	mapIDs, _, _ := snapshotIDs(t, app)
	assert.Empty(t, mapIDs)
	assert.Equal(t, "No events found in this area.", app.Sync().ListSnapshot().Placeholder)
	assertViewsConsistent(t, app)
}

func TestZoomRefreshesMapOnly(t *testing.T) {
	app, _ := newTestApp(t)
	listBefore := app.Sync().ListSnapshot()

	app.ZoomIn()
	assert.InDelta(t, 1.5, app.Sync().MapSnapshot().Transform.Scale, 1e-9)
	assert.Equal(t, listBefore, app.Sync().ListSnapshot())

	// Zooming never moves the filter center.
	assert.Equal(t, 38.9517, app.Filter().Lat)
}

func TestDetailFallsBackToDefaultReels(t *testing.T) {
	app, _ := newTestApp(t)
	detail, ok := app.Detail(7)
	require.True(t, ok)
	assert.Equal(t, config.Load().Profile.DefaultReels, detail.Reels)
	assert.Equal(t, "Jun 15, 2026 6:00 PM", detail.Date)

	_, ok = app.Detail(424242)
	assert.False(t, ok)
}

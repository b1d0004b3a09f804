package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"connected/config"
	"connected/internal/render"
	"connected/internal/repository"
	"connected/internal/service"
	"connected/pkg/projection"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Load()
	kv := repository.NewMemoryKV()
	repo := repository.NewEventRepository(kv, cfg.Storage.SnapshotKey)
	canvas := projection.Canvas{Width: cfg.Map.CanvasWidth, Height: cfg.Map.CanvasHeight}
	sync := service.NewSynchronizer(
		render.NewMapRenderer(canvas),
		render.NewCalendarRenderer(),
		render.NewListRenderer(cfg.Profile.DefaultImage),
		render.NewProfileRenderer(cfg.Profile.Creator, cfg.Profile.DefaultImage, cfg.Profile.DefaultReels),
		nil,
	)
	app := service.NewApp(cfg, repo, sync)
	app.Init()

	eventHandler := NewEventHandler(app)
	filterHandler := NewFilterHandler(app)
	mapHandler := NewMapHandler(app)
	viewHandler := NewViewHandler(app)

	r := gin.New()
	r.GET("/api/v1/events", eventHandler.List)
	r.POST("/api/v1/events", eventHandler.Create)
	r.GET("/api/v1/events/:id", eventHandler.Detail)
	r.GET("/api/v1/filter", filterHandler.Get)
	r.POST("/api/v1/filter/center", filterHandler.SetCenter)
	r.POST("/api/v1/filter/radius", filterHandler.ApplyRadius)
	r.POST("/api/v1/map/pointer", mapHandler.Pointer)
	r.POST("/api/v1/map/zoom", mapHandler.Zoom)
	r.POST("/api/v1/map/reset", mapHandler.Reset)
	r.GET("/api/v1/views/:view", viewHandler.Get)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func eventCount(t *testing.T, r *gin.Engine) int {
	t.Helper()
	w := doJSON(t, r, http.MethodGet, "/api/v1/events", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Events []json.RawMessage `json:"events"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return len(resp.Events)
}

func TestListEventsServesSeeds(t *testing.T) {
	r := newTestRouter(t)
	assert.Equal(t, 9, eventCount(t, r))
}

func TestCreateEventRejectsEmptyTitle(t *testing.T) {
	r := newTestRouter(t)
	body := `{"title":"","description":"d","date":"2026-10-01T14:00","lat":38.9517,"lon":-92.3341,"city":"Columbia","privacy":"public"}`
	w := doJSON(t, r, http.MethodPost, "/api/v1/events", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 9, eventCount(t, r), "a rejected submission must not grow the store")
}

func TestCreateEventSucceeds(t *testing.T) {
	r := newTestRouter(t)
	body := `{"title":"Garden Party","description":"An afternoon in the park.","date":"2026-10-01T14:00","lat":38.9517,"lon":-92.3341,"city":"Columbia","privacy":"public"}`
	w := doJSON(t, r, http.MethodPost, "/api/v1/events", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Event struct {
			ID      int64  `json:"id"`
			Creator string `json:"creator"`
		} `json:"event"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotZero(t, resp.Event.ID)
	assert.Equal(t, "Jane Doe", resp.Event.Creator)
	assert.Equal(t, 10, eventCount(t, r))
}

func TestEventDetail(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/v1/events/7", "")
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		Title string   `json:"title"`
		Reels []string `json:"reels"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "Downtown Block Party", detail.Title)
	assert.NotEmpty(t, detail.Reels, "detail must fall back to the default reel set")

	w = doJSON(t, r, http.MethodGet, "/api/v1/events/999999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/events/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func viewIDs(t *testing.T, r *gin.Engine, view string) []string {
	t.Helper()
	w := doJSON(t, r, http.MethodGet, "/api/v1/views/"+view, "")
	require.Equal(t, http.StatusOK, w.Code)
	var ids []string
	switch view {
	case "map":
		var snap struct {
			Markers []struct {
				ID int64 `json:"id"`
			} `json:"markers"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
		for _, m := range snap.Markers {
			ids = append(ids, strconv.FormatInt(m.ID, 10))
		}
	case "list":
		var snap struct {
			Cards []struct {
				ID int64 `json:"id"`
			} `json:"cards"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
		for _, c := range snap.Cards {
			ids = append(ids, strconv.FormatInt(c.ID, 10))
		}
	case "calendar":
		var snap struct {
			Entries []struct {
				ID string `json:"id"`
			} `json:"entries"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
		for _, e := range snap.Entries {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

func TestViewsStayConsistentAfterCenterChange(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/filter/center", `{"lat":51.5074,"lon":-0.1278}`)
	require.Equal(t, http.StatusOK, w.Code)

	mapIDs := viewIDs(t, r, "map")
	listIDs := viewIDs(t, r, "list")
	calIDs := viewIDs(t, r, "calendar")
	assert.Equal(t, mapIDs, listIDs)
	assert.Equal(t, mapIDs, calIDs)
	assert.Equal(t, []string{"3"}, mapIDs, "only the London event is within 100 miles")
}

func TestApplyRadiusBlankFallsBack(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/filter/radius", `{"radius":""}`)
	require.Equal(t, http.StatusOK, w.Code)
	var f struct {
		RadiusMiles float64 `json:"radius_miles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &f))
	assert.Equal(t, 100.0, f.RadiusMiles)
}

func TestUnknownViewIs404(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/v1/views/reels", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestZoomEndpointDoesNotMoveCenter(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/map/zoom", `{"direction":"in"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/filter", "")
	var f struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &f))
	assert.Equal(t, 38.9517, f.Lat)
	assert.Equal(t, -92.3341, f.Lon)
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectvault/app"
	"projectvault/database"
	"projectvault/gateway"
	"projectvault/middleware"
	"projectvault/models"
	"projectvault/preferences"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type downStore struct {
	*database.MemoryStore
}

func (downStore) FindProjects(ctx context.Context, q models.ProjectQuery) ([]models.Project, error) {
	return nil, errors.New("connection refused")
}

func (downStore) Ping(ctx context.Context) error {
	return errors.New("connection refused")
}

// flakyStore fails list and facet reads while down is set.
type flakyStore struct {
	*database.MemoryStore
	down atomic.Bool
}

func (s *flakyStore) FindProjects(ctx context.Context, q models.ProjectQuery) ([]models.Project, error) {
	if s.down.Load() {
		return nil, errors.New("connection refused")
	}
	return s.MemoryStore.FindProjects(ctx, q)
}

func (s *flakyStore) CategoryValues(ctx context.Context) ([]string, error) {
	if s.down.Load() {
		return nil, errors.New("connection refused")
	}
	return s.MemoryStore.CategoryValues(ctx)
}

func (s *flakyStore) YearValues(ctx context.Context) ([]int, error) {
	if s.down.Load() {
		return nil, errors.New("connection refused")
	}
	return s.MemoryStore.YearValues(ctx)
}

func setupRouter(store gateway.Store) (*gin.Engine, *app.App) {
	a := app.New(store, preferences.NewMemoryStore())
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Recovery())
	Register(r, a)
	return r, a
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type searchBody struct {
	Results []models.Project `json:"results"`
}

type categoriesBody struct {
	Categories []string `json:"categories"`
}

func TestHealthCheck(t *testing.T) {
	r, _ := setupRouter(database.NewSeededMemoryStore())
	w := do(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"connected"}`, w.Body.String())

	down, _ := setupRouter(downStore{database.NewSeededMemoryStore()})
	w = do(down, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Database connection failed")
}

func TestListProjects(t *testing.T) {
	r, _ := setupRouter(database.NewSeededMemoryStore())

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"search", "?search=robot", []string{"17", "7"}},
		{"category", "?category=iot", []string{"13", "11", "4"}},
		{"limit", "?limit=2", []string{"20", "19"}},
		{"offset pages by ten", "?offset=15", []string{"5", "4", "3", "2", "1"}},
		{"year and search", "?year=2024&search=CAR%20CRASH", []string{"19"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodGet, "/projects"+tt.query, "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			resp := decode[models.ProjectsResponse](t, w)
			got := []string{}
			for _, p := range resp.Projects {
				got = append(got, p.ID)
			}
			assert.Equal(t, tt.wantIDs, got)
			assert.Equal(t, len(tt.wantIDs), resp.Total)
			assert.Equal(t, "all", resp.Tab)
		})
	}
}

func TestListProjects_BadQuery(t *testing.T) {
	r, _ := setupRouter(database.NewSeededMemoryStore())

	w := do(r, http.MethodGet, "/projects?year=soon", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListProjects_ErrorScreen(t *testing.T) {
	r, _ := setupRouter(downStore{database.NewSeededMemoryStore()})

	w := do(r, http.MethodGet, "/projects", "")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch projects: connection refused","action":"retry"}`, w.Body.String())
}

func TestRetryAfterOutage(t *testing.T) {
	store := &flakyStore{MemoryStore: database.NewSeededMemoryStore()}
	store.down.Store(true)
	r, _ := setupRouter(store)

	paths := []string{"/projects?category=iot", "/categories", "/years"}
	for _, path := range paths {
		w := do(r, http.MethodGet, path, "")
		require.Equal(t, http.StatusBadGateway, w.Code, path)
		assert.Contains(t, w.Body.String(), `"action":"retry"`)
	}

	store.down.Store(false)
	for _, path := range paths {
		w := do(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, "%s after the store recovered: %s", path, w.Body.String())
	}

	w := do(r, http.MethodGet, "/projects?category=iot", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.ProjectsResponse](t, w)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, models.ProjectFilters{Category: "iot"}, resp.Filters)
}

func TestGetProject(t *testing.T) {
	r, _ := setupRouter(database.NewSeededMemoryStore())

	w := do(r, http.MethodGet, "/projects/2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "BIONIC ARM", decode[models.Project](t, w).Title)

	w = do(r, http.MethodGet, "/projects/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearch(t *testing.T) {
	r, _ := setupRouter(database.NewSeededMemoryStore())

	w := do(r, http.MethodGet, "/search?q=yash", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[searchBody](t, w)
	require.Len(t, body.Results, 1)
	assert.Equal(t, "2", body.Results[0].ID)

	w = do(r, http.MethodGet, "/search?q=", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[searchBody](t, w).Results)
}

func TestFacets(t *testing.T) {
	r, _ := setupRouter(database.NewSeededMemoryStore())

	w := do(r, http.MethodGet, "/years", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"years":[2024]}`, w.Body.String())

	w = do(r, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	categories := decode[categoriesBody](t, w).Categories
	assert.Len(t, categories, 16)
	assert.Equal(t, "Artificial Intelligence/Chatbot Development", categories[0])
}

func TestTrendingAndRecent(t *testing.T) {
	r, _ := setupRouter(database.NewSeededMemoryStore())

	w := do(r, http.MethodPost, "/projects/8/like", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/trending?limit=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	trending := decode[models.ProjectsResponse](t, w)
	require.Len(t, trending.Projects, 1)
	assert.Equal(t, "8", trending.Projects[0].ID)

	w = do(r, http.MethodGet, "/recent", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, decode[models.ProjectsResponse](t, w).Total)

	w = do(r, http.MethodGet, "/recent?limit=0", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/recent?limit=500", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleLike(t *testing.T) {
	r, _ := setupRouter(database.NewSeededMemoryStore())

	w := do(r, http.MethodPost, "/projects/7/like", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"project_id": "7",
		"liked": true,
		"state": "confirmed",
		"toast": {"type": "like", "message": "Added \"VOICE CONTROLLED HUMANOID\" to liked projects"}
	}`, w.Body.String())

	w = do(r, http.MethodGet, "/projects?tab=liked", "")
	require.Equal(t, http.StatusOK, w.Code)
	liked := decode[models.ProjectsResponse](t, w)
	require.Len(t, liked.Projects, 1)
	assert.Equal(t, 1, liked.Projects[0].LikesCount)
	assert.Equal(t, 1, liked.LikedCount)

	w = do(r, http.MethodPost, "/projects/7/like", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"liked":false`)
	assert.Contains(t, w.Body.String(), "Removed")
}

func TestToggleLike_RolledBack(t *testing.T) {
	r, _ := setupRouter(database.NewSeededMemoryStore())

	w := do(r, http.MethodPost, "/projects/nope/like", "")

	require.Equal(t, http.StatusBadGateway, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "rolled-back", body["state"])
	assert.Equal(t, false, body["liked"])
	assert.Equal(t, "retry", body["action"])

	w = do(r, http.MethodGet, "/preferences", "")
	assert.JSONEq(t, `{"dark_mode":false,"liked":[]}`, w.Body.String())
}

func TestRating(t *testing.T) {
	r, _ := setupRouter(database.NewSeededMemoryStore())

	w := do(r, http.MethodGet, "/projects/3/rating", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rated":false`)

	w = do(r, http.MethodPut, "/projects/3/rating", `{"rating": 6}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Rating must be between 1 and 5 stars")

	w = do(r, http.MethodPut, "/projects/3/rating", `{"rating": 4}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rating":4`)

	w = do(r, http.MethodPut, "/projects/3/rating", `{"rating": 2}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/projects/3", "")
	project := decode[models.Project](t, w)
	assert.Equal(t, 2.0, project.AverageRating)
	assert.Equal(t, 1, project.RatingCount)

	w = do(r, http.MethodPut, "/projects/3/rating", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRating_StoreFailure(t *testing.T) {
	r, _ := setupRouter(database.NewSeededMemoryStore())

	w := do(r, http.MethodPut, "/projects/ghost/rating", `{"rating": 3}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to rate project")
}

func TestPreferencesAndToast(t *testing.T) {
	r, _ := setupRouter(database.NewSeededMemoryStore())

	w := do(r, http.MethodGet, "/toast", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodPut, "/preferences/theme", `{"dark": true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"dark_mode":true,"liked":[]}`, w.Body.String())

	w = do(r, http.MethodPut, "/preferences/theme", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	do(r, http.MethodPost, "/projects/1/like", "")
	w = do(r, http.MethodGet, "/toast", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "CAR BLACKBOX")

	w = do(r, http.MethodDelete, "/toast", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(r, http.MethodGet, "/toast", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodGet, "/preferences", "")
	assert.JSONEq(t, `{"dark_mode":true,"liked":["1"]}`, w.Body.String())
}

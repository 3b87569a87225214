package serverapp

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kytol/skeleton-crew/internal/config"
	"github.com/Kytol/skeleton-crew/internal/game"
	"github.com/Kytol/skeleton-crew/internal/goblin"
	"github.com/Kytol/skeleton-crew/internal/task"
)

func newHandlerForTest(t *testing.T) (http.Handler, *game.Engine) {
	t.Helper()
	cfg := &config.Config{
		Version: "1",
		Server:  config.Server{Addr: ":0", DataDir: t.TempDir()},
		Balance: config.Default(),
	}
	h, engine, err := NewHandler(Options{Config: cfg, DataDir: t.TempDir()})
	require.NoError(t, err)
	return h, engine
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	h, _ := newHandlerForTest(t)

	rec := doJSON(t, h, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "skeleton-crew", body["service"])

	rec = doJSON(t, h, http.MethodPost, "/healthz", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestTaskLifecycleOverHTTP(t *testing.T) {
	h, engine := newHandlerForTest(t)

	rec := doJSON(t, h, http.MethodPost, "/api/tasks", map[string]any{
		"title":    "Dig the shaft",
		"category": "mining",
		"reward":   100,
		"priority": "high",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created task.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, task.StatusPending, created.Status)
	assert.Equal(t, 50, created.XPReward)

	gs, err := engine.Goblins.List(context.Background())
	require.NoError(t, err)
	var miner goblin.Goblin
	for _, g := range gs {
		if g.Specialty == task.CategoryMining {
			miner = g
		}
	}
	require.NotEmpty(t, miner.ID)

	rec = doJSON(t, h, http.MethodPost, "/api/tasks/assign", map[string]any{
		"task_id": created.ID, "goblin_id": miner.ID,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/tasks/complete", map[string]any{
		"task_id": created.ID,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	got, ok, err := engine.Tasks.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, task.StatusCompleted, got.Status)
}

func TestTaskListFiltering(t *testing.T) {
	h, _ := newHandlerForTest(t)

	for _, spec := range []struct {
		title    string
		category string
		reward   int
	}{
		{"Dig", "mining", 100},
		{"Forge", "crafting", 300},
		{"Raid", "combat", 200},
	} {
		rec := doJSON(t, h, http.MethodPost, "/api/tasks", map[string]any{
			"title": spec.title, "category": spec.category,
			"reward": spec.reward, "priority": "medium",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, h, http.MethodGet, "/api/tasks?category=mining&category=combat&reward_min=150", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []task.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "Raid", tasks[0].Title)
}

func TestGoblinListAndRest(t *testing.T) {
	h, _ := newHandlerForTest(t)

	rec := doJSON(t, h, http.MethodGet, "/api/goblins", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var gs []goblin.Goblin
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gs))
	require.Len(t, gs, 3, "starting roster")

	rec = doJSON(t, h, http.MethodPost, "/api/goblins/rest", map[string]any{
		"goblin_id": gs[0].ID,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBadRequestBody(t *testing.T) {
	h, _ := newHandlerForTest(t)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/assign", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostOnlyEndpointsRejectGet(t *testing.T) {
	h, _ := newHandlerForTest(t)

	rec := doJSON(t, h, http.MethodGet, "/api/tasks/complete", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestThemeRoundTrip(t *testing.T) {
	h, _ := newHandlerForTest(t)

	rec := doJSON(t, h, http.MethodGet, "/api/theme", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "nighttime-raid")

	rec = doJSON(t, h, http.MethodPost, "/api/theme", map[string]any{
		"theme": "daytime-attack",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/theme", nil)
	assert.Contains(t, rec.Body.String(), "daytime-attack")
}

func TestEconomySnapshot(t *testing.T) {
	h, _ := newHandlerForTest(t)

	rec := doJSON(t, h, http.MethodGet, "/api/economy", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gold")
}

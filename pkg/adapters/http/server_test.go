package http

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	skilltree "github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/adapters/memory"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/catalog"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/observability"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, opts ...Option) (http.Handler, *session.Manager) {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	builds := session.NewManager(memory.NewStore(),
		session.WithPlannerOptions(skilltree.WithCatalog(cat)),
	)
	return NewHandler(builds, cat, opts...), builds
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func createBuild(t *testing.T, h http.Handler, body string) string {
	t.Helper()
	w := do(t, h, http.MethodPost, "/builds", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp CreateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)
	assert.Equal(t, "/builds/"+resp.ID, w.Header().Get("Location"))
	return resp.ID
}

func decodeMutation(t *testing.T, w *httptest.ResponseRecorder) MutationResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp MutationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetHealth(t *testing.T) {
	h, _ := newTestHandler(t)
	w := do(t, h, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestGetInfo(t *testing.T) {
	h, _ := newTestHandler(t)
	w := do(t, h, http.MethodGet, "/info", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "skilltree-http", resp["app"])
	assert.Equal(t, skilltree.Version, resp["version"])
	assert.Equal(t, 16.0, resp["skills"])
}

func TestGetCatalog(t *testing.T) {
	h, _ := newTestHandler(t)
	w := do(t, h, http.MethodGet, "/catalog", "")

	require.Equal(t, http.StatusOK, w.Code)
	var skills []domain.Skill
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &skills))
	assert.Len(t, skills, 16)
	assert.Equal(t, "cond_turtle_crawl", skills[0].ID)
}

func TestBuildLifecycle(t *testing.T) {
	h, _ := newTestHandler(t)

	id := createBuild(t, h, `{"expedition_tier": 2}`)

	w := do(t, h, http.MethodGet, "/builds", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"builds":["`+id+`"]}`, w.Body.String())

	w = do(t, h, http.MethodGet, "/builds/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	var snap skilltree.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, 85, snap.MaxPoints)

	w = do(t, h, http.MethodDelete, "/builds/"+id, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodGet, "/builds/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBuild_BadBody(t *testing.T) {
	h, _ := newTestHandler(t)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/builds", `{"tier":`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/builds", `{"expedition_tier":-1}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/builds", `{"unknown":1}`).Code)
}

func TestMutations(t *testing.T) {
	h, _ := newTestHandler(t)
	id := createBuild(t, h, "")
	base := "/builds/" + id

	resp := decodeMutation(t, do(t, h, http.MethodPost, base+"/skills/cond_thick_skin/allocate", ""))
	assert.False(t, resp.Applied)
	assert.Equal(t, string(domain.DenialPrerequisiteMissing), resp.Reason)
	assert.Equal(t, 0, resp.Build.TotalPoints)

	for range 5 {
		resp = decodeMutation(t, do(t, h, http.MethodPost, base+"/skills/cond_turtle_crawl/allocate", ""))
		require.True(t, resp.Applied)
	}
	resp = decodeMutation(t, do(t, h, http.MethodPost, base+"/skills/cond_thick_skin/allocate", ""))
	assert.True(t, resp.Applied)
	assert.Empty(t, resp.Reason)
	assert.Equal(t, 6, resp.Build.TotalPoints)

	resp = decodeMutation(t, do(t, h, http.MethodPost, base+"/skills/cond_turtle_crawl/reset", ""))
	assert.False(t, resp.Applied)
	assert.Equal(t, string(domain.DenialDependentLock), resp.Reason)

	resp = decodeMutation(t, do(t, h, http.MethodPost, base+"/skills/cond_thick_skin/deallocate", ""))
	assert.True(t, resp.Applied)

	resp = decodeMutation(t, do(t, h, http.MethodPost, base+"/undo", ""))
	assert.True(t, resp.Applied)
	assert.Equal(t, 1, resp.Build.Ranks.Rank("cond_thick_skin"))
	assert.True(t, resp.Build.CanRedo)

	resp = decodeMutation(t, do(t, h, http.MethodPost, base+"/redo", ""))
	assert.True(t, resp.Applied)
	resp = decodeMutation(t, do(t, h, http.MethodPost, base+"/redo", ""))
	assert.False(t, resp.Applied)
	assert.Equal(t, ReasonNothingToRedo, resp.Reason)

	resp = decodeMutation(t, do(t, h, http.MethodPost, base+"/reset", ""))
	assert.True(t, resp.Applied)
	assert.Equal(t, 0, resp.Build.TotalPoints)
	assert.Equal(t, 9, resp.Build.HistoryLen)
}

func TestSetTier(t *testing.T) {
	h, _ := newTestHandler(t)
	base := "/builds/" + createBuild(t, h, "")

	resp := decodeMutation(t, do(t, h, http.MethodPut, base+"/tier", `{"expedition_tier":4}`))
	assert.True(t, resp.Applied)
	assert.Equal(t, 95, resp.Build.MaxPoints)
	assert.Equal(t, 1, resp.Build.HistoryLen)

	resp = decodeMutation(t, do(t, h, http.MethodPut, base+"/tier", `{"expedition_tier":-3}`))
	assert.False(t, resp.Applied)
	assert.Equal(t, ReasonInvalidTier, resp.Reason)
	assert.Equal(t, 4, resp.Build.ExpeditionTier)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPut, base+"/tier", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPut, base+"/tier", `nope`).Code)
}

func TestDerivedViews(t *testing.T) {
	h, builds := newTestHandler(t)
	id := createBuild(t, h, "")

	err := builds.WithBuild(context.Background(), id, func(_ context.Context, p *skilltree.Planner) error {
		for range 5 {
			p.Allocate("mob_marathon_runner")
		}
		p.Allocate("mob_youthful_lungs")
		return nil
	})
	require.NoError(t, err)

	w := do(t, h, http.MethodGet, "/builds/"+id+"/summary", "")
	require.Equal(t, http.StatusOK, w.Code)
	var summary domain.BuildSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.Len(t, summary.FullyMaxed, 1)
	assert.Equal(t, "mob_marathon_runner", summary.FullyMaxed[0].Skill.ID)
	require.Len(t, summary.PartialInvestment, 1)

	w = do(t, h, http.MethodGet, "/builds/"+id+"/radar", "")
	require.Equal(t, http.StatusOK, w.Code)
	var radar domain.Radar
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &radar))
	assert.Len(t, radar, 6)
}

func TestUnknownBuild(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/builds/nope/summary"},
		{http.MethodGet, "/builds/nope/radar"},
		{http.MethodGet, "/builds/nope/events"},
		{http.MethodPost, "/builds/nope/skills/cond_turtle_crawl/allocate"},
		{http.MethodPost, "/builds/nope/undo"},
		{http.MethodDelete, "/builds/nope"},
	} {
		w := do(t, h, tc.method, tc.path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, tc.path)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	cat, err := catalog.Default()
	require.NoError(t, err)
	builds := session.NewManager(memory.NewStore(),
		session.WithPlannerOptions(skilltree.WithLifecycleHooks(metrics.Hooks())),
	)
	h := NewHandler(builds, cat, WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	id := createBuild(t, h, "")
	decodeMutation(t, do(t, h, http.MethodPost, "/builds/"+id+"/skills/surv_broad_shoulders/allocate", ""))

	w := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `skilltree_mutations_total{action="allocate"} 1`)
}

func TestSubscribeEvents(t *testing.T) {
	h, _ := newTestHandler(t)
	srv := httptest.NewServer(h)
	defer srv.Close()

	id := createBuild(t, h, "")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/builds/"+id+"/events", nil)
	require.NoError(t, err)

	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	lines := bufio.NewScanner(res.Body)
	require.True(t, lines.Scan())
	assert.Equal(t, "event: ping", lines.Text())

	// A rejected action produces no diff; the applied one does.
	decodeMutation(t, do(t, h, http.MethodPost, "/builds/"+id+"/skills/cond_thick_skin/allocate", ""))
	decodeMutation(t, do(t, h, http.MethodPost, "/builds/"+id+"/skills/cond_back_on_feet/allocate", ""))

	var data string
	for lines.Scan() {
		if strings.HasPrefix(lines.Text(), "data: {") {
			data = strings.TrimPrefix(lines.Text(), "data: ")
			break
		}
	}
	require.NotEmpty(t, data)

	var diff domain.AllocationDiff
	require.NoError(t, json.Unmarshal([]byte(data), &diff))
	assert.Equal(t, map[string]int{"cond_back_on_feet": 1}, diff.Changed)
	assert.Equal(t, 1, diff.TotalDelta)
}

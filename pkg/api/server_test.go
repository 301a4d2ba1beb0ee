package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityworks/cityagent/pkg/config"
	"github.com/cityworks/cityagent/pkg/coordinator"
	"github.com/cityworks/cityagent/pkg/jobmanager"
	"github.com/cityworks/cityagent/pkg/models"
)

// echoRunner immediately succeeds with a recommend decision.
type echoRunner struct{ dept models.Department }

func (e echoRunner) Department() models.Department { return e.dept }

func (e echoRunner) Run(_ context.Context, st *models.AgentState) error {
	st.Decision = models.DecisionRecommend
	st.Output = &models.Output{Decision: models.DecisionRecommend, Reason: "all checks passed"}
	return nil
}

func newTestServer(t *testing.T) (*Server, *jobmanager.Manager) {
	t.Helper()
	defaults := config.DefaultSettings()

	runners := map[models.Department]jobmanager.Runner{}
	for _, d := range []models.Department{
		models.DepartmentWater, models.DepartmentEngineering, models.DepartmentFire,
		models.DepartmentSanitation, models.DepartmentHealth, models.DepartmentFinance,
	} {
		runners[d] = echoRunner{dept: d}
	}
	jobs := jobmanager.New(defaults, runners)
	t.Cleanup(jobs.Shutdown)

	coord := coordinator.NewService(coordinator.NewMemoryStore(), coordinator.NewMutexLocker(), defaults)
	coord.SetJobSubmitter(jobs)

	return NewServer(coord, jobs, nil), jobs
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestSubmitQuery_RoutesToWater(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/query",
		`{"type":"schedule_shift_request","location":"Downtown","requested_shift_days":2,"estimated_cost":50000}`)

	require.Equal(t, http.StatusAccepted, rec.Code)
	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.JobID)
	assert.Equal(t, "queued", resp.Status)
	assert.Equal(t, "water", resp.AgentType)
}

func TestSubmitQuery_UnknownTypeFallsToDefaultAgent(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/query",
		`{"type":"totally_new_thing","location":"Downtown"}`)

	require.Equal(t, http.StatusAccepted, rec.Code)
	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(config.DefaultAgent), resp.AgentType)
}

func TestSubmitQuery_MissingLocationIs400(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/query", `{"type":"capacity_query"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitQuery_MalformedBodyIs400(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/query", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetQuery_UnknownIDIs404(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/query/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPollingLifecycle(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/query",
		`{"type":"capacity_query","location":"Downtown"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var submitted SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submitted))

	var job JobResponse
	deadline := time.After(5 * time.Second)
	for {
		rec = doJSON(t, s, http.MethodGet, "/api/v1/query/"+submitted.JobID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
		if job.Status == "succeeded" {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("job stuck in status %s", job.Status)
		case <-time.After(10 * time.Millisecond):
		}
	}

	require.NotNil(t, job.Result)
	assert.Equal(t, models.DecisionRecommend, job.Result.Decision)

	// The /result shortcut agrees.
	rec = doJSON(t, s, http.MethodGet, "/api/v1/query/"+submitted.JobID+"/result", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var result ResultResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "succeeded", result.Status)
	require.NotNil(t, result.Result)
}

func TestHealthEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.NotEmpty(t, resp.Version)
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

package jobmanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityworks/cityagent/pkg/config"
	"github.com/cityworks/cityagent/pkg/models"
)

// stubRunner completes with a scripted decision after an optional
// delay, or blocks until its context is done.
type stubRunner struct {
	dept     models.Department
	decision models.Decision
	delay    time.Duration
	block    bool
	err      error
}

func (s *stubRunner) Department() models.Department { return s.dept }

func (s *stubRunner) Run(ctx context.Context, st *models.AgentState) error {
	if s.block {
		<-ctx.Done()
		return ctx.Err()
	}
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.delay):
		}
	}
	if s.err != nil {
		return s.err
	}
	st.Decision = s.decision
	st.Output = &models.Output{Decision: s.decision}
	return nil
}

func newManager(runner Runner, opts ...func(*config.Defaults)) *Manager {
	defaults := config.DefaultSettings()
	for _, opt := range opts {
		opt(defaults)
	}
	return New(defaults, map[models.Department]Runner{runner.Department(): runner})
}

func waitForTerminal(t *testing.T, m *Manager, jobID string) *models.Job {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("job did not reach a terminal state")
		case <-time.After(10 * time.Millisecond):
		}
		job, err := m.Get(jobID)
		require.NoError(t, err)
		switch job.Status {
		case models.JobSucceeded, models.JobFailed, models.JobCancelled:
			return job
		}
	}
}

func TestSubmitAndSucceed(t *testing.T) {
	m := newManager(&stubRunner{dept: models.DepartmentWater, decision: models.DecisionRecommend})
	defer m.Shutdown()

	job, err := m.Submit(context.Background(), models.Request{Type: "capacity_query", Location: "Downtown"}, models.DepartmentWater)
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Contains(t, []models.JobStatus{models.JobQueued, models.JobRunning, models.JobSucceeded}, job.Status)

	done := waitForTerminal(t, m, job.ID)
	assert.Equal(t, models.JobSucceeded, done.Status)
	require.NotNil(t, done.Result)
	assert.Equal(t, models.DecisionRecommend, done.Result.Decision)
	assert.NotNil(t, done.FinishedAt)
}

func TestSubmit_InvalidRequest(t *testing.T) {
	m := newManager(&stubRunner{dept: models.DepartmentWater})
	defer m.Shutdown()

	_, err := m.Submit(context.Background(), models.Request{Type: "capacity_query"}, models.DepartmentWater)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestSubmit_UnregisteredDepartment(t *testing.T) {
	m := newManager(&stubRunner{dept: models.DepartmentWater})
	defer m.Shutdown()

	_, err := m.Submit(context.Background(), models.Request{Type: "x", Location: "Downtown"}, models.DepartmentFire)
	assert.Error(t, err)
}

func TestGet_UnknownJob(t *testing.T) {
	m := newManager(&stubRunner{dept: models.DepartmentWater})
	defer m.Shutdown()

	_, err := m.Get("nope")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestCancelRunningJob(t *testing.T) {
	m := newManager(&stubRunner{dept: models.DepartmentWater, block: true})
	defer m.Shutdown()

	job, err := m.Submit(context.Background(), models.Request{Type: "capacity_query", Location: "Downtown"}, models.DepartmentWater)
	require.NoError(t, err)

	// Let the goroutine reach running before cancelling.
	time.Sleep(20 * time.Millisecond)
	ok, err := m.Cancel(job.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	done := waitForTerminal(t, m, job.ID)
	assert.Equal(t, models.JobCancelled, done.Status)
	assert.Nil(t, done.Result)
}

func TestCancelTerminalJobReturnsFalse(t *testing.T) {
	m := newManager(&stubRunner{dept: models.DepartmentWater, decision: models.DecisionEscalate})
	defer m.Shutdown()

	job, err := m.Submit(context.Background(), models.Request{Type: "capacity_query", Location: "Downtown"}, models.DepartmentWater)
	require.NoError(t, err)
	waitForTerminal(t, m, job.ID)

	ok, err := m.Cancel(job.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJobTimeoutFails(t *testing.T) {
	m := newManager(&stubRunner{dept: models.DepartmentWater, block: true},
		func(d *config.Defaults) { d.JobTimeout = 50 * time.Millisecond })
	defer m.Shutdown()

	job, err := m.Submit(context.Background(), models.Request{Type: "capacity_query", Location: "Downtown"}, models.DepartmentWater)
	require.NoError(t, err)

	done := waitForTerminal(t, m, job.ID)
	assert.Equal(t, models.JobFailed, done.Status)
	require.NotNil(t, done.Error)
	assert.Equal(t, "job_timeout", done.Error.Kind)
}

func TestRunnerErrorFailsJob(t *testing.T) {
	m := newManager(&stubRunner{dept: models.DepartmentWater, err: errors.New("boom")})
	defer m.Shutdown()

	job, err := m.Submit(context.Background(), models.Request{Type: "capacity_query", Location: "Downtown"}, models.DepartmentWater)
	require.NoError(t, err)

	done := waitForTerminal(t, m, job.ID)
	assert.Equal(t, models.JobFailed, done.Status)
	require.NotNil(t, done.Error)
	assert.Equal(t, "internal_error", done.Error.Kind)
}

func TestResubmitYieldsFreshJob(t *testing.T) {
	m := newManager(&stubRunner{dept: models.DepartmentWater, decision: models.DecisionRecommend})
	defer m.Shutdown()

	req := models.Request{Type: "capacity_query", Location: "Downtown"}
	a, err := m.Submit(context.Background(), req, models.DepartmentWater)
	require.NoError(t, err)
	b, err := m.Submit(context.Background(), req, models.DepartmentWater)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

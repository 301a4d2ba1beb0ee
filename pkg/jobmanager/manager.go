// Package jobmanager accepts submissions, runs the owning agent's
// pipeline in a background goroutine per job, and exposes polling and
// best-effort cancellation. Job state transitions are monotonic:
// queued → running → {succeeded, failed, cancelled}.
package jobmanager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cityworks/cityagent/pkg/config"
	"github.com/cityworks/cityagent/pkg/metrics"
	"github.com/cityworks/cityagent/pkg/models"
)

// ErrJobNotFound is returned by Get/Cancel for unknown job IDs.
var ErrJobNotFound = errors.New("job not found")

// Runner is one department's pipeline, implemented by agent.Agent.
type Runner interface {
	Run(ctx context.Context, st *models.AgentState) error
	Department() models.Department
}

// Manager owns the job registry and the per-job goroutines.
type Manager struct {
	defaults *config.Defaults
	runners  map[models.Department]Runner

	mu      sync.RWMutex
	jobs    map[string]*models.Job
	cancels map[string]context.CancelFunc

	baseCtx context.Context
	stop    context.CancelFunc
	wg      sync.WaitGroup
}

// New creates a Manager over the given per-department runners.
func New(defaults *config.Defaults, runners map[models.Department]Runner) *Manager {
	baseCtx, stop := context.WithCancel(context.Background())
	return &Manager{
		defaults: defaults,
		runners:  runners,
		jobs:     make(map[string]*models.Job),
		cancels:  make(map[string]context.CancelFunc),
		baseCtx:  baseCtx,
		stop:     stop,
	}
}

// Submit accepts a validated request for dept, creates the job, and
// starts the pipeline in the background. Implements
// coordinator.JobSubmitter.
func (m *Manager) Submit(_ context.Context, req models.Request, dept models.Department) (*models.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	runner, ok := m.runners[dept]
	if !ok {
		return nil, fmt.Errorf("%w: no agent registered for department %s", models.ErrInternal, dept)
	}

	job := &models.Job{
		ID:        uuid.New().String(),
		AgentType: dept,
		Status:    models.JobQueued,
		CreatedAt: time.Now(),
	}

	jobCtx, cancel := context.WithTimeout(m.baseCtx, m.jobTimeout())

	m.mu.Lock()
	m.jobs[job.ID] = job
	m.cancels[job.ID] = cancel
	m.mu.Unlock()

	metrics.JobsSubmitted.WithLabelValues(string(dept)).Inc()
	metrics.JobsInFlight.Inc()

	m.wg.Add(1)
	go m.execute(jobCtx, cancel, job.ID, runner, req)

	return m.snapshot(job.ID), nil
}

func (m *Manager) jobTimeout() time.Duration {
	if m.defaults.JobTimeout > 0 {
		return m.defaults.JobTimeout
	}
	return 5 * time.Minute
}

// execute runs one pipeline to its terminal job state.
func (m *Manager) execute(ctx context.Context, cancel context.CancelFunc, jobID string, runner Runner, req models.Request) {
	defer m.wg.Done()
	defer cancel()
	defer metrics.JobsInFlight.Dec()

	log := slog.With("job_id", jobID, "agent_type", runner.Department())

	if !m.transition(jobID, models.JobRunning) {
		return // cancelled while queued
	}

	started := time.Now()
	st := &models.AgentState{JobID: jobID, Request: req}
	err := runner.Run(ctx, st)

	metrics.PipelineDuration.WithLabelValues(string(runner.Department())).Observe(time.Since(started).Seconds())

	switch {
	case err == nil:
		m.finish(jobID, models.JobSucceeded, st.Output, nil)
		metrics.Decisions.WithLabelValues(string(runner.Department()), string(st.Decision)).Inc()
		if st.RetryCount > 0 {
			metrics.Replans.WithLabelValues(string(runner.Department())).Add(float64(st.RetryCount))
		}
		log.Info("job succeeded", "decision", st.Decision)

	case errors.Is(err, context.DeadlineExceeded):
		m.finish(jobID, models.JobFailed, nil, &models.JobError{
			Kind:    "job_timeout",
			Message: fmt.Sprintf("job exceeded wall-clock cap of %v", m.jobTimeout()),
		})
		log.Warn("job timed out")

	case errors.Is(err, context.Canceled):
		m.finish(jobID, models.JobCancelled, nil, nil)
		log.Info("job cancelled")

	default:
		m.finish(jobID, models.JobFailed, nil, &models.JobError{
			Kind:    "internal_error",
			Message: err.Error(),
		})
		log.Error("job failed", "error", err)
	}
}

// Get returns a copy of the job's current state.
func (m *Manager) Get(jobID string) (*models.Job, error) {
	job := m.snapshot(jobID)
	if job == nil {
		return nil, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}
	return job, nil
}

// Cancel requests best-effort cancellation. The pipeline honors the
// signal at its next suspension point; a job already terminal returns
// false.
func (m *Manager) Cancel(jobID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}
	if job.Status != models.JobQueued && job.Status != models.JobRunning {
		return false, nil
	}
	if cancel, ok := m.cancels[jobID]; ok {
		cancel()
	}
	return true, nil
}

// Shutdown stops accepting work and waits for in-flight jobs.
func (m *Manager) Shutdown() {
	m.stop()
	m.wg.Wait()
}

// transition moves a job forward; it refuses regressions so terminal
// states are write-once.
func (m *Manager) transition(jobID string, status models.JobStatus) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return false
	}
	switch job.Status {
	case models.JobQueued:
		// any forward transition allowed
	case models.JobRunning:
		if status == models.JobQueued {
			return false
		}
	default:
		return false // terminal
	}
	job.Status = status
	return true
}

// finish applies a terminal transition with its result or error.
func (m *Manager) finish(jobID string, status models.JobStatus, result *models.Output, jobErr *models.JobError) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return
	}
	if job.Status != models.JobQueued && job.Status != models.JobRunning {
		return // already terminal; exactly one terminal transition
	}
	now := time.Now()
	job.Status = status
	job.FinishedAt = &now
	job.Result = result
	job.Error = jobErr
	delete(m.cancels, jobID)
}

// snapshot returns a defensive copy of one job.
func (m *Manager) snapshot(jobID string) *models.Job {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return nil
	}
	cp := *job
	return &cp
}

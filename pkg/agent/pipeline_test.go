package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityworks/cityagent/pkg/audit"
	"github.com/cityworks/cityagent/pkg/config"
	"github.com/cityworks/cityagent/pkg/contextstore"
	"github.com/cityworks/cityagent/pkg/coordinator"
	"github.com/cityworks/cityagent/pkg/llmclient"
	"github.com/cityworks/cityagent/pkg/models"
	"github.com/cityworks/cityagent/pkg/rules/builtin"
	"github.com/cityworks/cityagent/pkg/tools"
)

// harness bundles one agent with its fakes and in-memory stores.
type harness struct {
	agent      *Agent
	llm        *llmclient.FakeClient
	store      *contextstore.StaticStore
	coordStore *coordinator.MemoryStore
	auditStore *audit.MemoryStore
	defaults   *config.Defaults
}

func newHarness(t *testing.T, dept models.Department, snap contextstore.Snapshot) *harness {
	t.Helper()

	defaults := config.DefaultSettings()
	store := contextstore.NewStaticStore(snap)
	llm := llmclient.NewFakeClient()
	coordStore := coordinator.NewMemoryStore()
	coordSvc := coordinator.NewService(coordStore, coordinator.NewMutexLocker(), defaults)
	auditStore := audit.NewMemoryStore()
	auditSvc := audit.NewService(auditStore)
	auditSvc.SetOutcomeRecorder(coordSvc)

	ag := New(dept, config.AcceptedTypes(dept), Deps{
		Store:       store,
		Tools:       tools.ForDepartment(dept),
		Rules:       builtin.Registry().Get(dept),
		LLM:         llm,
		Coordinator: coordSvc,
		Audit:       auditSvc,
		Defaults:    defaults,
	})

	return &harness{
		agent: ag, llm: llm, store: store,
		coordStore: coordStore, auditStore: auditStore, defaults: defaults,
	}
}

func healthySnapshot(location string) contextstore.Snapshot {
	return contextstore.Snapshot{
		Location:           location,
		WorkerAvailability: map[string]int{"water_crew": 6, "fire_crew": 4},
		InfrastructureHealth: map[string]string{
			"pipeline": "good",
		},
		BudgetAllocated: 10_00_00_000,
		BudgetRemaining: 8_00_00_000,
		Metrics:         map[string]float64{},
	}
}

func runPipeline(t *testing.T, h *harness, req models.Request) *models.AgentState {
	t.Helper()
	st := &models.AgentState{JobID: "job-" + req.Type, Request: req}
	require.NoError(t, h.agent.Run(context.Background(), st))
	require.NotNil(t, st.Output, "pipeline must always reach output")
	return st
}

func TestPipeline_RoutineWaterShift(t *testing.T) {
	h := newHarness(t, models.DepartmentWater, healthySnapshot("Downtown"))
	h.llm.Respond(llmclient.PhaseConfidence, `{"confidence": 0.95}`)

	cost := models.Money(50_000)
	st := runPipeline(t, h, models.Request{
		Type: "schedule_shift_request", Location: "Downtown",
		EstimatedCost: &cost,
		Fields:        map[string]any{"requested_shift_days": 2.0},
	})

	assert.Equal(t, models.DecisionRecommend, st.Decision)
	assert.True(t, st.Feasible)
	assert.True(t, st.PolicyOK)
	assert.GreaterOrEqual(t, st.Confidence, 0.8)

	// Exactly one active coordination row was inserted and completed.
	rows := h.coordStore.All()
	require.Len(t, rows, 1)
	assert.Equal(t, models.CoordinationCompleted, rows[0].Status)

	// Exactly one audit row, correlated to the coordination row the
	// checkpoint inserted.
	assert.Equal(t, 1, h.auditStore.Len())
	rec, ok := h.auditStore.ByJobID(st.JobID)
	require.True(t, ok)
	assert.Equal(t, models.DecisionRecommend, rec.Decision)
	require.NotNil(t, st.CoordinationCheck)
	assert.Equal(t, rows[0].ID, st.CoordinationCheck.DecisionID)
	assert.Equal(t, rows[0].ID, rec.CoordinationID)
}

func TestPipeline_CriticalFireShortCircuits(t *testing.T) {
	h := newHarness(t, models.DepartmentFire, healthySnapshot("Industrial Zone"))

	st := runPipeline(t, h, models.Request{
		Type: "fire_emergency", Location: "Industrial Zone",
		Fields: map[string]any{"priority": "critical"},
	})

	assert.Equal(t, models.DecisionEscalate, st.Decision)
	assert.Equal(t, models.RiskCritical, st.RiskLevel)
	assert.Empty(t, st.ToolResults, "short-circuit must skip the tool executor")
	assert.Equal(t, 1, h.auditStore.Len())
	assert.Empty(t, h.coordStore.All(), "short-circuit must not reach the checkpoint")
}

func TestPipeline_RepairableInfeasibilityReplans(t *testing.T) {
	snap := healthySnapshot("Downtown")
	snap.WorkerAvailability["water_crew"] = 2
	snap.WorkerAvailability["water_crew_alternate"] = 6
	snap.Metrics["crew_shortfall_days"] = 2

	h := newHarness(t, models.DepartmentWater, snap)
	h.llm.Respond(llmclient.PhaseConfidence, `{"confidence": 0.95}`)

	st := runPipeline(t, h, models.Request{
		Type: "schedule_shift_request", Location: "Downtown",
		Fields: map[string]any{"requested_shift_days": 2.0},
	})

	assert.Equal(t, 1, st.RetryCount, "one planner→feasibility loop expected")
	assert.True(t, st.Feasible)
	assert.Equal(t, models.DecisionRecommend, st.Decision)
	assert.LessOrEqual(t, st.RetryCount, h.defaults.MaxRetries)

	// The replan kept the single approved coordination row.
	assert.Len(t, h.coordStore.All(), 1)
}

func TestPipeline_AllLLMDisabled(t *testing.T) {
	h := newHarness(t, models.DepartmentWater, healthySnapshot("Downtown"))
	// FakeClient with nothing scripted: every call returns no-answer,
	// same as USE_LLM_FOR_*=false.

	st := runPipeline(t, h, models.Request{Type: "capacity_query", Location: "Downtown"})

	assert.Contains(t, []models.Decision{models.DecisionRecommend, models.DecisionEscalate}, st.Decision)
	assert.InDelta(t, 0.70, st.Confidence, 1e-9, "deterministic calculator only")
	assert.Equal(t, models.DecisionRecommend, st.Decision)
}

// failingCoordinator always errors, simulating an unreachable
// Coordinator during Phase 6.
type failingCoordinator struct{}

func (failingCoordinator) CheckPlanConflicts(context.Context, coordinator.PlanSubmission) (models.Verdict, error) {
	return models.Verdict{}, errors.New("dial tcp: connection refused")
}

func TestPipeline_CoordinatorDownProceedsDegraded(t *testing.T) {
	h := newHarness(t, models.DepartmentWater, healthySnapshot("Downtown"))
	h.agent.deps.Coordinator = failingCoordinator{}

	st := runPipeline(t, h, models.Request{Type: "capacity_query", Location: "Downtown"})

	require.NotNil(t, st.CoordinationCheck)
	assert.True(t, st.CoordinationCheck.Degraded)
	assert.Equal(t, models.DecisionRecommend, st.Decision)
	assert.True(t, st.Output.Details.CoordinationDegraded)
}

// alwaysRetryCoordinator forces the replanning loop to exhaustion.
type alwaysRetryCoordinator struct{ calls int }

func (c *alwaysRetryCoordinator) CheckPlanConflicts(context.Context, coordinator.PlanSubmission) (models.Verdict, error) {
	c.calls++
	return models.Verdict{
		Outcome:         models.VerdictRetry,
		Recommendations: []string{"defer by one shift"},
	}, nil
}

func TestPipeline_RetryBudgetExhaustedEscalates(t *testing.T) {
	h := newHarness(t, models.DepartmentWater, healthySnapshot("Downtown"))
	coord := &alwaysRetryCoordinator{}
	h.agent.deps.Coordinator = coord

	st := runPipeline(t, h, models.Request{Type: "capacity_query", Location: "Downtown"})

	assert.Equal(t, models.DecisionEscalate, st.Decision)
	assert.Equal(t, h.defaults.MaxRetries, st.RetryCount)
	assert.Equal(t, h.defaults.MaxRetries+1, coord.calls)
	assert.Equal(t, 1, h.auditStore.Len())
}

func TestPipeline_ContextStoreFailureDegrades(t *testing.T) {
	h := newHarness(t, models.DepartmentWater, healthySnapshot("Downtown"))
	h.store.FailWith(errors.New("connection reset"))

	st := runPipeline(t, h, models.Request{Type: "capacity_query", Location: "Downtown"})

	assert.True(t, st.ContextDegraded)
	assert.NotEmpty(t, st.Decision)
}

func TestPipeline_UnknownTypeRejectedAtValidation(t *testing.T) {
	h := newHarness(t, models.DepartmentWater, healthySnapshot("Downtown"))

	st := runPipeline(t, h, models.Request{Type: "fire_emergency", Location: "Downtown"})

	assert.Equal(t, models.DecisionReject, st.Decision)
	assert.Contains(t, st.Reason, "invalid input")
	assert.Equal(t, 1, h.auditStore.Len())
}

func TestPipeline_MissingRequiredFieldRejected(t *testing.T) {
	h := newHarness(t, models.DepartmentWater, healthySnapshot("Downtown"))

	st := runPipeline(t, h, models.Request{Type: "schedule_shift_request", Location: "Downtown"})

	assert.Equal(t, models.DecisionReject, st.Decision)
	assert.Contains(t, st.Reason, "requested_shift_days")
}

func TestPipeline_CancelledBetweenPhases(t *testing.T) {
	h := newHarness(t, models.DepartmentWater, healthySnapshot("Downtown"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st := &models.AgentState{JobID: "job-cancel", Request: models.Request{Type: "capacity_query", Location: "Downtown"}}
	err := h.agent.Run(ctx, st)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, st.Output)
	assert.Equal(t, 0, h.auditStore.Len(), "cancelled runs must not persist an outcome")
}

func TestPipeline_PolicyViolationEscalates(t *testing.T) {
	snap := healthySnapshot("Downtown")
	snap.BudgetAllocated = 100
	snap.BudgetRemaining = 5 // 95% utilization, above water's 80% cap

	h := newHarness(t, models.DepartmentWater, snap)
	h.llm.Respond(llmclient.PhaseConfidence, `{"confidence": 0.99}`)

	st := runPipeline(t, h, models.Request{
		Type: "schedule_shift_request", Location: "Downtown",
		Fields: map[string]any{"requested_shift_days": 1.0},
	})

	assert.False(t, st.PolicyOK)
	assert.NotEmpty(t, st.PolicyViolations)
	assert.Equal(t, models.DecisionEscalate, st.Decision)
}

func TestPipeline_LLMCannotLowerRisk(t *testing.T) {
	h := newHarness(t, models.DepartmentFire, healthySnapshot("Downtown"))
	h.llm.Respond(llmclient.PhaseIntent, `{"intent":"respond_emergency","risk_level":"low"}`)

	st := runPipeline(t, h, models.Request{Type: "fire_emergency", Location: "Downtown"})

	// fire_emergency grades high deterministically; the oracle's "low"
	// must not lower it.
	assert.Equal(t, models.RiskHigh, st.RiskLevel)
	assert.Equal(t, models.DecisionEscalate, st.Decision)
}

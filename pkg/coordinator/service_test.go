package coordinator

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityworks/cityagent/pkg/config"
	"github.com/cityworks/cityagent/pkg/models"
)

func newTestService(t *testing.T, opts ...func(*config.Defaults)) (*Service, *MemoryStore) {
	t.Helper()
	defaults := config.DefaultSettings()
	for _, opt := range opts {
		opt(defaults)
	}
	store := NewMemoryStore()
	return NewService(store, NewMutexLocker(), defaults), store
}

func TestCheckPlanConflicts_ProceedInsertsActiveRow(t *testing.T) {
	svc, store := newTestService(t)

	verdict, err := svc.CheckPlanConflicts(context.Background(), PlanSubmission{
		AgentType: "water", Location: "Downtown", EstimatedCost: 50_000,
	})
	require.NoError(t, err)
	assert.Equal(t, models.VerdictProceed, verdict.Outcome)

	rows := store.All()
	require.Len(t, rows, 1)
	assert.Equal(t, models.CoordinationActive, rows[0].Status)
	assert.Equal(t, "water", rows[0].AgentType)
}

func TestCheckPlanConflicts_RetryDoesNotInsert(t *testing.T) {
	svc, store := newTestService(t)

	_, err := svc.CheckPlanConflicts(context.Background(), PlanSubmission{
		AgentType: "engineering", Location: "Downtown", EstimatedCost: 100,
	})
	require.NoError(t, err)

	verdict, err := svc.CheckPlanConflicts(context.Background(), PlanSubmission{
		AgentType: "water", Location: "Downtown", EstimatedCost: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, models.VerdictRetry, verdict.Outcome)
	assert.NotEmpty(t, verdict.Recommendations)
	assert.Len(t, store.All(), 1, "retry must not insert a row")
}

func TestCheckPlanConflicts_CostAboveLimitEscalates(t *testing.T) {
	svc, store := newTestService(t)

	// Occupy the location so the expensive plan conflicts.
	_, err := svc.CheckPlanConflicts(context.Background(), PlanSubmission{
		AgentType: "engineering", Location: "Downtown", EstimatedCost: 100,
	})
	require.NoError(t, err)

	verdict, err := svc.CheckPlanConflicts(context.Background(), PlanSubmission{
		AgentType: "water", Location: "Downtown",
		EstimatedCost: models.Money(svc.defaults.CostEscalationLimit + 1),
	})
	require.NoError(t, err)

	assert.Equal(t, models.VerdictEscalate, verdict.Outcome)
	assert.True(t, verdict.RequiresHuman)
	assert.Len(t, store.All(), 1)
}

func TestCheckPlanConflicts_BudgetDeadlock(t *testing.T) {
	// Four plans in one location summing far over the fiscal ceiling:
	// the first proceeds, later ones retry or escalate, and only one
	// active row ever exists.
	svc, store := newTestService(t, func(d *config.Defaults) {
		d.BudgetCeiling = 10_00_00_000 // ₹10L
	})

	first, err := svc.CheckPlanConflicts(context.Background(), PlanSubmission{
		AgentType: "engineering", Location: "Downtown", EstimatedCost: 9_00_00_000,
	})
	require.NoError(t, err)
	assert.Equal(t, models.VerdictProceed, first.Outcome)

	for _, agent := range []string{"water", "sanitation", "finance"} {
		verdict, err := svc.CheckPlanConflicts(context.Background(), PlanSubmission{
			AgentType: agent, Location: "Downtown", EstimatedCost: 9_00_00_000,
		})
		require.NoError(t, err)
		assert.Contains(t, []models.VerdictOutcome{models.VerdictRetry, models.VerdictEscalate}, verdict.Outcome)
	}

	assert.Len(t, store.All(), 1)
}

func TestCheckPlanConflicts_AutoApproveConvertsEscalation(t *testing.T) {
	svc, store := newTestService(t, func(d *config.Defaults) {
		d.CoordinationAutoApprove = true
	})

	_, err := svc.CheckPlanConflicts(context.Background(), PlanSubmission{
		AgentType: "engineering", Location: "Downtown", EstimatedCost: 100,
	})
	require.NoError(t, err)

	verdict, err := svc.CheckPlanConflicts(context.Background(), PlanSubmission{
		AgentType: "water", Location: "Downtown",
		EstimatedCost: models.Money(svc.defaults.CostEscalationLimit + 1),
	})
	require.NoError(t, err)

	assert.Equal(t, models.VerdictProceed, verdict.Outcome)
	require.NotNil(t, verdict.Human)
	assert.Equal(t, InterventionApprove, verdict.Human.Option)
	assert.Len(t, store.All(), 2)
}

func TestCheckPlanConflicts_HumanRejection(t *testing.T) {
	svc, _ := newTestService(t)
	svc.SetInterventionChannel(&ScriptedChannel{
		Decision: models.HumanDecision{Option: InterventionReject, Approver: "ops"},
	})

	_, err := svc.CheckPlanConflicts(context.Background(), PlanSubmission{
		AgentType: "engineering", Location: "Downtown", EstimatedCost: 100,
	})
	require.NoError(t, err)

	verdict, err := svc.CheckPlanConflicts(context.Background(), PlanSubmission{
		AgentType: "water", Location: "Downtown",
		EstimatedCost: models.Money(svc.defaults.CostEscalationLimit + 1),
	})
	require.NoError(t, err)

	assert.Equal(t, models.VerdictEscalate, verdict.Outcome)
	assert.True(t, verdict.RequiresHuman)
	require.NotNil(t, verdict.Human)
	assert.Equal(t, InterventionReject, verdict.Human.Option)
}

func TestRecordOutcome_IdempotentByAuditID(t *testing.T) {
	svc, store := newTestService(t)

	verdict, err := svc.CheckPlanConflicts(context.Background(), PlanSubmission{
		AgentType: "water", Location: "Downtown", EstimatedCost: 100,
	})
	require.NoError(t, err)
	require.NotEmpty(t, verdict.DecisionID, "proceed verdict must carry the inserted row's ID")

	rec := models.AuditRecord{
		ID: "audit-1", AgentType: "water", Location: "Downtown",
		Decision: models.DecisionRecommend, CoordinationID: verdict.DecisionID,
	}
	require.NoError(t, svc.RecordOutcome(context.Background(), rec))
	require.NoError(t, svc.RecordOutcome(context.Background(), rec))

	rows := store.All()
	require.Len(t, rows, 1)
	assert.Equal(t, models.CoordinationCompleted, rows[0].Status)
	assert.Equal(t, "recommend", rows[0].Decision)
}

func TestRecordOutcome_NoRowInsertedIsNoOp(t *testing.T) {
	svc, store := newTestService(t)

	// A degraded or short-circuited job carries no coordination ID.
	rec := models.AuditRecord{ID: "audit-2", AgentType: "water", Location: "Downtown", Decision: models.DecisionEscalate}
	require.NoError(t, svc.RecordOutcome(context.Background(), rec))
	assert.Empty(t, store.All())
}

func TestRecordOutcome_SameAgentSameLocationCompletesOwnRow(t *testing.T) {
	// Two jobs from one department at one location are not a location
	// conflict, so both insert active rows. Each outcome must land on
	// the row its own checkpoint inserted, whatever the finish order.
	svc, store := newTestService(t)

	first, err := svc.CheckPlanConflicts(context.Background(), PlanSubmission{
		AgentType: "water", Location: "Downtown", EstimatedCost: 100, PlanSummary: "first plan",
	})
	require.NoError(t, err)
	second, err := svc.CheckPlanConflicts(context.Background(), PlanSubmission{
		AgentType: "water", Location: "Downtown", EstimatedCost: 200, PlanSummary: "second plan",
	})
	require.NoError(t, err)

	require.Equal(t, models.VerdictProceed, first.Outcome)
	require.Equal(t, models.VerdictProceed, second.Outcome)
	require.NotEqual(t, first.DecisionID, second.DecisionID)

	// The later-inserted row's job finishes first.
	require.NoError(t, svc.RecordOutcome(context.Background(), models.AuditRecord{
		ID: "audit-second", AgentType: "water", Location: "Downtown",
		Decision: models.DecisionEscalate, CoordinationID: second.DecisionID,
	}))
	require.NoError(t, svc.RecordOutcome(context.Background(), models.AuditRecord{
		ID: "audit-first", AgentType: "water", Location: "Downtown",
		Decision: models.DecisionRecommend, CoordinationID: first.DecisionID,
	}))

	byID := map[string]models.CoordinationDecision{}
	for _, row := range store.All() {
		byID[row.ID] = row
	}
	require.Len(t, byID, 2)
	assert.Equal(t, models.CoordinationCompleted, byID[first.DecisionID].Status)
	assert.Equal(t, "recommend", byID[first.DecisionID].Decision)
	assert.Equal(t, models.CoordinationCompleted, byID[second.DecisionID].Status)
	assert.Equal(t, "escalate", byID[second.DecisionID].Decision)
}

func TestCheckPlanConflicts_SerializedPerLocation(t *testing.T) {
	svc, store := newTestService(t)

	var wg sync.WaitGroup
	agents := []string{"water", "engineering", "fire", "sanitation"}
	for _, agent := range agents {
		wg.Add(1)
		go func(agent string) {
			defer wg.Done()
			_, err := svc.CheckPlanConflicts(context.Background(), PlanSubmission{
				AgentType: agent, Location: "Downtown", EstimatedCost: 100,
			})
			assert.NoError(t, err)
		}(agent)
	}
	wg.Wait()

	// Exactly one of the concurrent submissions can win the location.
	assert.Len(t, store.All(), 1)
}

func TestSupersedeStale(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CheckPlanConflicts(context.Background(), PlanSubmission{
		AgentType: "water", Location: "Downtown", EstimatedCost: 100,
	})
	require.NoError(t, err)

	// Nothing is older than the window yet.
	n, err := svc.SupersedeStale(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityworks/cityagent/pkg/models"
)

type capturedOutcome struct {
	records []models.AuditRecord
}

func (c *capturedOutcome) RecordOutcome(_ context.Context, rec models.AuditRecord) error {
	c.records = append(c.records, rec)
	return nil
}

func TestRecord_AssignsIDAndNotifiesOutcome(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store)
	outcomes := &capturedOutcome{}
	svc.SetOutcomeRecorder(outcomes)

	id, err := svc.Record(context.Background(), models.AuditRecord{
		JobID: "job-1", AgentType: "water", Location: "Downtown", Decision: models.DecisionRecommend,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	rec, ok := store.ByJobID("job-1")
	require.True(t, ok)
	assert.Equal(t, id, rec.ID)
	require.Len(t, outcomes.records, 1)
	assert.Equal(t, models.DecisionRecommend, outcomes.records[0].Decision)
}

func TestRecord_IdempotentPerJob(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store)

	first, err := svc.Record(context.Background(), models.AuditRecord{JobID: "job-1", Decision: models.DecisionEscalate})
	require.NoError(t, err)

	second, err := svc.Record(context.Background(), models.AuditRecord{JobID: "job-1", Decision: models.DecisionEscalate})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.Len())
}

func TestRecord_PreassignedIDPreserved(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store)

	id := svc.AllocateID()
	got, err := svc.Record(context.Background(), models.AuditRecord{ID: id, JobID: "job-2", Decision: models.DecisionReject})
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cityworks/cityagent/ent"
	"github.com/cityworks/cityagent/ent/agentdecision"
	"github.com/cityworks/cityagent/pkg/models"
)

// MemoryStore is an in-memory Store for tests and databaseless runs.
type MemoryStore struct {
	mu   sync.RWMutex
	rows map[string]models.AuditRecord // keyed by job ID
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[string]models.AuditRecord)}
}

// Insert implements Store.
func (s *MemoryStore) Insert(ctx context.Context, rec models.AuditRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.rows[rec.JobID]; exists {
		return fmt.Errorf("audit record for job %s already exists", rec.JobID)
	}
	s.rows[rec.JobID] = rec
	return nil
}

// ByJobID returns the record for a job, for test assertions.
func (s *MemoryStore) ByJobID(jobID string) (models.AuditRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.rows[jobID]
	return rec, ok
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// EntStore is the Postgres-backed Store.
type EntStore struct {
	client *ent.Client
}

var _ Store = (*EntStore)(nil)

// NewEntStore wraps an ent client.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

// Insert implements Store. The snapshot is stored as JSON so the trace
// endpoints can replay the full terminal state.
func (s *EntStore) Insert(ctx context.Context, rec models.AuditRecord) error {
	create := s.client.AgentDecision.Create().
		SetID(rec.ID).
		SetJobID(rec.JobID).
		SetAgentType(rec.AgentType).
		SetRequestType(rec.RequestType).
		SetLocation(rec.Location).
		SetDecision(agentdecision.Decision(rec.Decision)).
		SetReason(rec.Reason).
		SetRationale(rec.Rationale).
		SetFeasible(rec.Feasible).
		SetPolicyOk(rec.PolicyOK).
		SetConfidence(rec.Confidence).
		SetRetryCount(rec.RetryCount).
		SetPoliciesReferenced(rec.PoliciesReferenced).
		SetPolicyViolations(rec.PolicyViolations).
		SetCoordinationDegraded(rec.CoordinationDegraded).
		SetContextDegraded(rec.ContextDegraded).
		SetCreatedAt(rec.CreatedAt)

	if rec.RiskLevel != "" {
		// Rejected-at-validation records never reach the risk analyzer;
		// the schema default ("low") stands for those.
		create = create.SetRiskLevel(agentdecision.RiskLevel(rec.RiskLevel))
	}
	if rec.AffectedCitizens != nil {
		create = create.SetAffectedCitizens(*rec.AffectedCitizens)
	}
	if rec.CostImpact != nil {
		create = create.SetCostImpact(int64(*rec.CostImpact))
	}
	if rec.CoordinationID != "" {
		create = create.SetCoordinationID(rec.CoordinationID)
	}
	if rec.Snapshot != nil {
		snapshot, err := stateAsMap(rec.Snapshot)
		if err != nil {
			return fmt.Errorf("serializing state snapshot: %w", err)
		}
		create = create.SetSnapshot(snapshot)
	}

	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("inserting agent decision: %w", err)
	}
	return nil
}

func stateAsMap(st *models.AgentState) (map[string]interface{}, error) {
	raw, err := json.Marshal(st)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

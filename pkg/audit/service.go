// Package audit persists the append-only decision records every
// completed pipeline run leaves behind. The store is write-only from
// the core's perspective; downstream transparency/search are derived
// reads outside this contract.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/cityworks/cityagent/pkg/models"
)

// Store persists AuditRecords. Implementations: EntStore (Postgres)
// and MemoryStore (tests).
type Store interface {
	// Insert appends one record. A duplicate job ID returns an error,
	// which Record passes to its caller; Record's per-job idempotency
	// comes from its in-process map of jobs already recorded.
	Insert(ctx context.Context, rec models.AuditRecord) error
}

// OutcomeRecorder receives the terminal record so the Coordinator can
// transition the matching CoordinationDecision row. Wired to
// coordinator.Service.RecordOutcome.
type OutcomeRecorder interface {
	RecordOutcome(ctx context.Context, rec models.AuditRecord) error
}

// Service is the audit log facade the pipeline's memory logger uses.
type Service struct {
	store    Store
	outcomes OutcomeRecorder // nil = no coordinator wired (tests)

	mu       sync.Mutex
	recorded map[string]string // job ID → audit ID
}

// NewService creates an audit service over store.
func NewService(store Store) *Service {
	return &Service{store: store, recorded: make(map[string]string)}
}

// SetOutcomeRecorder wires the Coordinator's outcome transition.
func (s *Service) SetOutcomeRecorder(r OutcomeRecorder) {
	s.outcomes = r
}

// AllocateID returns a fresh audit ID. The pipeline's memory logger
// calls this so the ID is on the AgentState before the terminal
// snapshot is frozen and persisted.
func (s *Service) AllocateID() string {
	return uuid.New().String()
}

// Record appends the terminal record and notifies the outcome
// recorder. Idempotent per job: a second call for the same job returns
// the first call's audit ID without a second row.
func (s *Service) Record(ctx context.Context, rec models.AuditRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = s.AllocateID()
	}

	s.mu.Lock()
	if id, done := s.recorded[rec.JobID]; done {
		s.mu.Unlock()
		return id, nil
	}
	s.mu.Unlock()

	if err := s.store.Insert(ctx, rec); err != nil {
		return "", fmt.Errorf("persisting audit record: %w", err)
	}

	s.mu.Lock()
	s.recorded[rec.JobID] = rec.ID
	s.mu.Unlock()

	slog.Info("decision audited",
		"audit_id", rec.ID, "job_id", rec.JobID, "agent_type", rec.AgentType,
		"decision", rec.Decision, "confidence", rec.Confidence)

	if s.outcomes != nil {
		if err := s.outcomes.RecordOutcome(ctx, rec); err != nil {
			// The audit row is the durable source of truth; a failed
			// coordination transition is not retried, and the row stays
			// active until the cleanup sweep supersedes it as stale.
			slog.Warn("outcome recording failed", "audit_id", rec.ID, "error", err)
		}
	}
	return rec.ID, nil
}

// Package coordinator implements request dispatch, the mid-pipeline
// conflict-check rendezvous every agent performs before committing to a
// plan, and outcome recording. The CoordinationDecision table is the
// only shared-mutable datum; all mutations go through this package.
package coordinator

import (
	"context"
	"sync"
	"time"

	"github.com/cityworks/cityagent/pkg/models"
)

// DecisionStore persists CoordinationDecision rows. Implementations:
// EntStore (production, Postgres via ent) and MemoryStore (tests,
// single-process deployments without a database).
type DecisionStore interface {
	// ListActive returns rows with status=active created after since.
	// An empty location matches every location (budget conflicts span
	// the fiscal scope, not one location).
	ListActive(ctx context.Context, location string, since time.Time) ([]models.CoordinationDecision, error)

	// Insert stores a new active row.
	Insert(ctx context.Context, d models.CoordinationDecision) error

	// Complete transitions the identified row to completed, recording
	// how it resolved. Returns false when the row does not exist or is
	// no longer active.
	Complete(ctx context.Context, decisionID, resolution string) (bool, error)

	// Supersede transitions active rows created before cutoff to
	// superseded, returning how many changed.
	Supersede(ctx context.Context, cutoff time.Time) (int, error)
}

// MemoryStore is an in-memory DecisionStore. Thread-safe.
type MemoryStore struct {
	mu   sync.RWMutex
	rows []models.CoordinationDecision
}

var _ DecisionStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// ListActive implements DecisionStore.
func (s *MemoryStore) ListActive(ctx context.Context, location string, since time.Time) ([]models.CoordinationDecision, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.CoordinationDecision
	for _, row := range s.rows {
		if row.Status != models.CoordinationActive || !row.CreatedAt.After(since) {
			continue
		}
		if location != "" && row.Location != location {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

// Insert implements DecisionStore.
func (s *MemoryStore) Insert(ctx context.Context, d models.CoordinationDecision) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, d)
	return nil
}

// Complete implements DecisionStore.
func (s *MemoryStore) Complete(ctx context.Context, decisionID, resolution string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rows {
		row := &s.rows[i]
		if row.ID == decisionID && row.Status == models.CoordinationActive {
			now := time.Now()
			row.Status = models.CoordinationCompleted
			row.Decision = resolution
			row.CompletedAt = &now
			return true, nil
		}
	}
	return false, nil
}

// Supersede implements DecisionStore.
func (s *MemoryStore) Supersede(ctx context.Context, cutoff time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for i := range s.rows {
		row := &s.rows[i]
		if row.Status == models.CoordinationActive && row.CreatedAt.Before(cutoff) {
			row.Status = models.CoordinationSuperseded
			row.Decision = "superseded"
			count++
		}
	}
	return count, nil
}

// All returns a copy of every row, for test assertions.
func (s *MemoryStore) All() []models.CoordinationDecision {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CoordinationDecision, len(s.rows))
	copy(out, s.rows)
	return out
}

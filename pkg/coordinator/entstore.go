package coordinator

import (
	"context"
	"fmt"
	"time"

	"github.com/cityworks/cityagent/ent"
	"github.com/cityworks/cityagent/ent/coordinationdecision"
	"github.com/cityworks/cityagent/pkg/models"
)

// EntStore is the Postgres-backed DecisionStore.
type EntStore struct {
	client *ent.Client
}

var _ DecisionStore = (*EntStore)(nil)

// NewEntStore wraps an ent client.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

// ListActive implements DecisionStore.
func (s *EntStore) ListActive(ctx context.Context, location string, since time.Time) ([]models.CoordinationDecision, error) {
	q := s.client.CoordinationDecision.Query().
		Where(
			coordinationdecision.StatusEQ(coordinationdecision.StatusActive),
			coordinationdecision.CreatedAtGT(since),
		)
	if location != "" {
		q = q.Where(coordinationdecision.LocationEQ(location))
	}

	rows, err := q.Order(ent.Asc(coordinationdecision.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying active coordination decisions: %w", err)
	}

	out := make([]models.CoordinationDecision, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromEnt(row))
	}
	return out, nil
}

// Insert implements DecisionStore.
func (s *EntStore) Insert(ctx context.Context, d models.CoordinationDecision) error {
	create := s.client.CoordinationDecision.Create().
		SetID(d.ID).
		SetAgentType(d.AgentType).
		SetLocation(d.Location).
		SetResourcesNeeded(d.ResourcesNeeded).
		SetEstimatedCost(int64(d.EstimatedCost)).
		SetFiscalScope(d.FiscalScope).
		SetWaitsFor(d.WaitsFor).
		SetStatus(coordinationdecision.Status(d.Status)).
		SetPlanSummary(d.PlanSummary).
		SetCreatedAt(d.CreatedAt)

	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("inserting coordination decision: %w", err)
	}
	return nil
}

// Complete implements DecisionStore. The status predicate makes the
// update a no-op against rows that already left active, so a late or
// repeated call can never overwrite an earlier resolution.
func (s *EntStore) Complete(ctx context.Context, decisionID, resolution string) (bool, error) {
	count, err := s.client.CoordinationDecision.Update().
		Where(
			coordinationdecision.IDEQ(decisionID),
			coordinationdecision.StatusEQ(coordinationdecision.StatusActive),
		).
		SetStatus(coordinationdecision.StatusCompleted).
		SetDecision(resolution).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("completing coordination decision: %w", err)
	}
	return count > 0, nil
}

// Supersede implements DecisionStore.
func (s *EntStore) Supersede(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := s.client.CoordinationDecision.Update().
		Where(
			coordinationdecision.StatusEQ(coordinationdecision.StatusActive),
			coordinationdecision.CreatedAtLT(cutoff),
		).
		SetStatus(coordinationdecision.StatusSuperseded).
		SetDecision("superseded").
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("superseding stale coordination decisions: %w", err)
	}
	return count, nil
}

func fromEnt(row *ent.CoordinationDecision) models.CoordinationDecision {
	d := models.CoordinationDecision{
		ID:              row.ID,
		AgentType:       row.AgentType,
		Location:        row.Location,
		ResourcesNeeded: row.ResourcesNeeded,
		EstimatedCost:   models.Money(row.EstimatedCost),
		FiscalScope:     row.FiscalScope,
		WaitsFor:        row.WaitsFor,
		Status:          models.CoordinationStatus(row.Status),
		PlanSummary:     row.PlanSummary,
		CreatedAt:       row.CreatedAt,
		CompletedAt:     row.CompletedAt,
	}
	if row.Decision != nil {
		d.Decision = *row.Decision
	}
	return d
}

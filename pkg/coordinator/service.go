package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cityworks/cityagent/pkg/config"
	"github.com/cityworks/cityagent/pkg/metrics"
	"github.com/cityworks/cityagent/pkg/models"
)

// JobSubmitter is the Job Manager surface Dispatch needs. Declared
// here so the Coordinator holds no reference to agents or the manager's
// internals — agents call the Coordinator, never the reverse.
type JobSubmitter interface {
	Submit(ctx context.Context, req models.Request, dept models.Department) (*models.Job, error)
}

// Service is the Coordinator: request dispatch, the CheckPlanConflicts
// rendezvous, and outcome recording.
type Service struct {
	store        DecisionStore
	locks        Locker
	defaults     *config.Defaults
	intervention InterventionChannel // nil = no human reachable

	jobs JobSubmitter

	// recorded makes RecordOutcome idempotent by audit ID within this
	// process; the audit table's unique job_id constraint backs it
	// across replicas.
	mu       sync.Mutex
	recorded map[string]struct{}
}

// NewService creates a Coordinator over the given store and lock
// backend. When defaults.CoordinationAutoApprove is set the
// intervention channel defaults to AutoApproveChannel; otherwise the
// caller wires a channel (or leaves it nil for headless deployments).
func NewService(store DecisionStore, locks Locker, defaults *config.Defaults) *Service {
	s := &Service{
		store:    store,
		locks:    locks,
		defaults: defaults,
		recorded: make(map[string]struct{}),
	}
	if defaults.CoordinationAutoApprove {
		s.intervention = AutoApproveChannel{}
	}
	return s
}

// SetInterventionChannel overrides the human-in-the-loop channel.
func (s *Service) SetInterventionChannel(ch InterventionChannel) {
	s.intervention = ch
}

// SetJobSubmitter wires the Job Manager, completing the Dispatch path.
func (s *Service) SetJobSubmitter(jobs JobSubmitter) {
	s.jobs = jobs
}

// Dispatch resolves the owning agent from the static request-type map
// and submits the request to the Job Manager.
func (s *Service) Dispatch(ctx context.Context, req models.Request) (*models.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.jobs == nil {
		return nil, fmt.Errorf("%w: job manager not wired", models.ErrInternal)
	}

	dept := config.RouteRequest(req.Type)
	job, err := s.jobs.Submit(ctx, req, dept)
	if err != nil {
		return nil, err
	}

	slog.Info("request dispatched",
		"job_id", job.ID, "agent_type", dept, "request_type", req.Type, "location", req.Location)
	return job, nil
}

// CheckPlanConflicts services an agent's Phase 6 checkpoint. Calls
// sharing a location are serialized through the Locker; the verdict and
// the insert-on-proceed happen under the same lock so no two plans for
// one location can both observe an empty conflict set.
func (s *Service) CheckPlanConflicts(ctx context.Context, p PlanSubmission) (models.Verdict, error) {
	unlock, err := s.locks.Lock(ctx, p.Location)
	if err != nil {
		return models.Verdict{}, fmt.Errorf("%w: %v", models.ErrCoordinatorUnavailable, err)
	}
	defer unlock()

	since := time.Now().Add(-s.defaults.ConflictWindow)
	active, err := s.store.ListActive(ctx, "", since)
	if err != nil {
		return models.Verdict{}, fmt.Errorf("%w: %v", models.ErrCoordinatorUnavailable, err)
	}

	conflicts := detectConflicts(p, active, models.Money(s.defaults.BudgetCeiling))
	for _, c := range conflicts {
		metrics.Conflicts.WithLabelValues(string(c.Kind)).Inc()
	}
	if len(conflicts) == 0 {
		decisionID, err := s.insertApproved(ctx, p, "")
		if err != nil {
			return models.Verdict{}, fmt.Errorf("%w: %v", models.ErrCoordinatorUnavailable, err)
		}
		return models.Verdict{Outcome: models.VerdictProceed, DecisionID: decisionID}, nil
	}

	if s.needsHuman(p, conflicts) {
		return s.escalate(ctx, p, conflicts)
	}

	slog.Info("plan conflicts detected, retry issued",
		"agent_type", p.AgentType, "location", p.Location, "conflicts", len(conflicts))
	return models.Verdict{
		Outcome:         models.VerdictRetry,
		Conflicts:       conflicts,
		Recommendations: recommendationsFor(conflicts),
	}, nil
}

// needsHuman applies the escalation rule: cost above the escalation
// limit, or a circular dependency among the location's agents.
func (s *Service) needsHuman(p PlanSubmission, conflicts []models.Conflict) bool {
	if int64(p.EstimatedCost) > s.defaults.CostEscalationLimit {
		return true
	}
	for _, c := range conflicts {
		if c.Kind == models.ConflictCircular {
			return true
		}
	}
	return false
}

// escalate routes a conflict through the intervention channel. With no
// channel (or a channel error) the verdict is an unresolved escalation;
// an approve answer converts it to proceed.
func (s *Service) escalate(ctx context.Context, p PlanSubmission, conflicts []models.Conflict) (models.Verdict, error) {
	verdict := models.Verdict{
		Outcome:         models.VerdictEscalate,
		Conflicts:       conflicts,
		Recommendations: recommendationsFor(conflicts),
		RequiresHuman:   true,
	}

	if s.intervention == nil {
		return verdict, nil
	}

	req := ApprovalRequest{
		ID:        uuid.New().String(),
		Urgency:   urgencyFor(p, conflicts),
		AgentType: p.AgentType,
		Location:  p.Location,
		Options:   interventionOptions,
	}
	for _, c := range conflicts {
		req.Conflicts = append(req.Conflicts, c.Detail)
	}

	decision, err := s.intervention.RequestApproval(ctx, req)
	if err != nil {
		slog.Warn("intervention channel failed, escalating unresolved",
			"approval_id", req.ID, "error", err)
		return verdict, nil
	}
	verdict.Human = &decision

	switch decision.Option {
	case InterventionApprove:
		decisionID, err := s.insertApproved(ctx, p, decision.Approver)
		if err != nil {
			return models.Verdict{}, fmt.Errorf("%w: %v", models.ErrCoordinatorUnavailable, err)
		}
		verdict.Outcome = models.VerdictProceed
		verdict.DecisionID = decisionID
		verdict.RequiresHuman = false
	case InterventionDefer, InterventionModify:
		verdict.Outcome = models.VerdictRetry
		verdict.RequiresHuman = false
	case InterventionReject:
		// Terminal human rejection; the agent maps this to reject.
	}

	slog.Info("human intervention recorded",
		"approval_id", req.ID, "option", decision.Option, "approver", decision.Approver)
	return verdict, nil
}

func urgencyFor(p PlanSubmission, conflicts []models.Conflict) string {
	for _, c := range conflicts {
		if c.Kind == models.ConflictCircular {
			return "high"
		}
	}
	if len(p.WaitsFor) > 0 {
		return "medium"
	}
	return "normal"
}

// insertApproved records the approved plan as a new active row and
// returns the row's ID for the agent to carry through to RecordOutcome.
func (s *Service) insertApproved(ctx context.Context, p PlanSubmission, approver string) (string, error) {
	row := models.CoordinationDecision{
		ID:              uuid.New().String(),
		AgentType:       p.AgentType,
		Location:        p.Location,
		ResourcesNeeded: p.ResourcesNeeded,
		EstimatedCost:   p.EstimatedCost,
		FiscalScope:     p.FiscalScope,
		WaitsFor:        p.WaitsFor,
		Status:          models.CoordinationActive,
		PlanSummary:     p.PlanSummary,
		CreatedAt:       time.Now(),
	}
	if err := s.store.Insert(ctx, row); err != nil {
		return "", err
	}

	slog.Info("plan approved at checkpoint",
		"decision_id", row.ID, "agent_type", p.AgentType, "location", p.Location,
		"estimated_cost", p.EstimatedCost, "approver", approver)
	return row.ID, nil
}

// RecordOutcome transitions the CoordinationDecision row this job's
// checkpoint inserted, identified by the ID the proceed verdict carried
// into the audit record. Jobs whose checkpoint never inserted a row
// (degraded proceed, retry-exhausted escalation, short-circuit) have
// nothing to transition. Idempotent keyed by the audit record's ID;
// retries are safe.
func (s *Service) RecordOutcome(ctx context.Context, rec models.AuditRecord) error {
	if rec.CoordinationID == "" {
		return nil
	}

	s.mu.Lock()
	if _, done := s.recorded[rec.ID]; done {
		s.mu.Unlock()
		return nil
	}
	s.recorded[rec.ID] = struct{}{}
	s.mu.Unlock()

	completed, err := s.store.Complete(ctx, rec.CoordinationID, string(rec.Decision))
	if err != nil {
		// Roll back the idempotency mark so a retry can succeed.
		s.mu.Lock()
		delete(s.recorded, rec.ID)
		s.mu.Unlock()
		return fmt.Errorf("recording outcome: %w", err)
	}
	if completed {
		slog.Info("coordination decision completed",
			"audit_id", rec.ID, "decision_id", rec.CoordinationID,
			"agent_type", rec.AgentType, "location", rec.Location, "decision", rec.Decision)
	}
	return nil
}

// SupersedeStale transitions active rows older than the conflict
// window to superseded. Invoked by the cleanup service.
func (s *Service) SupersedeStale(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.defaults.ConflictWindow)
	return s.store.Supersede(ctx, cutoff)
}

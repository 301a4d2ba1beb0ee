package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cityworks/cityagent/pkg/contextstore"
	"github.com/cityworks/cityagent/pkg/coordinator"
	"github.com/cityworks/cityagent/pkg/llmclient"
	"github.com/cityworks/cityagent/pkg/models"
)

// Pipeline phases, in graph order. The two replanning edges (checkpoint
// retry, repairable feasibility failure) both return to phasePlanner and
// share one retry budget.
type phase int

const (
	phaseValidate phase = iota
	phaseContext
	phaseIntent
	phaseGoal
	phasePlanner
	phaseCheckpoint
	phaseToolExec
	phaseObserver
	phaseFeasibility
	phasePolicy
	phaseMemory
	phaseConfidence
	phaseRouter
	phaseOutput
	phaseDone
)

func (p phase) String() string {
	names := [...]string{
		"validate", "context", "intent", "goal", "planner", "checkpoint",
		"tool_exec", "observer", "feasibility", "policy", "memory",
		"confidence", "router", "output", "done",
	}
	if int(p) < len(names) {
		return names[p]
	}
	return "unknown"
}

const (
	// checkpointTimeout bounds the Phase 6 rendezvous before the
	// pipeline proceeds degraded.
	checkpointTimeout = 10 * time.Second

	// toolStepTimeout bounds one tool call before its step is recorded
	// as a timeout error.
	toolStepTimeout = 5 * time.Second
)

// run carries the per-execution state the AgentState doesn't persist:
// the typed context snapshot, replanning notes, and the
// checkpoint-approval latch.
type run struct {
	a    *Agent
	st   *models.AgentState
	log  *slog.Logger
	snap contextstore.Snapshot

	coordinatorNotes []string
	feasibilityNotes []string

	// approved latches after the first proceed verdict: feasibility
	// replans do not re-submit the already-approved plan, so one job
	// inserts at most one coordination row.
	approved bool

	rationale string
}

// Run executes the pipeline to its terminal phase. The pipeline never
// aborts mid-graph: it either reaches Output or returns ctx's error
// when the Job Manager cancels or times the job out between phases.
func (a *Agent) Run(ctx context.Context, st *models.AgentState) error {
	r := &run{
		a:  a,
		st: st,
		log: slog.With(
			"job_id", st.JobID, "agent_type", a.dept, "request_type", st.Request.Type),
	}
	st.AgentType = a.dept
	st.StartedAt = time.Now()

	current := phaseValidate
	for current != phaseDone {
		if err := ctx.Err(); err != nil {
			r.log.Info("pipeline cancelled", "phase", current.String())
			return err
		}
		next := r.step(ctx, current)
		r.log.Debug("phase complete", "phase", current.String(), "next", next.String())
		current = next
	}
	return nil
}

// step dispatches one phase, converting a panic into a hard escalation
// rather than letting it out of the pipeline.
func (r *run) step(ctx context.Context, p phase) (next phase) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("phase panicked", "phase", p.String(), "panic", rec)
			r.st.Decision = models.DecisionEscalate
			r.st.Reason = fmt.Sprintf("internal error in %s phase", p.String())
			if p < phaseMemory {
				next = phaseMemory
			} else {
				next = phaseOutput
			}
		}
	}()

	switch p {
	case phaseValidate:
		return r.validate()
	case phaseContext:
		return r.loadContext(ctx)
	case phaseIntent:
		return r.analyzeIntent(ctx)
	case phaseGoal:
		return r.setGoal(ctx)
	case phasePlanner:
		return r.plan(ctx)
	case phaseCheckpoint:
		return r.checkpoint(ctx)
	case phaseToolExec:
		return r.executeTools(ctx)
	case phaseObserver:
		return r.observe(ctx)
	case phaseFeasibility:
		return r.evaluateFeasibility()
	case phasePolicy:
		return r.validatePolicy(ctx)
	case phaseMemory:
		return r.logMemory()
	case phaseConfidence:
		return r.estimateConfidence(ctx)
	case phaseRouter:
		return r.route()
	case phaseOutput:
		return r.output(ctx)
	default:
		return phaseDone
	}
}

// validate is Phase 1: request type known to this agent, location
// present, type-specific required fields present.
func (r *run) validate() phase {
	req := r.st.Request

	reject := func(reason string) phase {
		r.st.Decision = models.DecisionReject
		r.st.Reason = fmt.Sprintf("invalid input: %s", reason)
		return phaseMemory
	}

	if req.Location == "" {
		return reject("location is required")
	}
	if !r.a.accepted[req.Type] {
		return reject(fmt.Sprintf("request type %q is not handled by the %s agent", req.Type, r.a.dept))
	}
	for _, field := range requiredFields[req.Type] {
		if _, ok := req.Fields[field]; !ok {
			return reject(fmt.Sprintf("field %q is required for %s", field, req.Type))
		}
	}
	return phaseContext
}

// requiredFields lists type-specific mandatory free-form fields.
var requiredFields = map[string][]string{
	"schedule_shift_request": {"requested_shift_days"},
	"fund_transfer_request":  {"amount"},
	"outbreak_response_request": {"suspected_disease"},
}

// loadContext is Phase 2: bulk read from the Context Store; a failed
// read degrades, never aborts.
func (r *run) loadContext(ctx context.Context) phase {
	snap, err := r.a.deps.Store.Snapshot(ctx, r.st.Request.Location)
	if err != nil {
		r.log.Warn("context store read failed, continuing degraded", "error", err)
		r.st.ContextDegraded = true
		r.st.Context = map[string]any{}
		r.snap = contextstore.Snapshot{Location: r.st.Request.Location}
		return phaseIntent
	}
	r.snap = snap
	r.st.Context = snap.Map()
	return phaseIntent
}

// analyzeIntent is Phase 3. Critical risk short-circuits to escalation
// without planning or tool execution.
func (r *run) analyzeIntent(ctx context.Context) phase {
	fallback := classifyIntent(r.st.Request)
	r.st.Intent = fallback.Intent
	r.st.RiskLevel = fallback.Risk

	var parsed struct {
		Intent    string `json:"intent"`
		RiskLevel string `json:"risk_level"`
	}
	err := r.a.deps.LLM.Call(ctx, llmclient.PhaseIntent, r.a.prompts.Intent(r.st.Request), &parsed)
	if err == nil {
		if parsed.Intent != "" {
			r.st.Intent = parsed.Intent
		}
		if risk := models.RiskLevel(parsed.RiskLevel); validRisk(risk) {
			// The deterministic grade is a floor: the oracle may raise
			// risk but never talk the pipeline out of caution.
			if riskRank(risk) > riskRank(r.st.RiskLevel) {
				r.st.RiskLevel = risk
			}
		}
	}

	if r.st.RiskLevel == models.RiskCritical {
		r.st.Decision = models.DecisionEscalate
		r.st.Reason = "critical risk: immediate human attention required"
		r.log.Info("critical risk short-circuit", "intent", r.st.Intent)
		return phaseMemory
	}
	return phaseGoal
}

func validRisk(r models.RiskLevel) bool {
	return riskRank(r) > 0
}

func riskRank(r models.RiskLevel) int {
	switch r {
	case models.RiskLow:
		return 1
	case models.RiskMedium:
		return 2
	case models.RiskHigh:
		return 3
	case models.RiskCritical:
		return 4
	default:
		return 0
	}
}

// setGoal is Phase 4.
func (r *run) setGoal(ctx context.Context) phase {
	goal, criteria := goalFallback(r.st.Intent, r.st.Request)
	r.st.Goal = goal
	r.st.SuccessCriteria = criteria

	var parsed struct {
		Goal            string   `json:"goal"`
		SuccessCriteria []string `json:"success_criteria"`
	}
	if err := r.a.deps.LLM.Call(ctx, llmclient.PhaseGoal, r.a.prompts.Goal(r.st.Request, r.st.Intent, r.st.Context), &parsed); err == nil {
		if parsed.Goal != "" {
			r.st.Goal = parsed.Goal
		}
		if len(parsed.SuccessCriteria) > 0 {
			r.st.SuccessCriteria = parsed.SuccessCriteria
		}
	}
	return phasePlanner
}

// plan is Phase 5. The LLM generates; on failure or invalid shape the
// per-intent template library supplies the plan.
func (r *run) plan(ctx context.Context) phase {
	in := models.PlannerInput{
		Intent:           r.st.Intent,
		Goal:             r.st.Goal,
		Context:          r.st.Context,
		PriorPlan:        r.st.Plan,
		CoordinatorNotes: r.coordinatorNotes,
		FeasibilityNotes: r.feasibilityNotes,
	}

	var parsed struct {
		Steps []struct {
			Tool      string         `json:"tool"`
			Arguments map[string]any `json:"arguments"`
		} `json:"steps"`
		Constraints             []string `json:"constraints"`
		ExpectedDurationMinutes float64  `json:"expected_duration_minutes"`
		EstimatedCost           float64  `json:"estimated_cost"`
		Summary                 string   `json:"summary"`
	}
	err := r.a.deps.LLM.Call(ctx, llmclient.PhasePlanner, r.a.prompts.Planner(in, r.a.deps.Tools.Names()), &parsed)
	if err != nil || len(parsed.Steps) == 0 {
		r.st.Plan = planFallback(in, r.st.Request)
		return phaseCheckpoint
	}

	plan := &models.Plan{
		Intent:           r.st.Intent,
		Constraints:      parsed.Constraints,
		ExpectedDuration: time.Duration(parsed.ExpectedDurationMinutes) * time.Minute,
		EstimatedCost:    models.Money(parsed.EstimatedCost),
		Summary:          parsed.Summary,
	}
	for _, s := range parsed.Steps {
		plan.Steps = append(plan.Steps, models.PlanStep{Tool: s.Tool, Arguments: s.Arguments})
	}
	if plan.EstimatedCost == 0 && r.st.Request.EstimatedCost != nil {
		plan.EstimatedCost = *r.st.Request.EstimatedCost
	}
	r.st.Plan = plan
	return phaseCheckpoint
}

// checkpoint is Phase 6: the Coordinator rendezvous. Unreachable or
// timed-out coordination degrades to proceed. Once a plan has been
// approved, feasibility replans skip re-submission — the approval
// stands and at most one coordination row exists per job.
func (r *run) checkpoint(ctx context.Context) phase {
	if r.approved {
		return phaseToolExec
	}
	if r.a.deps.Coordinator == nil {
		r.st.CoordinationCheck = &models.CheckpointResult{Verdict: models.Verdict{
			Outcome: models.VerdictProceed, Degraded: true,
		}}
		return phaseToolExec
	}

	callCtx, cancel := context.WithTimeout(ctx, checkpointTimeout)
	defer cancel()

	verdict, err := r.a.deps.Coordinator.CheckPlanConflicts(callCtx, r.submission())
	if err != nil {
		r.log.Warn("coordinator unreachable, proceeding degraded", "error", err)
		r.st.CoordinationCheck = &models.CheckpointResult{Verdict: models.Verdict{
			Outcome: models.VerdictProceed, Degraded: true,
		}}
		return phaseToolExec
	}
	r.st.CoordinationCheck = &models.CheckpointResult{Verdict: verdict}

	switch verdict.Outcome {
	case models.VerdictProceed:
		r.approved = true
		return phaseToolExec

	case models.VerdictRetry:
		if r.st.RetryCount >= r.a.deps.Defaults.MaxRetries {
			r.st.Decision = models.DecisionEscalate
			r.st.Reason = "replanning budget exhausted resolving coordination conflicts"
			return phaseMemory
		}
		r.st.RetryCount++
		r.coordinatorNotes = verdict.Recommendations
		r.log.Info("checkpoint retry", "retry_count", r.st.RetryCount, "recommendations", len(verdict.Recommendations))
		return phasePlanner

	default: // VerdictEscalate
		if verdict.Human != nil && verdict.Human.Option == "reject" {
			r.st.Decision = models.DecisionReject
			r.st.Reason = "plan rejected by human intervention"
		} else {
			r.st.Decision = models.DecisionEscalate
			r.st.Reason = "coordination conflicts require human review"
		}
		return phaseMemory
	}
}

// submission builds the checkpoint payload from the current plan.
func (r *run) submission() coordinator.PlanSubmission {
	p := coordinator.PlanSubmission{
		AgentType:       string(r.a.dept),
		Location:        r.st.Request.Location,
		ResourcesNeeded: r.st.Request.ResourcesNeeded,
		FiscalScope:     "", // general fund; departments with ring-fenced funds set this via request fields
	}
	if scope, _ := r.st.Request.Fields["fiscal_scope"].(string); scope != "" {
		p.FiscalScope = scope
	}
	if r.st.Plan != nil {
		p.EstimatedCost = r.st.Plan.EstimatedCost
		p.WaitsFor = r.st.Plan.WaitsFor
		p.PlanSummary = r.st.Plan.Summary
	}
	return p
}

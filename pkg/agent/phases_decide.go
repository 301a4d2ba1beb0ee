package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cityworks/cityagent/pkg/llmclient"
	"github.com/cityworks/cityagent/pkg/models"
	"github.com/cityworks/cityagent/pkg/rules"
)

// executeTools is Phase 7: run the plan's steps sequentially. Each
// step is a pure query; a failure records an error entry and the
// pipeline continues.
func (r *run) executeTools(ctx context.Context) phase {
	if r.st.Plan == nil {
		return phaseObserver
	}

	for _, step := range r.st.Plan.Steps {
		if err := ctx.Err(); err != nil {
			return phaseObserver // Run's loop surfaces the cancellation
		}
		r.st.ToolResults = append(r.st.ToolResults, r.executeStep(ctx, step))
	}
	return phaseObserver
}

func (r *run) executeStep(ctx context.Context, step models.PlanStep) models.ToolResult {
	result := models.ToolResult{Tool: step.Tool}

	tool, err := r.a.deps.Tools.Get(step.Tool)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	stepCtx, cancel := context.WithTimeout(ctx, toolStepTimeout)
	defer cancel()

	out, err := tool.Execute(stepCtx, r.snap, step.Arguments)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			result.Error = "timeout"
		} else {
			result.Error = err.Error()
		}
		r.log.Warn("tool step failed", "tool", step.Tool, "error", result.Error)
		return result
	}
	result.Output = out
	return result
}

// observe is Phase 8: normalize tool results into flat typed
// observations. The deterministic extractor is the fallback and
// sufficient; an LLM answer replaces it only when well-formed.
func (r *run) observe(ctx context.Context) phase {
	r.st.Observations = observeFallback(r.st.ToolResults)

	var parsed struct {
		Values           map[string]any `json:"values"`
		DataCompleteness float64        `json:"data_completeness"`
	}
	err := r.a.deps.LLM.Call(ctx, llmclient.PhaseObserver, r.a.prompts.Observer(r.st.ToolResults), &parsed)
	if err == nil && len(parsed.Values) > 0 {
		// Deterministic facts win on key collision: the oracle may add
		// derived fields but not overwrite measured ones.
		for k, v := range parsed.Values {
			if _, exists := r.st.Observations.Values[k]; !exists {
				r.st.Observations.Values[k] = v
			}
		}
		if parsed.DataCompleteness > 0 && parsed.DataCompleteness <= 1 {
			r.st.Observations.DataCompleteness = min(r.st.Observations.DataCompleteness, parsed.DataCompleteness)
		}
	}
	return phaseFeasibility
}

// evaluateFeasibility is Phase 9, rules only. A repairable failure
// loops back to the planner while the shared retry budget lasts.
func (r *run) evaluateFeasibility() phase {
	result := r.a.deps.Rules.Feasibility(r.planOrEmpty(), r.st.Observations)
	r.st.Feasible = result.Feasible
	r.st.FeasibilityReason = result.Reason

	if !result.Feasible && result.Repairable && r.st.RetryCount < r.a.deps.Defaults.MaxRetries {
		r.st.RetryCount++
		r.feasibilityNotes = []string{result.Reason}
		r.log.Info("repairable infeasibility, replanning",
			"reason", result.Reason, "retry_count", r.st.RetryCount)
		return phasePlanner
	}
	return phasePolicy
}

// validatePolicy is Phase 10. The pass/fail verdict is rules-owned;
// the LLM may only rephrase the violation text.
func (r *run) validatePolicy(ctx context.Context) phase {
	result := r.a.deps.Rules.Policy(r.planOrEmpty(), r.st.Observations)
	r.st.PolicyOK = result.OK
	r.st.PolicyViolations = result.Violations
	r.st.PoliciesReferenced = result.PoliciesReferenced

	if len(result.Violations) > 0 {
		var parsed struct {
			Violations []string `json:"violations"`
		}
		err := r.a.deps.LLM.Call(ctx, llmclient.PhasePolicy, r.a.prompts.Policy(r.st.Request, result.Violations), &parsed)
		if err == nil && len(parsed.Violations) == len(result.Violations) {
			r.st.PolicyViolations = parsed.Violations
		}
	}
	return phaseMemory
}

// logMemory is Phase 11: compose the rationale and allocate the audit
// ID. The snapshot row itself is appended once, at Output, so it
// carries the terminal decision; the ID on the state is what makes
// RecordOutcome idempotent.
func (r *run) logMemory() phase {
	if r.a.deps.Audit != nil {
		r.st.AuditID = r.a.deps.Audit.AllocateID()
	}
	r.rationale = r.composeRationale()

	// Short-circuit paths (critical risk, checkpoint escalation,
	// invalid input) arrive here with the decision already set and skip
	// straight to output.
	if r.st.Decision != "" {
		return phaseOutput
	}
	return phaseConfidence
}

func (r *run) planOrEmpty() models.Plan {
	if r.st.Plan == nil {
		return models.Plan{Intent: r.st.Intent}
	}
	return *r.st.Plan
}

func (r *run) composeRationale() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("intent %s at %s", r.st.Intent, r.st.Request.Location))
	if r.st.FeasibilityReason != "" {
		parts = append(parts, "feasibility: "+r.st.FeasibilityReason)
	}
	for _, v := range r.st.PolicyViolations {
		parts = append(parts, "violation: "+v)
	}
	if cc := r.st.CoordinationCheck; cc != nil {
		parts = append(parts, fmt.Sprintf("coordination: %s", cc.Outcome))
		if cc.Degraded {
			parts = append(parts, "coordination degraded")
		}
	}
	if r.st.ContextDegraded {
		parts = append(parts, "context degraded")
	}
	if r.st.RetryCount > 0 {
		parts = append(parts, fmt.Sprintf("replanned %d time(s)", r.st.RetryCount))
	}
	return strings.Join(parts, "; ")
}

// estimateConfidence is Phase 12: the deterministic weighted score,
// blended 50/50 with a clamped LLM score when one is available.
func (r *run) estimateConfidence(ctx context.Context) phase {
	det := rules.Confidence(
		r.st.Feasible, r.st.PolicyOK, r.st.RiskLevel,
		r.st.Observations.DataCompleteness, r.st.RetryCount, len(r.st.PolicyViolations))
	r.st.Confidence = det

	var parsed struct {
		Confidence float64 `json:"confidence"`
	}
	err := r.a.deps.LLM.Call(ctx, llmclient.PhaseConfidence, r.a.prompts.Confidence(r.st), &parsed)
	if err == nil {
		llmScore := parsed.Confidence
		if llmScore < 0 {
			llmScore = 0
		}
		if llmScore > 1 {
			llmScore = 1
		}
		r.st.Confidence = (det + llmScore) / 2
	}
	return phaseRouter
}

// route is Phase 13: the decision gate.
func (r *run) route() phase {
	cc := r.st.CoordinationCheck

	switch {
	case cc != nil && cc.Human != nil && cc.Human.Option == "reject":
		r.st.Decision = models.DecisionReject
		r.st.Reason = "plan rejected by human intervention"
	case cc != nil && cc.RequiresHuman:
		r.st.Decision = models.DecisionEscalate
		r.st.Reason = "coordination checkpoint requires human review"
	case !r.st.PolicyOK:
		r.st.Decision = models.DecisionEscalate
		r.st.Reason = fmt.Sprintf("policy violations: %s", strings.Join(r.st.PolicyViolations, "; "))
	case !r.st.Feasible:
		r.st.Decision = models.DecisionEscalate
		r.st.Reason = "plan is not feasible: " + r.st.FeasibilityReason
	case r.st.RiskLevel == models.RiskHigh || r.st.RiskLevel == models.RiskCritical:
		r.st.Decision = models.DecisionEscalate
		r.st.Reason = fmt.Sprintf("%s risk requires human review", r.st.RiskLevel)
	case r.st.Confidence < r.a.deps.Defaults.ConfidenceThreshold:
		r.st.Decision = models.DecisionEscalate
		r.st.Reason = fmt.Sprintf("confidence %.2f below threshold %.2f",
			r.st.Confidence, r.a.deps.Defaults.ConfidenceThreshold)
	default:
		r.st.Decision = models.DecisionRecommend
		r.st.Reason = "all checks passed"
	}
	return phaseOutput
}

// output is Phase 14: build the externally observable response and
// append the audit row.
func (r *run) output(ctx context.Context) phase {
	st := r.st

	details := models.OutputDetails{
		Feasible:          st.Feasible,
		PolicyCompliant:   st.PolicyOK,
		Confidence:        st.Confidence,
		RiskLevel:         st.RiskLevel,
		Plan:              st.Plan,
		PolicyViolations:  st.PolicyViolations,
		Observations:      st.Observations.Values,
		FeasibilityReason: st.FeasibilityReason,
		ContextDegraded:   st.ContextDegraded,
		RetryCount:        st.RetryCount,
	}
	if st.CoordinationCheck != nil {
		details.CoordinationDegraded = st.CoordinationCheck.Degraded
	}

	out := &models.Output{
		Decision:            st.Decision,
		Reason:              st.Reason,
		RequiresHumanReview: st.Decision != models.DecisionRecommend,
		Details:             details,
	}
	if st.Decision == models.DecisionRecommend {
		out.Recommendation = &models.Recommendation{
			Action:     "proceed",
			Plan:       st.Plan,
			Confidence: st.Confidence,
		}
	}
	st.Output = out

	if r.a.deps.Audit != nil {
		var costImpact *models.Money
		if st.Plan != nil && st.Plan.EstimatedCost > 0 {
			c := st.Plan.EstimatedCost
			costImpact = &c
		}
		rec := models.FromState(st.AuditID, st, r.rationale, nil, costImpact)

		// The audit write is the one suspension point past the
		// decision; it must not lose the run to a cancelled job ctx.
		auditCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		if id, err := r.a.deps.Audit.Record(auditCtx, rec); err != nil {
			r.log.Error("audit write failed", "error", err)
		} else {
			st.AuditID = id
		}
	}

	r.log.Info("pipeline complete",
		"decision", st.Decision, "confidence", st.Confidence,
		"feasible", st.Feasible, "policy_ok", st.PolicyOK, "retry_count", st.RetryCount)
	return phaseDone
}

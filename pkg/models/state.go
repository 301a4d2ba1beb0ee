package models

import "time"

// AgentState is the mutable per-request record threaded through the
// pipeline. It is single-writer: each phase reads only fields
// written by earlier phases and writes only its declared outputs. Owned
// exclusively by the pipeline goroutine until the terminal phase, then
// handed to the Job Manager (polling) and Audit Log (by copy).
type AgentState struct {
	JobID     string     `json:"job_id"`
	AgentType Department `json:"agent_type"`
	Request   Request    `json:"request"`

	// Phase 2 — Context loader.
	Context         map[string]any `json:"context,omitempty"`
	ContextDegraded bool           `json:"context_degraded"`

	// Phase 3 — Intent + risk analyzer.
	Intent    string    `json:"intent,omitempty"`
	RiskLevel RiskLevel `json:"risk_level,omitempty"`

	// Phase 4 — Goal setter.
	Goal              string   `json:"goal,omitempty"`
	SuccessCriteria   []string `json:"success_criteria,omitempty"`

	// Phase 5 — Planner.
	Plan *Plan `json:"plan,omitempty"`

	// Shared replanning budget (Phase 6 retry, Phase 9 repairable failure).
	RetryCount int `json:"retry_count"`

	// Phase 6 — Coordination checkpoint.
	CoordinationCheck *CheckpointResult `json:"coordination_check,omitempty"`

	// Phase 7 — Tool executor.
	ToolResults []ToolResult `json:"tool_results,omitempty"`

	// Phase 8 — Observer.
	Observations Observations `json:"observations"`

	// Phase 9 — Feasibility evaluator.
	Feasible          bool   `json:"feasible"`
	FeasibilityReason string `json:"feasibility_reason,omitempty"`

	// Phase 10 — Policy validator.
	PolicyOK           bool     `json:"policy_ok"`
	PolicyViolations   []string `json:"policy_violations,omitempty"`
	PoliciesReferenced []string `json:"policies_referenced,omitempty"`

	// Phase 11 — Memory logger.
	AuditID string `json:"audit_id,omitempty"`

	// Phase 12 — Confidence estimator.
	Confidence float64 `json:"confidence"`

	// Phase 13 — Decision router.
	Decision Decision `json:"decision,omitempty"`
	Reason   string   `json:"reason,omitempty"`

	// Phase 14 — Output generator.
	Output *Output `json:"output,omitempty"`

	StartedAt time.Time `json:"started_at"`
}

// Output is the externally observable response built by the output
// generator.
type Output struct {
	Decision            Decision        `json:"decision"`
	Reason              string          `json:"reason"`
	RequiresHumanReview bool            `json:"requires_human_review"`
	Recommendation      *Recommendation `json:"recommendation,omitempty"`
	Details             OutputDetails   `json:"details"`
}

// Recommendation is present only when Decision == recommend.
type Recommendation struct {
	Action     string  `json:"action"`
	Plan       *Plan   `json:"plan"`
	Confidence float64 `json:"confidence"`
}

// OutputDetails is the always-present diagnostic block of the result
// payload.
type OutputDetails struct {
	Feasible              bool           `json:"feasible"`
	PolicyCompliant       bool           `json:"policy_compliant"`
	Confidence            float64        `json:"confidence"`
	RiskLevel             RiskLevel      `json:"risk_level"`
	Plan                  *Plan          `json:"plan,omitempty"`
	PolicyViolations      []string       `json:"policy_violations,omitempty"`
	Observations          map[string]any `json:"observations,omitempty"`
	FeasibilityReason     string         `json:"feasibility_reason,omitempty"`
	ContextDegraded       bool           `json:"context_degraded"`
	CoordinationDegraded  bool           `json:"coordination_degraded"`
	RetryCount            int            `json:"retry_count"`
}

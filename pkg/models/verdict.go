package models

import "time"

// VerdictOutcome is the Coordinator's response to a checkpoint.
type VerdictOutcome string

const (
	VerdictProceed  VerdictOutcome = "proceed"
	VerdictRetry    VerdictOutcome = "retry"
	VerdictEscalate VerdictOutcome = "escalate"
)

// ConflictKind identifies which detection rule fired.
type ConflictKind string

const (
	ConflictLocation ConflictKind = "location"
	ConflictResource ConflictKind = "resource"
	ConflictBudget   ConflictKind = "budget"
	ConflictCircular ConflictKind = "circular_dependency"
)

// Conflict describes one detected conflict against an existing
// CoordinationDecision row.
type Conflict struct {
	Kind              ConflictKind `json:"kind"`
	WithDecisionID    string       `json:"with_decision_id"`
	WithAgentType     string       `json:"with_agent_type"`
	Detail            string       `json:"detail"`
}

// Verdict is the Coordinator's CheckPlanConflicts response.
type Verdict struct {
	Outcome         VerdictOutcome `json:"outcome"`
	Conflicts       []Conflict     `json:"conflicts,omitempty"`
	Recommendations []string       `json:"recommendations,omitempty"`
	RequiresHuman   bool           `json:"requires_human"`
	Human           *HumanDecision `json:"human_decision,omitempty"`
	Degraded        bool           `json:"degraded,omitempty"` // set by the agent, not the coordinator, when the call itself failed

	// DecisionID is the CoordinationDecision row inserted for a proceed
	// verdict. It travels with the pipeline state into the audit record
	// so RecordOutcome completes exactly the row this job owns — two
	// same-department jobs at one location hold two active rows, and
	// (agent_type, location) alone cannot tell them apart.
	DecisionID string `json:"decision_id,omitempty"`
}

// HumanDecision records how a human resolved an approval request that
// the Coordinator's intervention channel surfaced.
type HumanDecision struct {
	Option    string    `json:"option"` // approve | defer | reject | modify
	Approver  string    `json:"approver"`
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// CheckpointResult is what Phase 6 stores on AgentState.
type CheckpointResult struct {
	Verdict
}

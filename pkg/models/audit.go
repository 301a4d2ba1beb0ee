package models

import "time"

// AuditRecord is the append-only record persisted at Phase 14 (Output
// generator) under the audit ID allocated at Phase 11 (Memory logger).
// It is a frozen copy of the terminal AgentState
// plus the fields the transparency/audit contract requires.
type AuditRecord struct {
	ID                 string
	JobID              string
	AgentType          string
	RequestType        string
	Location           string
	Decision           Decision
	Reason             string
	Rationale          string
	Feasible           bool
	PolicyOK           bool
	Confidence         float64
	RiskLevel          RiskLevel
	RetryCount         int
	PoliciesReferenced []string
	PolicyViolations   []string
	AffectedCitizens   *int
	CostImpact         *Money
	CoordinationID     string // CoordinationDecision row this job's checkpoint inserted, if any
	CoordinationDegraded bool
	ContextDegraded    bool
	Snapshot           *AgentState
	CreatedAt          time.Time
}

// FromState builds an AuditRecord from a terminal AgentState. id is the
// caller-assigned audit ID (uuid), so RecordOutcome can be idempotent by
// ID rather than relying on database-generated keys.
func FromState(id string, st *AgentState, rationale string, affectedCitizens *int, costImpact *Money) AuditRecord {
	degraded := false
	coordinationID := ""
	if st.CoordinationCheck != nil {
		degraded = st.CoordinationCheck.Degraded
		coordinationID = st.CoordinationCheck.DecisionID
	}
	return AuditRecord{
		ID:                   id,
		JobID:                st.JobID,
		AgentType:            string(st.AgentType),
		RequestType:          st.Request.Type,
		Location:             st.Request.Location,
		Decision:             st.Decision,
		Reason:               st.Reason,
		Rationale:            rationale,
		Feasible:             st.Feasible,
		PolicyOK:             st.PolicyOK,
		Confidence:           st.Confidence,
		RiskLevel:            st.RiskLevel,
		RetryCount:           st.RetryCount,
		PoliciesReferenced:   st.PoliciesReferenced,
		PolicyViolations:     st.PolicyViolations,
		AffectedCitizens:     affectedCitizens,
		CostImpact:           costImpact,
		CoordinationID:       coordinationID,
		CoordinationDegraded: degraded,
		ContextDegraded:      st.ContextDegraded,
		Snapshot:             st,
		CreatedAt:            time.Now(),
	}
}

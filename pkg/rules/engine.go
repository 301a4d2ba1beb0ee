// Package rules holds the deterministic, pure-function decision logic
// every department agent runs at Phases 9, 10, and 12. An Engine never
// calls out to the LLM adapter or the Context Store directly — it is
// handed already-gathered Observations and answers synchronously.
package rules

import "github.com/cityworks/cityagent/pkg/models"

// Engine is the per-department predicate set the pipeline calls at the
// Feasibility evaluator (Phase 9) and Policy validator (Phase 10). The LLM
// may inform a phase's surrounding context but may never overrule the
// Feasibility verdict. Confidence (Phase 12) is not department-specific —
// every department shares the single weighted calculator in confidence.go.
type Engine interface {
	// Feasibility reports whether the plan can be executed given the
	// gathered observations, and if not, whether the failure is
	// repairable by replanning.
	Feasibility(plan models.Plan, obs models.Observations) FeasibilityResult

	// Policy checks the plan and observations against department policy
	// constants, independent of feasibility.
	Policy(plan models.Plan, obs models.Observations) PolicyResult
}

// FeasibilityResult is Phase 9's output.
type FeasibilityResult struct {
	Feasible   bool
	Reason     string
	Repairable bool // when Feasible is false, whether a replan could fix it
}

// PolicyResult is Phase 10's output.
type PolicyResult struct {
	OK                 bool
	Violations         []string
	PoliciesReferenced []string
}

// Registry resolves a department's Engine.
type Registry map[models.Department]Engine

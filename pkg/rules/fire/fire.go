// Package fire implements the Feasibility and Policy rules for the Fire
// department agent. Most fire_emergency requests never reach these rules —
// Phase 3 short-circuits risk_level=critical straight to escalation — so
// this engine mainly governs inspection_request planning and any
// fire_emergency that is graded below critical.
package fire

import (
	"fmt"

	"github.com/cityworks/cityagent/pkg/models"
	"github.com/cityworks/cityagent/pkg/rules"
)

const (
	// MaxInspectionBacklogDays bounds how overdue a building's last safety
	// inspection may be before a new inspection_request is deferred pending
	// crew availability rather than scheduled outright.
	MaxInspectionBacklogDays = 180

	// MaxBudgetUtilization bounds the fraction of a location's fire-safety
	// budget a single plan may commit. Emergency intents override this.
	MaxBudgetUtilization = 0.90

	// MinResponseCrewCount is the minimum crew strength a plan must retain
	// after this commitment, so responding to this request never leaves a
	// zone without emergency coverage.
	MinResponseCrewCount = 1
)

// Engine implements rules.Engine for Fire.
type Engine struct{}

var _ rules.Engine = Engine{}

func (Engine) Feasibility(plan models.Plan, obs models.Observations) rules.FeasibilityResult {
	switch plan.Intent {
	case "inspection_request":
		backlogDays := obs.Number("inspection_backlog_days")
		if backlogDays > MaxInspectionBacklogDays && !obs.Bool("crew_available") {
			return rules.FeasibilityResult{
				Feasible:   false,
				Repairable: true,
				Reason:     "inspection crew unavailable this cycle, reschedulable next rotation",
			}
		}
		return rules.FeasibilityResult{Feasible: true}

	case "respond_emergency":
		if obs.Number("available_crew_count") < MinResponseCrewCount {
			return rules.FeasibilityResult{
				Feasible: false,
				Reason:   "no crew available to dispatch",
			}
		}
		return rules.FeasibilityResult{Feasible: true}

	default:
		return rules.FeasibilityResult{Feasible: true}
	}
}

func (Engine) Policy(plan models.Plan, obs models.Observations) rules.PolicyResult {
	result := rules.PolicyResult{OK: true, PoliciesReferenced: []string{"fire.min_response_crew_count"}}

	if plan.Intent != "respond_emergency" {
		result.PoliciesReferenced = append(result.PoliciesReferenced, "fire.max_budget_utilization")
		utilization := obs.Number("budget_utilization")
		if utilization > MaxBudgetUtilization {
			result.OK = false
			result.Violations = append(result.Violations,
				fmt.Sprintf("budget utilization %.0f%% exceeds %.0f%% cap", utilization*100, MaxBudgetUtilization*100))
		}
	}

	remainingCrew := obs.Number("available_crew_count")
	if remainingCrew < MinResponseCrewCount {
		result.OK = false
		result.Violations = append(result.Violations,
			fmt.Sprintf("plan would leave %d crew on standby, below the %d minimum", int(remainingCrew), MinResponseCrewCount))
	}

	return result
}

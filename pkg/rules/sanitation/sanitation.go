// Package sanitation implements the Feasibility and Policy rules for the
// Sanitation department agent: collection scheduling and disposal capacity.
package sanitation

import (
	"fmt"

	"github.com/cityworks/cityagent/pkg/models"
	"github.com/cityworks/cityagent/pkg/rules"
)

const (
	// MaxDisposalUtilization bounds the fraction of a landfill or transfer
	// station's rated capacity a single plan may commit.
	MaxDisposalUtilization = 0.85

	// MaxRouteDeviationStops bounds how many stops a collection_schedule_request
	// may add to an existing route before it is treated as infeasible without
	// a route redesign.
	MaxRouteDeviationStops = 15

	// MaxBudgetUtilization bounds the fraction of the sanitation budget a
	// single plan may commit.
	MaxBudgetUtilization = 0.80
)

// Engine implements rules.Engine for Sanitation.
type Engine struct{}

var _ rules.Engine = Engine{}

func (Engine) Feasibility(plan models.Plan, obs models.Observations) rules.FeasibilityResult {
	switch plan.Intent {
	case "collection_schedule_request":
		deviation := obs.Number("route_deviation_stops")
		if deviation > MaxRouteDeviationStops {
			return rules.FeasibilityResult{
				Feasible:   false,
				Repairable: true,
				Reason:     fmt.Sprintf("route deviation of %d stops exceeds %d, needs a redesigned route", int(deviation), MaxRouteDeviationStops),
			}
		}
		return rules.FeasibilityResult{Feasible: true}

	case "disposal_capacity_query":
		if obs.Number("disposal_utilization") >= 1.0 {
			return rules.FeasibilityResult{
				Feasible: false,
				Reason:   "disposal facility at full capacity",
			}
		}
		return rules.FeasibilityResult{Feasible: true}

	default:
		return rules.FeasibilityResult{Feasible: true}
	}
}

func (Engine) Policy(plan models.Plan, obs models.Observations) rules.PolicyResult {
	result := rules.PolicyResult{OK: true, PoliciesReferenced: []string{"sanitation.max_disposal_utilization", "sanitation.max_budget_utilization"}}

	if utilization := obs.Number("disposal_utilization"); utilization > MaxDisposalUtilization {
		result.OK = false
		result.Violations = append(result.Violations,
			fmt.Sprintf("disposal utilization %.0f%% exceeds %.0f%% cap", utilization*100, MaxDisposalUtilization*100))
	}

	if utilization := obs.Number("budget_utilization"); utilization > MaxBudgetUtilization {
		result.OK = false
		result.Violations = append(result.Violations,
			fmt.Sprintf("budget utilization %.0f%% exceeds %.0f%% cap", utilization*100, MaxBudgetUtilization*100))
	}

	return result
}

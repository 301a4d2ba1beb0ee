// Package water implements the Feasibility and Policy rules
// for the Water department agent.
package water

import (
	"fmt"

	"github.com/cityworks/cityagent/pkg/models"
	"github.com/cityworks/cityagent/pkg/rules"
)

// Department policy constants.
const (
	// MaxShiftDelayDays is the longest a shift request may slip before
	// manpower shortfall is treated as irrecoverable rather than repairable.
	MaxShiftDelayDays = 3

	// MinMaintenanceNoticeHours is the minimum lead time a maintenance
	// request must give before the affected location's supply is cut.
	MinMaintenanceNoticeHours = 24

	// MaxBudgetUtilization bounds the fraction of a location's allocated
	// water budget a single plan may consume.
	MaxBudgetUtilization = 0.80
)

// Engine implements rules.Engine for Water.
type Engine struct{}

var _ rules.Engine = Engine{}

func (Engine) Feasibility(plan models.Plan, obs models.Observations) rules.FeasibilityResult {
	switch plan.Intent {
	case "negotiate_schedule":
		if obs.Bool("manpower_available") {
			return rules.FeasibilityResult{Feasible: true}
		}
		shortfallDays := obs.Number("shortfall_days")
		if shortfallDays > 0 && shortfallDays <= MaxShiftDelayDays {
			return rules.FeasibilityResult{
				Feasible:   false,
				Repairable: true,
				Reason:     fmt.Sprintf("manpower shortfall of %.0f day(s), schedulable on an alternate shift", shortfallDays),
			}
		}
		return rules.FeasibilityResult{
			Feasible: false,
			Reason:   "manpower shortfall exceeds schedulable window",
		}

	case "schedule_maintenance":
		noticeHours := obs.Number("notice_hours")
		if noticeHours < MinMaintenanceNoticeHours {
			return rules.FeasibilityResult{
				Feasible:   false,
				Repairable: true,
				Reason:     "maintenance notice below minimum lead time",
			}
		}
		return rules.FeasibilityResult{Feasible: true}

	default: // capacity_query and similar read-only intents are always feasible
		return rules.FeasibilityResult{Feasible: true}
	}
}

func (Engine) Policy(plan models.Plan, obs models.Observations) rules.PolicyResult {
	result := rules.PolicyResult{OK: true, PoliciesReferenced: []string{"water.max_budget_utilization"}}

	utilization := obs.Number("budget_utilization")
	if utilization > MaxBudgetUtilization && plan.Intent != "respond_emergency" {
		result.OK = false
		result.Violations = append(result.Violations,
			fmt.Sprintf("budget utilization %.0f%% exceeds %.0f%% cap", utilization*100, MaxBudgetUtilization*100))
	}

	return result
}


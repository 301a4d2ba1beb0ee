// Package health implements the Feasibility and Policy rules for the Health
// department agent: inspections and outbreak response.
package health

import (
	"fmt"

	"github.com/cityworks/cityagent/pkg/models"
	"github.com/cityworks/cityagent/pkg/rules"
)

const (
	// MaxInspectionBacklogDays bounds how overdue a facility's last health
	// inspection may be before a new request is deferred pending availability.
	MaxInspectionBacklogDays = 90

	// MaxOutbreakCaseThreshold above which an outbreak_response_request
	// requires a declared emergency override rather than routine dispatch.
	MaxOutbreakCaseThreshold = 25

	// MaxBudgetUtilization bounds the fraction of the health budget a single
	// plan may commit. Outbreak response overrides this.
	MaxBudgetUtilization = 0.80
)

// Engine implements rules.Engine for Health.
type Engine struct{}

var _ rules.Engine = Engine{}

func (Engine) Feasibility(plan models.Plan, obs models.Observations) rules.FeasibilityResult {
	switch plan.Intent {
	case "health_inspection_request":
		backlogDays := obs.Number("inspection_backlog_days")
		if backlogDays > MaxInspectionBacklogDays && !obs.Bool("inspector_available") {
			return rules.FeasibilityResult{
				Feasible:   false,
				Repairable: true,
				Reason:     "no inspector available this cycle, reschedulable next rotation",
			}
		}
		return rules.FeasibilityResult{Feasible: true}

	case "outbreak_response_request":
		if obs.Number("available_response_teams") < 1 {
			return rules.FeasibilityResult{
				Feasible: false,
				Reason:   "no response team available to dispatch",
			}
		}
		return rules.FeasibilityResult{Feasible: true}

	default:
		return rules.FeasibilityResult{Feasible: true}
	}
}

func (Engine) Policy(plan models.Plan, obs models.Observations) rules.PolicyResult {
	result := rules.PolicyResult{OK: true, PoliciesReferenced: []string{"health.max_outbreak_case_threshold"}}

	caseCount := obs.Number("reported_case_count")
	isDeclaredEmergency := caseCount > MaxOutbreakCaseThreshold

	if plan.Intent != "outbreak_response_request" || !isDeclaredEmergency {
		result.PoliciesReferenced = append(result.PoliciesReferenced, "health.max_budget_utilization")
		if utilization := obs.Number("budget_utilization"); utilization > MaxBudgetUtilization {
			result.OK = false
			result.Violations = append(result.Violations,
				fmt.Sprintf("budget utilization %.0f%% exceeds %.0f%% cap", utilization*100, MaxBudgetUtilization*100))
		}
	}

	if plan.Intent == "outbreak_response_request" && obs.Number("available_response_teams") < 1 {
		result.OK = false
		result.Violations = append(result.Violations, "no response team available for declared outbreak")
	}

	return result
}

// Package engineering implements the Feasibility and Policy rules for the
// Engineering department agent — the routing default for general
// municipal work, per config.DefaultAgent.
package engineering

import (
	"fmt"

	"github.com/cityworks/cityagent/pkg/models"
	"github.com/cityworks/cityagent/pkg/rules"
)

const (
	// MaxConcurrentProjects bounds how many active projects a single
	// location may carry before new project_planning requests defer.
	MaxConcurrentProjects = 4

	// MaxBudgetUtilization bounds the fraction of a location's capital
	// budget a single plan may commit.
	MaxBudgetUtilization = 0.75
)

type Engine struct{}

var _ rules.Engine = Engine{}

func (Engine) Feasibility(plan models.Plan, obs models.Observations) rules.FeasibilityResult {
	if plan.Intent != "project_planning" {
		return rules.FeasibilityResult{Feasible: true}
	}

	active := obs.Number("active_project_count")
	if active >= MaxConcurrentProjects {
		return rules.FeasibilityResult{
			Feasible:   false,
			Repairable: false,
			Reason:     fmt.Sprintf("location already carries %d concurrent projects", int(active)),
		}
	}
	return rules.FeasibilityResult{Feasible: true}
}

func (Engine) Policy(plan models.Plan, obs models.Observations) rules.PolicyResult {
	result := rules.PolicyResult{OK: true, PoliciesReferenced: []string{"engineering.max_budget_utilization"}}

	utilization := obs.Number("budget_utilization")
	if utilization > MaxBudgetUtilization {
		result.OK = false
		result.Violations = append(result.Violations,
			fmt.Sprintf("budget utilization %.0f%% exceeds %.0f%% cap", utilization*100, MaxBudgetUtilization*100))
	}

	return result
}

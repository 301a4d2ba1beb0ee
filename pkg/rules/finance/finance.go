// Package finance implements the Feasibility and Policy rules for the
// Finance department agent: budget allocation and fund transfers.
package finance

import (
	"fmt"

	"github.com/cityworks/cityagent/pkg/models"
	"github.com/cityworks/cityagent/pkg/rules"
)

const (
	// MaxFundTransferFraction bounds the fraction of a fund's total
	// allocation a single fund_transfer_request may move out in one plan.
	MaxFundTransferFraction = 0.25

	// MaxBudgetUtilization bounds the fraction of the requesting
	// department's annual budget a budget_allocation_request may commit.
	MaxBudgetUtilization = 0.95

	// MinReserveFraction is the minimum fraction of total fund allocation
	// that must remain unencumbered after a transfer.
	MinReserveFraction = 0.10
)

// Engine implements rules.Engine for Finance.
type Engine struct{}

var _ rules.Engine = Engine{}

func (Engine) Feasibility(plan models.Plan, obs models.Observations) rules.FeasibilityResult {
	switch plan.Intent {
	case "fund_transfer_request":
		available := obs.Number("fund_allocation_remaining")
		if available <= 0 {
			return rules.FeasibilityResult{
				Feasible: false,
				Reason:   "no remaining allocation to transfer from",
			}
		}
		return rules.FeasibilityResult{Feasible: true}

	case "budget_allocation_request":
		if obs.Number("fiscal_year_closed") != 0 {
			return rules.FeasibilityResult{
				Feasible:   false,
				Repairable: true,
				Reason:     "fiscal year closed, allocation must wait for the next cycle",
			}
		}
		return rules.FeasibilityResult{Feasible: true}

	default:
		return rules.FeasibilityResult{Feasible: true}
	}
}

func (Engine) Policy(plan models.Plan, obs models.Observations) rules.PolicyResult {
	result := rules.PolicyResult{OK: true}

	switch plan.Intent {
	case "fund_transfer_request":
		result.PoliciesReferenced = append(result.PoliciesReferenced, "finance.max_fund_transfer_fraction", "finance.min_reserve_fraction")
		total := obs.Number("fund_allocation_total")
		remaining := obs.Number("fund_allocation_remaining")
		transferAmount := obs.Number("transfer_amount")

		if total > 0 && transferAmount/total > MaxFundTransferFraction {
			result.OK = false
			result.Violations = append(result.Violations,
				fmt.Sprintf("transfer of %.0f exceeds %.0f%% of total fund allocation", transferAmount, MaxFundTransferFraction*100))
		}
		if total > 0 && (remaining-transferAmount)/total < MinReserveFraction {
			result.OK = false
			result.Violations = append(result.Violations,
				fmt.Sprintf("transfer would leave reserve below %.0f%% of total allocation", MinReserveFraction*100))
		}

	case "budget_allocation_request":
		result.PoliciesReferenced = append(result.PoliciesReferenced, "finance.max_budget_utilization")
		if utilization := obs.Number("budget_utilization"); utilization > MaxBudgetUtilization {
			result.OK = false
			result.Violations = append(result.Violations,
				fmt.Sprintf("budget utilization %.0f%% exceeds %.0f%% cap", utilization*100, MaxBudgetUtilization*100))
		}
	}

	return result
}

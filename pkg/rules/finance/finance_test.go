package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cityworks/cityagent/pkg/models"
)

func TestFeasibility_FundTransferRequest(t *testing.T) {
	eng := Engine{}
	plan := models.Plan{Intent: "fund_transfer_request"}

	result := eng.Feasibility(plan, models.Observations{Values: map[string]any{"fund_allocation_remaining": 1000.0}})
	assert.True(t, result.Feasible)

	result = eng.Feasibility(plan, models.Observations{Values: map[string]any{"fund_allocation_remaining": 0.0}})
	assert.False(t, result.Feasible)
}

func TestFeasibility_BudgetAllocationRequest_FiscalYearClosed(t *testing.T) {
	eng := Engine{}
	plan := models.Plan{Intent: "budget_allocation_request"}

	result := eng.Feasibility(plan, models.Observations{Values: map[string]any{"fiscal_year_closed": 1.0}})
	assert.False(t, result.Feasible)
	assert.True(t, result.Repairable)
}

func TestPolicy_FundTransferReserveAndCap(t *testing.T) {
	eng := Engine{}
	plan := models.Plan{Intent: "fund_transfer_request"}

	ok := eng.Policy(plan, models.Observations{Values: map[string]any{
		"fund_allocation_total":     1000.0,
		"fund_allocation_remaining": 500.0,
		"transfer_amount":           100.0,
	}})
	assert.True(t, ok.OK)

	tooMuch := eng.Policy(plan, models.Observations{Values: map[string]any{
		"fund_allocation_total":     1000.0,
		"fund_allocation_remaining": 500.0,
		"transfer_amount":           400.0,
	}})
	assert.False(t, tooMuch.OK)
}

func TestPolicy_BudgetAllocationCap(t *testing.T) {
	eng := Engine{}
	plan := models.Plan{Intent: "budget_allocation_request"}

	result := eng.Policy(plan, models.Observations{Values: map[string]any{"budget_utilization": 0.99}})
	assert.False(t, result.OK)
}

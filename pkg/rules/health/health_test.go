package health

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cityworks/cityagent/pkg/models"
)

func TestFeasibility_HealthInspectionRequest(t *testing.T) {
	eng := Engine{}
	plan := models.Plan{Intent: "health_inspection_request"}

	result := eng.Feasibility(plan, models.Observations{Values: map[string]any{"inspection_backlog_days": 10.0}})
	assert.True(t, result.Feasible)

	result = eng.Feasibility(plan, models.Observations{Values: map[string]any{"inspection_backlog_days": 120.0, "inspector_available": false}})
	assert.False(t, result.Feasible)
	assert.True(t, result.Repairable)
}

func TestPolicy_OutbreakOverridesBudgetCap(t *testing.T) {
	eng := Engine{}
	obs := models.Observations{Values: map[string]any{
		"reported_case_count":      40.0,
		"budget_utilization":       0.99,
		"available_response_teams": 2.0,
	}}

	result := eng.Policy(models.Plan{Intent: "outbreak_response_request"}, obs)
	assert.True(t, result.OK, "declared outbreak should bypass the routine budget cap")
}

func TestPolicy_NoResponseTeamBlocksDeclaredOutbreak(t *testing.T) {
	eng := Engine{}
	obs := models.Observations{Values: map[string]any{
		"reported_case_count":      40.0,
		"available_response_teams": 0.0,
	}}

	result := eng.Policy(models.Plan{Intent: "outbreak_response_request"}, obs)
	assert.False(t, result.OK)
}

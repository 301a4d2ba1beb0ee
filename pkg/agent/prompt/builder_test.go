package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cityworks/cityagent/pkg/models"
)

func TestIntentPromptCarriesRequest(t *testing.T) {
	b := NewBuilder(models.DepartmentWater)
	req := models.Request{Type: "schedule_shift_request", Location: "Downtown", Originator: "ops"}

	p := b.Intent(req)
	assert.Contains(t, p, "water")
	assert.Contains(t, p, "schedule_shift_request")
	assert.Contains(t, p, "Downtown")
	assert.Contains(t, p, "single JSON object")
}

func TestPlannerPromptIncludesReplanNotes(t *testing.T) {
	b := NewBuilder(models.DepartmentEngineering)
	prior := &models.Plan{Intent: "project_planning", Summary: "survey first"}

	p := b.Planner(models.PlannerInput{
		Intent:           "project_planning",
		Goal:             "plan the flyover",
		PriorPlan:        prior,
		CoordinatorNotes: []string{"defer by one shift"},
		FeasibilityNotes: []string{"insufficient manpower"},
	}, []string{"check_active_projects"})

	assert.Contains(t, p, "defer by one shift")
	assert.Contains(t, p, "insufficient manpower")
	assert.Contains(t, p, "Keep the same tool selection")
	assert.Contains(t, p, "check_active_projects")
}

func TestContextBlockBounded(t *testing.T) {
	big := map[string]any{"blob": string(make([]byte, 20_000))}
	block := contextBlock(big)
	assert.LessOrEqual(t, len(block), 9000)
}

func TestEveryDepartmentHasFocus(t *testing.T) {
	for _, d := range []models.Department{
		models.DepartmentWater, models.DepartmentEngineering, models.DepartmentFire,
		models.DepartmentSanitation, models.DepartmentHealth, models.DepartmentFinance,
	} {
		assert.NotEmpty(t, departmentFocus[d], "department %s missing focus line", d)
	}
}

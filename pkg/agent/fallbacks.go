package agent

import (
	"fmt"
	"strings"
	"time"

	"github.com/cityworks/cityagent/pkg/models"
)

// Deterministic fallbacks for the LLM-backed phases. Each one is
// sufficient to complete its phase: with every USE_LLM_FOR_* flag off
// the pipeline still reaches a terminal decision.

// intentClassification is the (intent, base risk) pair intentTable
// maps each request type to.
type intentClassification struct {
	Intent string
	Risk   models.RiskLevel
}

var intentTable = map[string]intentClassification{
	"schedule_shift_request": {"negotiate_schedule", models.RiskLow},
	"maintenance_request":    {"schedule_maintenance", models.RiskMedium},
	"capacity_query":         {"capacity_query", models.RiskLow},

	"project_planning":     {"project_planning", models.RiskMedium},
	"infrastructure_query": {"infrastructure_query", models.RiskLow},

	"fire_emergency":     {"respond_emergency", models.RiskHigh},
	"inspection_request": {"inspection_request", models.RiskLow},

	"collection_schedule_request": {"collection_schedule_request", models.RiskLow},
	"disposal_capacity_query":     {"disposal_capacity_query", models.RiskLow},

	"health_inspection_request": {"health_inspection_request", models.RiskLow},
	"outbreak_response_request": {"outbreak_response_request", models.RiskHigh},

	"budget_allocation_request": {"budget_allocation_request", models.RiskMedium},
	"fund_transfer_request":     {"fund_transfer_request", models.RiskMedium},
}

// classifyIntent is the Phase 3 fallback. A declared priority in the
// request's free-form fields raises the grade; it never lowers it.
func classifyIntent(req models.Request) intentClassification {
	c, ok := intentTable[req.Type]
	if !ok {
		c = intentClassification{Intent: "general_inquiry", Risk: models.RiskMedium}
	}

	if priority, _ := req.Fields["priority"].(string); priority != "" {
		switch priority {
		case "critical":
			c.Risk = models.RiskCritical
		case "high":
			if c.Risk == models.RiskLow || c.Risk == models.RiskMedium {
				c.Risk = models.RiskHigh
			}
		}
	}
	return c
}

// goalFallback is the Phase 4 fallback: a templated objective per
// intent.
func goalFallback(intent string, req models.Request) (string, []string) {
	goal := fmt.Sprintf("Resolve the %s request for %s within department policy.", intent, req.Location)
	criteria := []string{
		"all required facts gathered from department systems",
		"no unresolved cross-department conflicts",
		"decision within policy constants",
	}
	return goal, criteria
}

// defaultPlanSteps is the per-intent template library the Phase 5
// fallback draws from.
var defaultPlanSteps = map[string][]models.PlanStep{
	"negotiate_schedule": {
		{Tool: "check_manpower"},
		{Tool: "check_pipeline_health"},
		{Tool: "check_budget_remaining"},
	},
	"schedule_maintenance": {
		{Tool: "check_maintenance_window"},
		{Tool: "check_manpower"},
		{Tool: "check_budget_remaining"},
	},
	"capacity_query": {
		{Tool: "check_pipeline_health"},
		{Tool: "check_budget_remaining"},
	},
	"project_planning": {
		{Tool: "check_active_projects"},
		{Tool: "check_infrastructure_condition"},
		{Tool: "check_budget_remaining"},
	},
	"infrastructure_query": {
		{Tool: "check_infrastructure_condition"},
	},
	"respond_emergency": {
		{Tool: "check_crew_availability"},
		{Tool: "check_incident_history"},
	},
	"inspection_request": {
		{Tool: "check_inspection_backlog"},
		{Tool: "check_crew_availability"},
		{Tool: "check_budget_remaining"},
	},
	"collection_schedule_request": {
		{Tool: "check_route_capacity"},
		{Tool: "check_budget_remaining"},
	},
	"disposal_capacity_query": {
		{Tool: "check_disposal_capacity"},
	},
	"health_inspection_request": {
		{Tool: "check_inspector_availability"},
		{Tool: "check_budget_remaining"},
	},
	"outbreak_response_request": {
		{Tool: "check_response_teams"},
		{Tool: "check_case_reports"},
	},
	"budget_allocation_request": {
		{Tool: "check_fund_allocation"},
		{Tool: "check_fiscal_calendar"},
		{Tool: "check_budget_remaining"},
	},
	"fund_transfer_request": {
		{Tool: "check_fund_allocation"},
		{Tool: "check_transfer_limits"},
		{Tool: "check_budget_remaining"},
	},
}

// planFallback is the Phase 5 fallback: the intent's template plan,
// parameterized from the request and any replanning notes. On a
// replanning loop the notes become constraints and, where a note names
// a concrete repair (an alternate shift), the matching step argument.
func planFallback(in models.PlannerInput, req models.Request) *models.Plan {
	steps := defaultPlanSteps[in.Intent]
	if steps == nil {
		steps = []models.PlanStep{{Tool: "check_budget_remaining"}}
	}

	plan := &models.Plan{
		Intent:           in.Intent,
		ExpectedDuration: 30 * time.Minute,
		Summary:          fmt.Sprintf("%s at %s (template plan)", in.Intent, req.Location),
	}
	if req.EstimatedCost != nil {
		plan.EstimatedCost = *req.EstimatedCost
	}

	useAlternateShift := false
	for _, note := range append(append([]string{}, in.CoordinatorNotes...), in.FeasibilityNotes...) {
		plan.Constraints = append(plan.Constraints, note)
		if strings.Contains(note, "alternate shift") || strings.Contains(note, "defer by one shift") {
			useAlternateShift = true
		}
	}

	for _, tmpl := range steps {
		step := models.PlanStep{Tool: tmpl.Tool, Arguments: map[string]any{}}
		switch tmpl.Tool {
		case "check_manpower":
			if n, ok := req.Fields["required_workers"].(float64); ok {
				step.Arguments["required_workers"] = n
			}
			if useAlternateShift {
				step.Arguments["shift"] = "alternate"
			}
		case "check_maintenance_window":
			if n, ok := req.Fields["notice_hours"].(float64); ok {
				step.Arguments["notice_hours"] = n
			}
		case "check_route_capacity":
			if n, ok := req.Fields["route_deviation_stops"].(float64); ok {
				step.Arguments["route_deviation_stops"] = n
			}
		case "check_transfer_limits":
			if n, ok := req.Fields["amount"].(float64); ok {
				step.Arguments["amount"] = n
			}
		}
		plan.Steps = append(plan.Steps, step)
	}
	return plan
}

// observeFallback is the Phase 8 fallback: flatten every successful
// step's output into one observations record; completeness is the
// fraction of steps that produced output.
func observeFallback(results []models.ToolResult) models.Observations {
	obs := models.Observations{Values: map[string]any{}, DataCompleteness: 1}
	if len(results) == 0 {
		return obs
	}

	succeeded := 0
	for _, r := range results {
		if r.Error != "" {
			continue
		}
		succeeded++
		for k, v := range r.Output {
			obs.Values[k] = v
		}
	}
	obs.DataCompleteness = float64(succeeded) / float64(len(results))
	return obs
}

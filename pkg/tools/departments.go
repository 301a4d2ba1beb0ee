package tools

import (
	"context"

	"github.com/cityworks/cityagent/pkg/contextstore"
	"github.com/cityworks/cityagent/pkg/models"
)

// ForDepartment returns the tool registry for one department agent.
func ForDepartment(dept models.Department) *Registry {
	switch dept {
	case models.DepartmentWater:
		return waterTools()
	case models.DepartmentEngineering:
		return engineeringTools()
	case models.DepartmentFire:
		return fireTools()
	case models.DepartmentSanitation:
		return sanitationTools()
	case models.DepartmentHealth:
		return healthTools()
	case models.DepartmentFinance:
		return financeTools()
	default:
		return NewRegistry()
	}
}

// checkBudgetRemaining is shared by every department.
func checkBudgetRemaining() Tool {
	return NewTool("check_budget_remaining",
		"Remaining and allocated budget for the location, with utilization.",
		func(_ context.Context, snap contextstore.Snapshot, _ map[string]any) (map[string]any, error) {
			return map[string]any{
				"budget_allocated":   float64(snap.BudgetAllocated),
				"budget_remaining":   float64(snap.BudgetRemaining),
				"budget_utilization": snap.BudgetUtilization(),
			}, nil
		})
}

func argNumber(args map[string]any, key string) float64 {
	switch v := args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func waterTools() *Registry {
	return NewRegistry(
		NewTool("check_manpower",
			"Water crew availability against the requested shift, with shortfall in days.",
			func(_ context.Context, snap contextstore.Snapshot, args map[string]any) (map[string]any, error) {
				required := argNumber(args, "required_workers")
				if required == 0 {
					required = 4 // standard water shift crew
				}
				crewKey := "water_crew"
				if shift, _ := args["shift"].(string); shift == "alternate" {
					crewKey = "water_crew_alternate"
				}
				available := float64(snap.WorkerAvailability[crewKey])
				out := map[string]any{
					"available_workers":  available,
					"manpower_available": available >= required,
				}
				if available < required {
					out["shortfall_days"] = snap.Metric("crew_shortfall_days")
				}
				return out, nil
			}),
		NewTool("check_pipeline_health",
			"Condition grade of the pipeline assets serving the location.",
			func(_ context.Context, snap contextstore.Snapshot, _ map[string]any) (map[string]any, error) {
				condition := snap.InfrastructureHealth["pipeline"]
				if condition == "" {
					condition = "unknown"
				}
				return map[string]any{"pipeline_condition": condition}, nil
			}),
		NewTool("check_maintenance_window",
			"Lead time until the requested maintenance window opens, in hours.",
			func(_ context.Context, snap contextstore.Snapshot, args map[string]any) (map[string]any, error) {
				notice := argNumber(args, "notice_hours")
				if notice == 0 {
					notice = snap.Metric("maintenance_notice_hours")
				}
				return map[string]any{"notice_hours": notice}, nil
			}),
		checkBudgetRemaining(),
	)
}

func engineeringTools() *Registry {
	return NewRegistry(
		NewTool("check_active_projects",
			"Count and list of active projects at the location.",
			func(_ context.Context, snap contextstore.Snapshot, _ map[string]any) (map[string]any, error) {
				return map[string]any{
					"active_project_count": float64(len(snap.ActiveProjects)),
					"active_projects":      snap.ActiveProjects,
				}, nil
			}),
		NewTool("check_infrastructure_condition",
			"Condition grades of the location's tracked infrastructure assets.",
			func(_ context.Context, snap contextstore.Snapshot, _ map[string]any) (map[string]any, error) {
				return map[string]any{"infrastructure_health": snap.InfrastructureHealth}, nil
			}),
		checkBudgetRemaining(),
	)
}

func fireTools() *Registry {
	return NewRegistry(
		NewTool("check_crew_availability",
			"Fire crew headcount available for dispatch at the location.",
			func(_ context.Context, snap contextstore.Snapshot, _ map[string]any) (map[string]any, error) {
				count := float64(snap.WorkerAvailability["fire_crew"])
				return map[string]any{
					"available_crew_count": count,
					"crew_available":       count > 0,
				}, nil
			}),
		NewTool("check_inspection_backlog",
			"Age of the oldest pending fire-safety inspection, in days.",
			func(_ context.Context, snap contextstore.Snapshot, _ map[string]any) (map[string]any, error) {
				return map[string]any{"inspection_backlog_days": snap.Metric("inspection_backlog_days")}, nil
			}),
		NewTool("check_incident_history",
			"Recent incidents at the location within the lookback window.",
			func(_ context.Context, snap contextstore.Snapshot, _ map[string]any) (map[string]any, error) {
				return map[string]any{
					"recent_incident_count": float64(len(snap.RecentIncidents)),
					"recent_incidents":      snap.RecentIncidents,
				}, nil
			}),
		checkBudgetRemaining(),
	)
}

func sanitationTools() *Registry {
	return NewRegistry(
		NewTool("check_route_capacity",
			"Collection route load and the stop deviation a schedule change would introduce.",
			func(_ context.Context, snap contextstore.Snapshot, args map[string]any) (map[string]any, error) {
				deviation := argNumber(args, "route_deviation_stops")
				if deviation == 0 {
					deviation = snap.Metric("route_deviation_stops")
				}
				return map[string]any{"route_deviation_stops": deviation}, nil
			}),
		NewTool("check_disposal_capacity",
			"Utilization of the disposal sites serving the location.",
			func(_ context.Context, snap contextstore.Snapshot, _ map[string]any) (map[string]any, error) {
				return map[string]any{"disposal_utilization": snap.Metric("disposal_utilization")}, nil
			}),
		checkBudgetRemaining(),
	)
}

func healthTools() *Registry {
	return NewRegistry(
		NewTool("check_inspector_availability",
			"Sanitary inspector availability and the pending inspection backlog.",
			func(_ context.Context, snap contextstore.Snapshot, _ map[string]any) (map[string]any, error) {
				inspectors := float64(snap.WorkerAvailability["health_inspector"])
				return map[string]any{
					"inspector_available":     inspectors > 0,
					"inspection_backlog_days": snap.Metric("inspection_backlog_days"),
				}, nil
			}),
		NewTool("check_response_teams",
			"Outbreak response teams available for deployment.",
			func(_ context.Context, snap contextstore.Snapshot, _ map[string]any) (map[string]any, error) {
				return map[string]any{"available_response_teams": float64(snap.WorkerAvailability["response_team"])}, nil
			}),
		NewTool("check_case_reports",
			"Reported case count for the location in the current surveillance window.",
			func(_ context.Context, snap contextstore.Snapshot, _ map[string]any) (map[string]any, error) {
				return map[string]any{"reported_case_count": snap.Metric("reported_case_count")}, nil
			}),
		checkBudgetRemaining(),
	)
}

func financeTools() *Registry {
	return NewRegistry(
		NewTool("check_fund_allocation",
			"Total and remaining fund allocation for the location's fiscal scope.",
			func(_ context.Context, snap contextstore.Snapshot, _ map[string]any) (map[string]any, error) {
				return map[string]any{
					"fund_allocation_total":     snap.Metric("fund_allocation_total"),
					"fund_allocation_remaining": snap.Metric("fund_allocation_remaining"),
				}, nil
			}),
		NewTool("check_fiscal_calendar",
			"Whether the fiscal year is closed for new allocations.",
			func(_ context.Context, snap contextstore.Snapshot, _ map[string]any) (map[string]any, error) {
				return map[string]any{"fiscal_year_closed": snap.Metric("fiscal_year_closed")}, nil
			}),
		NewTool("check_transfer_limits",
			"Echoes the requested transfer amount for limit evaluation.",
			func(_ context.Context, _ contextstore.Snapshot, args map[string]any) (map[string]any, error) {
				return map[string]any{"transfer_amount": argNumber(args, "amount")}, nil
			}),
		checkBudgetRemaining(),
	)
}

package config

import "github.com/cityworks/cityagent/pkg/models"

// DefaultRequestRouting is the single authoritative request-type → agent
// map. The source material's per-department tables disagree on two counts:
// "inspection_request" is declared by both Fire (safety inspections) and
// Health (sanitary inspections), and the two tables are otherwise
// independent enumerations with no cross-reference. Fire's
// "inspection_request" wins the collision; Health's variant is carried
// here under "health_inspection_request" instead.
var DefaultRequestRouting = map[string]models.Department{
	// Water
	"schedule_shift_request": models.DepartmentWater,
	"maintenance_request":    models.DepartmentWater,
	"capacity_query":         models.DepartmentWater,

	// Engineering
	"project_planning":    models.DepartmentEngineering,
	"infrastructure_query": models.DepartmentEngineering,

	// Fire
	"fire_emergency":     models.DepartmentFire,
	"inspection_request": models.DepartmentFire,

	// Sanitation
	"collection_schedule_request": models.DepartmentSanitation,
	"disposal_capacity_query":     models.DepartmentSanitation,

	// Health
	"health_inspection_request": models.DepartmentHealth,
	"outbreak_response_request": models.DepartmentHealth,

	// Finance
	"budget_allocation_request": models.DepartmentFinance,
	"fund_transfer_request":     models.DepartmentFinance,
}

// DefaultAgent is the department an unrecognized request type routes to.
// Engineering handles the broadest class of general municipal work, so it
// is the fallback rather than a hard rejection at the routing layer —
// Phase 1 (input validation) still rejects a request a department doesn't
// itself accept.
const DefaultAgent = models.DepartmentEngineering

// RouteRequest resolves a request type to the department that owns it,
// falling back to DefaultAgent for unrecognized types.
func RouteRequest(requestType string) models.Department {
	if dept, ok := DefaultRequestRouting[requestType]; ok {
		return dept
	}
	return DefaultAgent
}

// AcceptedTypes returns the request types routed to dept, for Phase 1's
// "request_type is unknown to this agent" check.
func AcceptedTypes(dept models.Department) []string {
	var out []string
	for rt, d := range DefaultRequestRouting {
		if d == dept {
			out = append(out, rt)
		}
	}
	return out
}

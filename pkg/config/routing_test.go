package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cityworks/cityagent/pkg/models"
)

func TestRouteRequest(t *testing.T) {
	tests := []struct {
		name        string
		requestType string
		want        models.Department
	}{
		{"water shift request", "schedule_shift_request", models.DepartmentWater},
		{"fire inspection wins the collision", "inspection_request", models.DepartmentFire},
		{"health's renamed variant", "health_inspection_request", models.DepartmentHealth},
		{"finance budget request", "budget_allocation_request", models.DepartmentFinance},
		{"unknown type falls through to default agent", "some_unheard_of_request", models.DepartmentEngineering},
		{"empty type falls through to default agent", "", models.DepartmentEngineering},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RouteRequest(tt.requestType))
		})
	}
}

func TestAcceptedTypes(t *testing.T) {
	water := AcceptedTypes(models.DepartmentWater)
	assert.Contains(t, water, "schedule_shift_request")
	assert.Contains(t, water, "maintenance_request")
	assert.NotContains(t, water, "fire_emergency")
}

func TestDefaultAgentIsEngineering(t *testing.T) {
	assert.Equal(t, models.DepartmentEngineering, DefaultAgent)
}

package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cityworks/cityagent/pkg/models"
)

func TestRegistry_CoversEveryDepartment(t *testing.T) {
	reg := Registry()

	depts := []models.Department{
		models.DepartmentWater,
		models.DepartmentEngineering,
		models.DepartmentFire,
		models.DepartmentSanitation,
		models.DepartmentHealth,
		models.DepartmentFinance,
	}

	for _, d := range depts {
		_, ok := reg[d]
		assert.True(t, ok, "missing engine for %s", d)
	}
}

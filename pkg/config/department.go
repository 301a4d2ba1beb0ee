package config

import (
	"fmt"
	"sync"

	"github.com/cityworks/cityagent/pkg/models"
)

// DepartmentConfig is one agent's instantiation metadata, not the
// agent itself.
type DepartmentConfig struct {
	// Department this config describes.
	Department models.Department `yaml:"department" validate:"required"`

	// Human-readable description.
	Description string `yaml:"description,omitempty"`

	// Request types this agent accepts (Phase 1 validation set).
	AcceptedTypes []string `yaml:"accepted_types" validate:"required,min=1"`

	// LLM provider name, checked against the provider registry at load.
	// All agents share one llmclient.Client built from the "default"
	// provider; this field does not select a per-agent client.
	LLMProvider string `yaml:"llm_provider" validate:"required"`

	// Prompt template name under pkg/agent/prompt.
	PromptTemplate string `yaml:"prompt_template,omitempty"`
}

// DepartmentRegistry stores department configurations with thread-safe access.
type DepartmentRegistry struct {
	depts map[models.Department]*DepartmentConfig
	mu    sync.RWMutex
}

func NewDepartmentRegistry(depts map[models.Department]*DepartmentConfig) *DepartmentRegistry {
	copied := make(map[models.Department]*DepartmentConfig, len(depts))
	for k, v := range depts {
		copied[k] = v
	}
	return &DepartmentRegistry{depts: copied}
}

func (r *DepartmentRegistry) Get(dept models.Department) (*DepartmentConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, exists := r.depts[dept]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrDepartmentNotFound, dept)
	}
	return cfg, nil
}

func (r *DepartmentRegistry) GetAll() map[models.Department]*DepartmentConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[models.Department]*DepartmentConfig, len(r.depts))
	for k, v := range r.depts {
		result[k] = v
	}
	return result
}

func (r *DepartmentRegistry) Has(dept models.Department) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.depts[dept]
	return exists
}

func (r *DepartmentRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.depts)
}

// BuiltinDepartments returns the compiled-in department configuration,
// derived from DefaultRequestRouting. YAML config may override
// Description/LLMProvider/PromptTemplate per department but AcceptedTypes
// always traces back to the routing table so the two never drift.
func BuiltinDepartments() map[models.Department]*DepartmentConfig {
	all := []models.Department{
		models.DepartmentWater, models.DepartmentEngineering, models.DepartmentFire,
		models.DepartmentSanitation, models.DepartmentHealth, models.DepartmentFinance,
	}
	out := make(map[models.Department]*DepartmentConfig, len(all))
	for _, d := range all {
		out[d] = &DepartmentConfig{
			Department:    d,
			AcceptedTypes: AcceptedTypes(d),
			LLMProvider:   "default",
		}
	}
	return out
}

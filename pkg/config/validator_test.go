package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityworks/cityagent/pkg/models"
)

func validConfig() *Config {
	return &Config{
		Defaults: DefaultSettings(),
		DepartmentRegistry: NewDepartmentRegistry(map[models.Department]*DepartmentConfig{
			models.DepartmentWater: {
				Department:    models.DepartmentWater,
				AcceptedTypes: []string{"schedule_shift_request"},
				LLMProvider:   "default",
			},
		}),
		LLMProviderRegistry: NewLLMProviderRegistry(map[string]*LLMProviderConfig{
			"default": {
				Type:      LLMProviderTypeOpenAI,
				Model:     "gpt-4o",
				MaxTokens: 4096,
			},
		}),
	}
}

func TestValidateAllAcceptsValidConfig(t *testing.T) {
	err := NewValidator(validConfig()).ValidateAll()
	require.NoError(t, err)
}

func TestValidateDefaultsRejectsZeroConflictWindow(t *testing.T) {
	cfg := validConfig()
	cfg.Defaults.ConflictWindow = 0

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflict_window")
}

func TestValidateDefaultsRejectsOutOfRangeThreshold(t *testing.T) {
	cfg := validConfig()
	cfg.Defaults.ConfidenceThreshold = 1.5

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
}

func TestValidateDepartmentsRejectsUnknownLLMProvider(t *testing.T) {
	cfg := validConfig()
	cfg.DepartmentRegistry = NewDepartmentRegistry(map[models.Department]*DepartmentConfig{
		models.DepartmentWater: {
			Department:    models.DepartmentWater,
			AcceptedTypes: []string{"schedule_shift_request"},
			LLMProvider:   "does-not-exist",
		},
	})

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestValidateDepartmentsRejectsNoAcceptedTypes(t *testing.T) {
	cfg := validConfig()
	cfg.DepartmentRegistry = NewDepartmentRegistry(map[models.Department]*DepartmentConfig{
		models.DepartmentWater: {
			Department:  models.DepartmentWater,
			LLMProvider: "default",
		},
	})

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
}

func TestValidateLLMProvidersRejectsMissingAPIKeyEnv(t *testing.T) {
	cfg := validConfig()
	cfg.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
		"default": {
			Type:      LLMProviderTypeOpenAI,
			Model:     "gpt-4o",
			MaxTokens: 4096,
			APIKeyEnv: "CITYAGENT_TEST_UNSET_KEY",
		},
	})

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CITYAGENT_TEST_UNSET_KEY")
}

package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Validator validates configuration comprehensively with clear error messages.
type Validator struct {
	cfg *Config
	v   *validator.Validate
}

func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg, v: validator.New()}
}

// ValidateAll performs comprehensive validation, fail-fast at the first error.
func (val *Validator) ValidateAll() error {
	if err := val.validateDefaults(); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	if err := val.validateDepartments(); err != nil {
		return fmt.Errorf("department validation failed: %w", err)
	}

	if err := val.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	return nil
}

func (val *Validator) validateDefaults() error {
	d := val.cfg.Defaults
	if d == nil {
		return fmt.Errorf("defaults configuration is nil")
	}
	if err := val.v.Struct(d); err != nil {
		return NewValidationError("defaults", "", "", err)
	}
	if d.ConflictWindow <= 0 {
		return NewValidationError("defaults", "", "conflict_window", fmt.Errorf("must be positive"))
	}
	return nil
}

func (val *Validator) validateDepartments() error {
	for dept, cfg := range val.cfg.DepartmentRegistry.GetAll() {
		if err := val.v.Struct(cfg); err != nil {
			return NewValidationError("department", string(dept), "", err)
		}

		if len(cfg.AcceptedTypes) == 0 {
			return NewValidationError("department", string(dept), "accepted_types", fmt.Errorf("at least one request type required"))
		}

		// With no providers configured at all the service runs on
		// deterministic fallbacks; only dangling references to a
		// non-empty registry are configuration errors.
		if cfg.LLMProvider != "" && val.cfg.LLMProviderRegistry.Len() > 0 && !val.cfg.LLMProviderRegistry.Has(cfg.LLMProvider) {
			return NewValidationError("department", string(dept), "llm_provider", fmt.Errorf("LLM provider '%s' not found", cfg.LLMProvider))
		}
	}
	return nil
}

func (val *Validator) validateLLMProviders() error {
	for name, provider := range val.cfg.LLMProviderRegistry.GetAll() {
		if err := val.v.Struct(provider); err != nil {
			return NewValidationError("llm_provider", name, "", err)
		}

		if !provider.Type.IsValid() {
			return NewValidationError("llm_provider", name, "type", fmt.Errorf("invalid provider type: %s", provider.Type))
		}

		if provider.APIKeyEnv != "" {
			if value := os.Getenv(provider.APIKeyEnv); value == "" {
				return NewValidationError("llm_provider", name, "api_key_env", fmt.Errorf("environment variable %s is not set", provider.APIKeyEnv))
			}
		}
	}
	return nil
}

// Package config provides configuration management for the city agent
// service: department/agent registries, LLM provider registries, and
// system-wide defaults.
package config

import "github.com/cityworks/cityagent/pkg/models"

// Config is the umbrella configuration object encapsulating all registries
// and defaults. It is the primary object returned by Initialize and used
// throughout the application.
type Config struct {
	configDir string

	Defaults            *Defaults
	DepartmentRegistry  *DepartmentRegistry
	LLMProviderRegistry *LLMProviderRegistry

	DatabaseURL string
	RedisAddr   string
	HTTPAddr    string
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// ConfigStats contains statistics about loaded configuration.
type ConfigStats struct {
	Departments  int
	LLMProviders int
}

// Stats returns configuration statistics for logging.
func (c *Config) Stats() ConfigStats {
	return ConfigStats{
		Departments:  c.DepartmentRegistry.Len(),
		LLMProviders: c.LLMProviderRegistry.Len(),
	}
}

// GetDepartment retrieves a department's configuration.
func (c *Config) GetDepartment(dept models.Department) (*DepartmentConfig, error) {
	return c.DepartmentRegistry.Get(dept)
}

// GetLLMProvider retrieves an LLM provider configuration by name.
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

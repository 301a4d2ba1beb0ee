package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/cityworks/cityagent/pkg/models"
)

// cityagentYAML represents the complete cityagent.yaml file structure.
type cityagentYAML struct {
	Defaults    *Defaults                              `yaml:"defaults"`
	Departments map[models.Department]DepartmentConfig `yaml:"departments"`
	Database    *databaseYAML                          `yaml:"database"`
	Redis       *redisYAML                             `yaml:"redis"`
	HTTP        *httpYAML                              `yaml:"http"`
}

type databaseYAML struct {
	URLEnv string `yaml:"url_env"`
}

type redisYAML struct {
	AddrEnv string `yaml:"addr_env"`
}

type httpYAML struct {
	Addr string `yaml:"addr"`
}

// llmProvidersYAML represents the complete llm-providers.yaml file structure.
type llmProvidersYAML struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("configuration initialized",
		"departments", stats.Departments,
		"llm_providers", stats.LLMProviders)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	l := &configLoader{configDir: configDir}

	user, err := l.loadCityagentYAML()
	if err != nil {
		return nil, NewLoadError("cityagent.yaml", configDir, err)
	}

	llmProviders, err := l.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", configDir, err)
	}

	departments := BuiltinDepartments()
	for dept, override := range user.Departments {
		base, ok := departments[dept]
		if !ok {
			base = &DepartmentConfig{Department: dept, AcceptedTypes: AcceptedTypes(dept)}
			departments[dept] = base
		}
		ov := override
		ov.AcceptedTypes = nil // accepted types come only from the routing table
		if err := mergo.Merge(base, &ov, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge department %s: %w", dept, err)
		}
	}

	defaults := DefaultSettings()
	if user.Defaults != nil {
		if err := mergo.Merge(defaults, user.Defaults, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge defaults: %w", err)
		}
	}

	dbURL := os.Getenv("DATABASE_URL")
	if user.Database != nil && user.Database.URLEnv != "" {
		dbURL = os.Getenv(user.Database.URLEnv)
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if user.Redis != nil && user.Redis.AddrEnv != "" {
		redisAddr = os.Getenv(user.Redis.AddrEnv)
	}

	httpAddr := ":8080"
	if user.HTTP != nil && user.HTTP.Addr != "" {
		httpAddr = user.HTTP.Addr
	}

	return &Config{
		configDir:           configDir,
		Defaults:            defaults,
		DepartmentRegistry:  NewDepartmentRegistry(departments),
		LLMProviderRegistry: NewLLMProviderRegistry(toPtrMap(llmProviders)),
		DatabaseURL:         dbURL,
		RedisAddr:           redisAddr,
		HTTPAddr:            httpAddr,
	}, nil
}

func toPtrMap(in map[string]LLMProviderConfig) map[string]*LLMProviderConfig {
	out := make(map[string]*LLMProviderConfig, len(in))
	for k, v := range in {
		cp := v
		out[k] = &cp
	}
	return out
}

func validate(cfg *Config) error {
	v := NewValidator(cfg)
	return v.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadCityagentYAML() (*cityagentYAML, error) {
	var cfg cityagentYAML
	cfg.Departments = make(map[models.Department]DepartmentConfig)

	if err := l.loadYAML("cityagent.yaml", &cfg); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return &cfg, nil
		}
		return nil, err
	}

	return &cfg, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]LLMProviderConfig, error) {
	var cfg llmProvidersYAML
	cfg.LLMProviders = make(map[string]LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &cfg); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return cfg.LLMProviders, nil
		}
		return nil, err
	}

	return cfg.LLMProviders, nil
}

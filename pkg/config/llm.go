package config

import (
	"fmt"
	"sync"
)

// LLMProviderConfig configures one named LLM backend reachable through
// langchaingo. The service resolves the provider named "default" from the
// LLMProviderRegistry once at startup and builds the single
// llmclient.Client every phase-level adapter call goes through.
type LLMProviderConfig struct {
	Type LLMProviderType `yaml:"type" validate:"required"`

	Model       string  `yaml:"model" validate:"required"`
	Temperature float64 `yaml:"temperature,omitempty" validate:"omitempty,min=0,max=2"`

	// Environment variable name holding the API key.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Optional custom endpoint/base URL (self-hosted gateways, proxies).
	BaseURL string `yaml:"base_url,omitempty"`

	// Max tokens for a single adapter call's response.
	MaxTokens int `yaml:"max_tokens" validate:"required,min=256"`
}

// LLMProviderRegistry stores LLM provider configurations with thread-safe access.
type LLMProviderRegistry struct {
	providers map[string]*LLMProviderConfig
	mu        sync.RWMutex
}

func NewLLMProviderRegistry(providers map[string]*LLMProviderConfig) *LLMProviderRegistry {
	copied := make(map[string]*LLMProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &LLMProviderRegistry{providers: copied}
}

func (r *LLMProviderRegistry) Get(name string) (*LLMProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrLLMProviderNotFound, name)
	}
	return provider, nil
}

func (r *LLMProviderRegistry) GetAll() map[string]*LLMProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*LLMProviderConfig, len(r.providers))
	for k, v := range r.providers {
		result[k] = v
	}
	return result
}

func (r *LLMProviderRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.providers[name]
	return exists
}

func (r *LLMProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}

package llmclient

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/cityworks/cityagent/pkg/config"
)

const (
	// callTimeout bounds one oracle round-trip, per call, before the
	// phase falls back.
	callTimeout = 30 * time.Second

	// maxCallRetries bounds transient-failure retries inside one Call
	// before the adapter gives up and returns ErrNoAnswer.
	maxCallRetries = 2
)

// ProviderClient is the production Client: a langchaingo model behind a
// circuit breaker, with bounded retry and per-phase enablement flags.
// Repeated provider failures open the breaker so later phases
// short-circuit straight to their fallbacks instead of paying the
// timeout each time.
type ProviderClient struct {
	model   llms.Model
	cfg     *config.LLMProviderConfig
	flags   config.PhaseFlags
	breaker *gobreaker.CircuitBreaker
}

var _ Client = (*ProviderClient)(nil)

// NewProviderClient builds a ProviderClient for the named provider
// configuration.
func NewProviderClient(_ context.Context, providerCfg *config.LLMProviderConfig, flags config.PhaseFlags) (*ProviderClient, error) {
	model, err := newModel(providerCfg)
	if err != nil {
		return nil, fmt.Errorf("initializing LLM provider: %w", err)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "llm-oracle",
		Timeout: 60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("LLM circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &ProviderClient{model: model, cfg: providerCfg, flags: flags, breaker: breaker}, nil
}

func newModel(cfg *config.LLMProviderConfig) (llms.Model, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)

	switch cfg.Type {
	case config.LLMProviderTypeOpenAI:
		opts := []openai.Option{openai.WithModel(cfg.Model)}
		if apiKey != "" {
			opts = append(opts, openai.WithToken(apiKey))
		}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		return openai.New(opts...)
	case config.LLMProviderTypeAnthropic:
		opts := []anthropic.Option{anthropic.WithModel(cfg.Model)}
		if apiKey != "" {
			opts = append(opts, anthropic.WithToken(apiKey))
		}
		if cfg.BaseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(cfg.BaseURL))
		}
		return anthropic.New(opts...)
	case config.LLMProviderTypeGoogle:
		// Gemini is reached through its OpenAI-compatible endpoint.
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
		}
		opts := []openai.Option{openai.WithModel(cfg.Model), openai.WithBaseURL(baseURL)}
		if apiKey != "" {
			opts = append(opts, openai.WithToken(apiKey))
		}
		return openai.New(opts...)
	default:
		return nil, fmt.Errorf("unsupported provider type %q", cfg.Type)
	}
}

// Call implements Client.
func (c *ProviderClient) Call(ctx context.Context, phase Phase, prompt string, out any) error {
	if !enabled(c.flags, phase) {
		return ErrDisabled
	}

	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	raw, err := c.breaker.Execute(func() (any, error) {
		return c.generate(callCtx, prompt)
	})
	if err != nil {
		slog.Debug("LLM call failed", "phase", phase, "error", err)
		return fmt.Errorf("%w: %v", ErrNoAnswer, err)
	}

	return parseJSON(raw.(string), out)
}

// generate runs one prompt with bounded exponential-backoff retry.
func (c *ProviderClient) generate(ctx context.Context, prompt string) (string, error) {
	var completion string

	operation := func() error {
		var err error
		completion, err = llms.GenerateFromSinglePrompt(ctx, c.model, prompt,
			llms.WithTemperature(c.cfg.Temperature),
			llms.WithMaxTokens(c.cfg.MaxTokens),
		)
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxCallRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", err
	}
	return completion, nil
}

package config

// LLMProviderType identifies which SDK/transport the LLM adapter uses for a
// given provider entry. All providers route through langchaingo, but the
// provider type selects the underlying model family and env var names.
type LLMProviderType string

const (
	LLMProviderTypeOpenAI    LLMProviderType = "openai"
	LLMProviderTypeAnthropic LLMProviderType = "anthropic"
	LLMProviderTypeGoogle    LLMProviderType = "google"
)

func (t LLMProviderType) IsValid() bool {
	switch t {
	case LLMProviderTypeOpenAI, LLMProviderTypeAnthropic, LLMProviderTypeGoogle:
		return true
	default:
		return false
	}
}

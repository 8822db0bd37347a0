package llm

import "fmt"

// New returns the Client for the configured provider. An empty provider
// defaults to Ollama, matching the local-first deployment.
func New(cfg Config) (Client, error) {
	switch cfg.Provider {
	case "", ProviderOllama:
		return NewOllamaClient(cfg.BaseURL, cfg.Model)
	case ProviderOpenAI:
		return NewOpenAIClient(cfg.BaseURL, cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}

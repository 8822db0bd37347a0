// Package llm provides completion clients for the configured LLM backend.
// The analyzer depends only on the Client interface so tests can swap in a
// stub and deployments can choose a provider without code changes.
package llm

import "context"

// Supported provider names for Config.Provider.
const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

// Client generates a completion for a prompt. Implementations make exactly
// one outbound call per invocation and perform no retries; the caller's
// context bounds the request.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config selects and configures an LLM provider.
type Config struct {
	// Provider is "ollama" (default) or "openai".
	Provider string
	// BaseURL is the provider endpoint, e.g. http://localhost:11434 for
	// Ollama or an OpenAI-compatible /v1 URL.
	BaseURL string
	// Model is the model identifier passed on every request.
	Model string
	// APIKey is required for the openai provider only.
	APIKey string
}

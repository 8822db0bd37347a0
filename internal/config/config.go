// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// HTTPAddr is the address the HTTP server listens on (e.g. :8080).
	HTTPAddr string `mapstructure:"HTTP_ADDR"`
	// DatabaseURL is the Postgres DSN; when empty the server falls back to an in-memory store (dev only).
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// LLMProvider selects the completion backend: "ollama" (default) or "openai".
	LLMProvider string `mapstructure:"LLM_PROVIDER"`
	// OllamaURL is the Ollama server base URL (default http://localhost:11434).
	OllamaURL string `mapstructure:"OLLAMA_URL"`
	// LLMModel is the model identifier sent on every completion request (default llama3).
	LLMModel string `mapstructure:"LLM_MODEL"`
	// OpenAIBaseURL overrides the OpenAI API base URL; used to point at OpenAI-compatible local servers.
	OpenAIBaseURL string `mapstructure:"OPENAI_BASE_URL"`
	// OpenAIAPIKey is the API key for the openai provider.
	OpenAIAPIKey string `mapstructure:"OPENAI_API_KEY"`
	// LLMTimeoutStr bounds each completion call (e.g. "60s"). Exceeding it fails the submission.
	LLMTimeoutStr string `mapstructure:"LLM_TIMEOUT"`

	// StressThreshold is the cutoff above which a score flags the record (strict greater-than).
	StressThreshold float64 `mapstructure:"STRESS_THRESHOLD"`

	// Alert eventing (optional). When Kafka brokers are set, flagged records are published to Kafka.
	// AlertsKafkaBrokers is a comma-separated list of Kafka broker addresses (e.g. "localhost:9092").
	AlertsKafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	// AlertsKafkaTopic is the Kafka topic for alert events (default stresswatch-alerts).
	AlertsKafkaTopic string `mapstructure:"ALERTS_KAFKA_TOPIC"`

	// Worker-only: Loki URL for the alerts worker to push events (e.g. http://localhost:3100).
	LokiURL string `mapstructure:"LOKI_URL"`
	// KafkaGroupID is the consumer group ID for the alerts worker.
	KafkaGroupID string `mapstructure:"KAFKA_GROUP_ID"`

	// OTLPEndpoint is the OTLP collector endpoint for traces/metrics/logs; empty disables export.
	OTLPEndpoint string `mapstructure:"OTLP_ENDPOINT"`
	// OTLPInsecure forces plaintext OTLP even for https endpoints.
	OTLPInsecure bool `mapstructure:"OTLP_INSECURE"`
	// Env is the application environment (e.g. "development", "production").
	Env string `mapstructure:"APP_ENV"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env. Returns an error if required fields are invalid.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("LLM_PROVIDER", "ollama")
	v.SetDefault("OLLAMA_URL", "http://localhost:11434")
	v.SetDefault("LLM_MODEL", "llama3")
	v.SetDefault("OPENAI_BASE_URL", "")
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("LLM_TIMEOUT", "60s")
	v.SetDefault("STRESS_THRESHOLD", 50.0)
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("ALERTS_KAFKA_TOPIC", "stresswatch-alerts")
	v.SetDefault("KAFKA_GROUP_ID", "stresswatch-alerts-worker")
	v.SetDefault("LOKI_URL", "")
	v.SetDefault("OTLP_ENDPOINT", "")
	v.SetDefault("OTLP_INSECURE", false)
	v.SetDefault("APP_ENV", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("config: HTTP_ADDR must be set")
	}

	switch cfg.LLMProvider {
	case "", "ollama", "openai":
	default:
		return nil, fmt.Errorf("config: LLM_PROVIDER must be ollama or openai, got %q", cfg.LLMProvider)
	}
	if cfg.LLMProvider == "openai" && cfg.OpenAIAPIKey == "" {
		return nil, errors.New("config: OPENAI_API_KEY must be set when LLM_PROVIDER=openai")
	}

	if d, err := time.ParseDuration(cfg.LLMTimeoutStr); err != nil {
		return nil, fmt.Errorf("config: LLM_TIMEOUT is not a valid duration: %q", cfg.LLMTimeoutStr)
	} else if d <= 0 {
		return nil, fmt.Errorf("config: LLM_TIMEOUT must be positive, got %q", cfg.LLMTimeoutStr)
	}

	return &cfg, nil
}

// LLMTimeout returns the parsed LLM_TIMEOUT. Load has already validated the
// string; 60s covers Config values built outside Load (e.g. in tests).
func (c *Config) LLMTimeout() time.Duration {
	d, err := time.ParseDuration(c.LLMTimeoutStr)
	if err != nil || d <= 0 {
		return 60 * time.Second
	}
	return d
}

// AlertsKafkaBrokersList returns Kafka broker addresses from the comma-separated config.
// Used to decide if alert eventing is enabled (non-empty list) and to create the producer.
func (c *Config) AlertsKafkaBrokersList() []string {
	if c == nil || c.AlertsKafkaBrokers == "" {
		return nil
	}
	parts := strings.Split(c.AlertsKafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

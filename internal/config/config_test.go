package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load returned nil config")
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":8080")
	}
	if cfg.LLMProvider != "ollama" {
		t.Errorf("LLMProvider = %q, want %q", cfg.LLMProvider, "ollama")
	}
	if cfg.OllamaURL != "http://localhost:11434" {
		t.Errorf("OllamaURL = %q, want default", cfg.OllamaURL)
	}
	if cfg.LLMModel != "llama3" {
		t.Errorf("LLMModel = %q, want %q", cfg.LLMModel, "llama3")
	}
	if cfg.StressThreshold != 50.0 {
		t.Errorf("StressThreshold = %v, want 50.0", cfg.StressThreshold)
	}
	if cfg.AlertsKafkaTopic != "stresswatch-alerts" {
		t.Errorf("AlertsKafkaTopic = %q, want default", cfg.AlertsKafkaTopic)
	}
	if cfg.KafkaGroupID != "stresswatch-alerts-worker" {
		t.Errorf("KafkaGroupID = %q, want default", cfg.KafkaGroupID)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	os.Clearenv()
	os.Setenv("HTTP_ADDR", ":9090")
	os.Setenv("STRESS_THRESHOLD", "72.5")
	os.Setenv("LLM_MODEL", "mistral")
	os.Setenv("OLLAMA_URL", "http://ollama:11434")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":9090")
	}
	if cfg.StressThreshold != 72.5 {
		t.Errorf("StressThreshold = %v, want 72.5", cfg.StressThreshold)
	}
	if cfg.LLMModel != "mistral" {
		t.Errorf("LLMModel = %q, want %q", cfg.LLMModel, "mistral")
	}
	if cfg.OllamaURL != "http://ollama:11434" {
		t.Errorf("OllamaURL = %q, want override", cfg.OllamaURL)
	}
}

func TestLoad_InvalidProvider(t *testing.T) {
	os.Clearenv()
	os.Setenv("LLM_PROVIDER", "bard")

	if _, err := Load(); err == nil {
		t.Fatal("Load should reject unknown LLM_PROVIDER")
	}
}

func TestLoad_OpenAIRequiresKey(t *testing.T) {
	os.Clearenv()
	os.Setenv("LLM_PROVIDER", "openai")

	if _, err := Load(); err == nil {
		t.Fatal("Load should require OPENAI_API_KEY for openai provider")
	}

	os.Setenv("OPENAI_API_KEY", "sk-test")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with key: %v", err)
	}
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Errorf("OpenAIAPIKey = %q, want %q", cfg.OpenAIAPIKey, "sk-test")
	}
}

func TestLoad_InvalidLLMTimeout(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{"not a duration", "soon"},
		{"negative", "-5s"},
		{"zero", "0s"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			os.Clearenv()
			os.Setenv("LLM_TIMEOUT", tc.in)
			if _, err := Load(); err == nil {
				t.Errorf("Load should reject LLM_TIMEOUT=%q", tc.in)
			}
		})
	}

	os.Clearenv()
	os.Setenv("LLM_TIMEOUT", "90s")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LLMTimeout() != 90*time.Second {
		t.Errorf("LLMTimeout = %v, want 90s", cfg.LLMTimeout())
	}
}

func TestLLMTimeout(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want time.Duration
	}{
		{"valid", "90s", 90 * time.Second},
		{"empty falls back", "", 60 * time.Second},
		{"invalid falls back", "soon", 60 * time.Second},
		{"negative falls back", "-5s", 60 * time.Second},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{LLMTimeoutStr: tc.in}
			if got := cfg.LLMTimeout(); got != tc.want {
				t.Errorf("LLMTimeout(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestAlertsKafkaBrokersList(t *testing.T) {
	cfg := &Config{AlertsKafkaBrokers: "localhost:9092, kafka2:9092 ,, "}
	got := cfg.AlertsKafkaBrokersList()
	want := []string{"localhost:9092", "kafka2:9092"}
	if len(got) != len(want) {
		t.Fatalf("brokers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("brokers[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	var nilCfg *Config
	if nilCfg.AlertsKafkaBrokersList() != nil {
		t.Error("nil config should return nil brokers")
	}
	if (&Config{}).AlertsKafkaBrokersList() != nil {
		t.Error("empty brokers should return nil")
	}
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stresswatch/backend/internal/alerts"
	"stresswatch/backend/internal/analysis"
	"stresswatch/backend/internal/analysis/llm"
	"stresswatch/backend/internal/config"
	"stresswatch/backend/internal/db"
	"stresswatch/backend/internal/ingest"
	"stresswatch/backend/internal/server"
	"stresswatch/backend/internal/stress/repository"
	"stresswatch/backend/internal/telemetry"
	"stresswatch/backend/internal/telemetry/otel"
	"stresswatch/backend/internal/telemetry/producer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	providers, err := otel.NewProviders(ctx, cfg.OTLPEndpoint, "stresswatch", cfg.OTLPInsecure)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}
	providers.SetGlobal()

	var store repository.Repository
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer conn.Close()
		store = repository.NewPostgresRepository(conn)
	} else {
		log.Println("DATABASE_URL is not set; using in-memory store (records are lost on restart)")
		store = repository.NewMemoryStore()
	}

	llmBaseURL := cfg.OllamaURL
	if cfg.LLMProvider == llm.ProviderOpenAI {
		llmBaseURL = cfg.OpenAIBaseURL
	}
	client, err := llm.New(llm.Config{
		Provider: cfg.LLMProvider,
		BaseURL:  llmBaseURL,
		Model:    cfg.LLMModel,
		APIKey:   cfg.OpenAIAPIKey,
	})
	if err != nil {
		log.Fatalf("llm: %v", err)
	}
	analyzer := analysis.New(client, cfg.LLMTimeout())

	var emitter telemetry.EventEmitter
	if brokers := cfg.AlertsKafkaBrokersList(); len(brokers) > 0 {
		kp := producer.NewKafkaProducer(brokers, cfg.AlertsKafkaTopic)
		defer kp.Close()
		emitter = kp
		log.Printf("alert eventing: kafka topic %s", cfg.AlertsKafkaTopic)
	} else {
		emitter = otel.NewEventEmitter(providers.LoggerProvider)
	}

	pipeline := ingest.NewPipeline(analyzer, store, emitter)
	query := alerts.NewQuery(store)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.NewRouter(pipeline, query, cfg.StressThreshold),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}

	// Wait for in-flight async alert emits before the telemetry providers flush.
	telemetry.Drain(telemetry.ShutdownDrainDuration)
	if err := providers.Shutdown(shutdownCtx); err != nil {
		log.Printf("telemetry shutdown: %v", err)
	}
	log.Println("HTTP server stopped")
}

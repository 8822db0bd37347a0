// Package metrics defines Prometheus metrics for the stress-analysis pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	IngestionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stresswatch_ingestions_total",
			Help: "Total number of CSV ingestion attempts",
		},
	)

	IngestionFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stresswatch_ingestion_failures_total",
			Help: "Total number of failed ingestions by error kind",
		},
		[]string{"kind"},
	)

	RecordsFlaggedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stresswatch_records_flagged_total",
			Help: "Total number of records flagged over the stress threshold",
		},
	)

	LLMRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stresswatch_llm_request_duration_seconds",
			Help:    "Duration of LLM completion calls",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		},
	)

	AlertsRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stresswatch_alerts_requests_total",
			Help: "Total number of alerts query requests",
		},
	)
)

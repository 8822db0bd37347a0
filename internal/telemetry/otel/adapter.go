package otel

import (
	"context"
	"encoding/json"

	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"stresswatch/backend/internal/telemetry"
	"stresswatch/backend/internal/telemetry/domain"
)

// NewEventEmitter returns an EventEmitter that sends alert events as OTel log
// records via the given LoggerProvider. If provider is nil, returns a no-op emitter.
func NewEventEmitter(provider *sdklog.LoggerProvider) telemetry.EventEmitter {
	if provider == nil {
		return noopEmitter{}
	}
	return &otelEmitter{logger: provider.Logger("stresswatch.alerts")}
}

type noopEmitter struct{}

func (noopEmitter) Emit(context.Context, *domain.AlertEvent) error { return nil }

type otelEmitter struct {
	logger otellog.Logger
}

// Emit converts the alert event to an OTel log record and emits it. Best-effort.
func (e *otelEmitter) Emit(ctx context.Context, event *domain.AlertEvent) error {
	if event == nil {
		return nil
	}
	rec := otellog.Record{}
	if !event.CreatedAt.IsZero() {
		rec.SetTimestamp(event.CreatedAt)
	}
	if body, err := json.Marshal(event); err == nil {
		rec.SetBody(otellog.BytesValue(body))
	}
	rec.AddAttributes(
		otellog.String("record_id", event.RecordID),
		otellog.String("user_id", event.UserID),
		otellog.Float64("stress_score", event.StressScore),
		otellog.Float64("threshold", event.Threshold),
	)
	rec.SetSeverity(otellog.SeverityWarn)
	rec.SetSeverityText("STRESS_ALERT")
	e.logger.Emit(ctx, rec)
	return nil
}

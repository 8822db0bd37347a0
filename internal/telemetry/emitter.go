// Package telemetry emits alert events for flagged stress records
// (e.g. to Kafka or OTel Logs). All emission is best-effort.
package telemetry

import (
	"context"

	"stresswatch/backend/internal/telemetry/domain"
)

// EventEmitter emits alert events. Best-effort; callers log and ignore errors.
type EventEmitter interface {
	Emit(ctx context.Context, event *domain.AlertEvent) error
}

// Package producer defines the interface for publishing alert events (e.g. to Kafka).
package producer

import (
	"context"

	"stresswatch/backend/internal/telemetry/domain"
)

// Producer publishes alert events. Callers use it best-effort: log and ignore errors.
type Producer interface {
	// Emit sends a single alert event. Implementations may block briefly; call from a goroutine if needed.
	Emit(ctx context.Context, event *domain.AlertEvent) error
	// Close releases resources (e.g. Kafka writer). Safe to call if already closed.
	Close() error
}

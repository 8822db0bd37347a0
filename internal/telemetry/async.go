package telemetry

import (
	"context"
	"log"
	"sync"
	"time"

	"stresswatch/backend/internal/telemetry/domain"
)

// emitTimeout is the max time allowed for a single async emit.
const emitTimeout = 5 * time.Second

// ShutdownDrainDuration bounds how long Drain waits for in-flight async
// emits after the HTTP listener stops. Must be >= emitTimeout.
const ShutdownDrainDuration = emitTimeout

// inflight tracks async emits started by EmitAsync so Drain can wait for them.
var inflight sync.WaitGroup

// EmitAsync runs Emit in a goroutine with a short timeout so the ingestion
// request is never blocked on alert delivery. Errors are logged and dropped.
//
// emitter and event may be nil; EmitAsync then returns without starting a
// goroutine. The goroutine detaches from the caller's cancellation but keeps
// its values, so request cancellation does not abort an in-flight emit while
// trace context still links the emit to the request.
func EmitAsync(emitter EventEmitter, ctx context.Context, event *domain.AlertEvent) {
	if emitter == nil || event == nil {
		return
	}
	inflight.Add(1)
	go func() {
		defer inflight.Done()
		emitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), emitTimeout)
		defer cancel()
		if err := emitter.Emit(emitCtx, event); err != nil {
			log.Printf("telemetry: async emit failed: %v", err)
		}
	}()
}

// Drain blocks until all in-flight async emits finish or timeout elapses.
// Called during shutdown before the telemetry providers flush.
func Drain(timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
}

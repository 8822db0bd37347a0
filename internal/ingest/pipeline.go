package ingest

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"stresswatch/backend/internal/metrics"
	"stresswatch/backend/internal/stress/domain"
	"stresswatch/backend/internal/stress/repository"
	"stresswatch/backend/internal/telemetry"
	telemetrydomain "stresswatch/backend/internal/telemetry/domain"
)

// Analyzer produces a stress verdict for a parsed dataset.
type Analyzer interface {
	Analyze(ctx context.Context, ds *domain.Dataset) (*domain.StressVerdict, error)
}

// Pipeline orchestrates one submission: parse → analyze → decide → persist.
// Any stage's failure is terminal; the error kind passes through to the
// caller unchanged and nothing is retried.
type Pipeline struct {
	analyzer Analyzer
	store    repository.Repository
	emitter  telemetry.EventEmitter // may be nil

	// Injected for tests; default to uuid/time.
	newID func() string
	now   func() time.Time
}

// NewPipeline wires the ingestion pipeline. emitter may be nil to disable
// alert eventing.
func NewPipeline(analyzer Analyzer, store repository.Repository, emitter telemetry.EventEmitter) *Pipeline {
	return &Pipeline{
		analyzer: analyzer,
		store:    store,
		emitter:  emitter,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// Ingest runs the pipeline for one submission and returns the persisted
// record. recordID is the caller-supplied dataset identifier; threshold is
// the configured cutoff, applied strictly (score > threshold) and frozen
// into the record.
func (p *Pipeline) Ingest(ctx context.Context, recordID string, body []byte, contentType string, threshold float64) (*domain.StressRecord, error) {
	metrics.IngestionsTotal.Inc()

	ds, err := Parse(body, contentType)
	if err != nil {
		return nil, p.fail(err)
	}

	verdict, err := p.analyzer.Analyze(ctx, ds)
	if err != nil {
		return nil, p.fail(err)
	}

	rec := &domain.StressRecord{
		RecordID:          recordID,
		UserID:            p.newID(),
		StressScore:       verdict.StressScore,
		Analysis:          verdict.Analysis,
		ThresholdExceeded: Exceeds(verdict.StressScore, threshold),
		CreatedAt:         p.now().UTC(),
	}

	if err := p.store.Save(ctx, rec); err != nil {
		return nil, p.fail(err)
	}

	if rec.ThresholdExceeded {
		metrics.RecordsFlaggedTotal.Inc()
		telemetry.EmitAsync(p.emitter, ctx, &telemetrydomain.AlertEvent{
			RecordID:    rec.RecordID,
			UserID:      rec.UserID,
			StressScore: rec.StressScore,
			Threshold:   threshold,
			CreatedAt:   rec.CreatedAt,
		})
	}
	return rec, nil
}

// fail counts the failure by kind and passes the error through unchanged.
func (p *Pipeline) fail(err error) error {
	metrics.IngestionFailuresTotal.WithLabelValues(kind(err)).Inc()
	return err
}

func kind(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnsupportedMediaType):
		return "unsupported_media_type"
	case errors.Is(err, domain.ErrMalformedInput):
		return "malformed_input"
	case errors.Is(err, domain.ErrInsufficientData):
		return "insufficient_data"
	case errors.Is(err, domain.ErrAnalysisTimeout):
		return "analysis_timeout"
	case errors.Is(err, domain.ErrAnalysisParse):
		return "analysis_parse_error"
	case errors.Is(err, domain.ErrDuplicateRecord):
		return "duplicate_record"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return "store_unavailable"
	default:
		return "internal"
	}
}

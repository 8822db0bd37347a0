// Package alerts exposes the read path over flagged stress records.
package alerts

import (
	"context"
	"time"

	"stresswatch/backend/internal/metrics"
	"stresswatch/backend/internal/stress/repository"
)

// Alert is the thin projection the alerts endpoint exposes: only the three
// fields downstream needs, in the store's oldest-first ordering.
type Alert struct {
	RecordID    string    `json:"record_id"`
	StressScore float64   `json:"stress_score"`
	Timestamp   time.Time `json:"timestamp"`
}

// Query reads flagged records through the store's contract; it never
// touches the underlying storage directly.
type Query struct {
	store repository.Repository
}

// NewQuery returns an alerts query over the given store.
func NewQuery(store repository.Repository) *Query {
	return &Query{store: store}
}

// List returns all currently flagged records, oldest first.
func (q *Query) List(ctx context.Context) ([]Alert, error) {
	metrics.AlertsRequestsTotal.Inc()
	recs, err := q.store.ListFlagged(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Alert, 0, len(recs))
	for _, rec := range recs {
		out = append(out, Alert{
			RecordID:    rec.RecordID,
			StressScore: rec.StressScore,
			Timestamp:   rec.CreatedAt.UTC(),
		})
	}
	return out, nil
}

package repository

import (
	"context"

	"stresswatch/backend/internal/stress/domain"
)

// Repository defines persistence for stress records. The store owns the
// durable set of records; the pipeline and alerts query only go through
// this contract.
type Repository interface {
	// Save persists the record. Returns domain.ErrDuplicateRecord when the
	// record_id already exists (idempotency guard against duplicate
	// submissions); callers propagate this as a conflict, never overwrite.
	Save(ctx context.Context, rec *domain.StressRecord) error
	// ListFlagged returns all records with threshold_exceeded = true,
	// ordered by created_at ascending (oldest alert first).
	ListFlagged(ctx context.Context) ([]*domain.StressRecord, error)
}

package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"stresswatch/backend/internal/stress/domain"
)

// MemoryStore is an in-memory Repository implementation, used in tests and
// when the server runs without a database. A duplicate record_id race yields
// exactly one successful save and one ErrDuplicateRecord (first-writer-wins).
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string]domain.StressRecord
}

// NewMemoryStore returns a new in-memory stress record store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string]domain.StressRecord)}
}

// Save stores a copy of rec keyed by record_id.
func (s *MemoryStore) Save(ctx context.Context, rec *domain.StressRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.m[rec.RecordID]; exists {
		return fmt.Errorf("record %q: %w", rec.RecordID, domain.ErrDuplicateRecord)
	}
	s.m[rec.RecordID] = *rec
	return nil
}

// ListFlagged returns copies of all flagged records, oldest first.
// Ties on created_at break by record_id so ordering is deterministic.
func (s *MemoryStore) ListFlagged(ctx context.Context) ([]*domain.StressRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.StressRecord
	for _, rec := range s.m {
		if rec.ThresholdExceeded {
			cp := rec
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].RecordID < out[j].RecordID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

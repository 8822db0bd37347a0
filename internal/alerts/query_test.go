package alerts

import (
	"context"
	"errors"
	"testing"
	"time"

	"stresswatch/backend/internal/stress/domain"
)

type stubStore struct {
	recs []*domain.StressRecord
	err  error
}

func (s *stubStore) Save(ctx context.Context, rec *domain.StressRecord) error { return nil }

func (s *stubStore) ListFlagged(ctx context.Context) ([]*domain.StressRecord, error) {
	return s.recs, s.err
}

func TestList_Projection(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	created := time.Date(2026, 8, 30, 15, 0, 0, 0, loc)
	store := &stubStore{recs: []*domain.StressRecord{
		{
			RecordID:          "rec-1",
			UserID:            "22222222-2222-2222-2222-222222222222",
			StressScore:       77.0,
			Analysis:          "not exposed by the alerts endpoint",
			ThresholdExceeded: true,
			CreatedAt:         created,
		},
	}}

	list, err := NewQuery(store).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list = %d alerts, want 1", len(list))
	}

	a := list[0]
	if a.RecordID != "rec-1" {
		t.Errorf("RecordID = %q, want rec-1", a.RecordID)
	}
	if a.StressScore != 77.0 {
		t.Errorf("StressScore = %v, want 77", a.StressScore)
	}
	if !a.Timestamp.Equal(created) || a.Timestamp.Location() != time.UTC {
		t.Errorf("Timestamp = %v, want %v normalized to UTC", a.Timestamp, created)
	}
}

func TestList_PreservesStoreOrder(t *testing.T) {
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	store := &stubStore{recs: []*domain.StressRecord{
		{RecordID: "old", ThresholdExceeded: true, CreatedAt: base},
		{RecordID: "mid", ThresholdExceeded: true, CreatedAt: base.Add(time.Hour)},
		{RecordID: "new", ThresholdExceeded: true, CreatedAt: base.Add(2 * time.Hour)},
	}}

	list, err := NewQuery(store).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"old", "mid", "new"}
	for i, id := range want {
		if list[i].RecordID != id {
			t.Fatalf("list[%d] = %q, want %q (oldest first)", i, list[i].RecordID, id)
		}
	}
}

func TestList_EmptyIsNotNil(t *testing.T) {
	list, err := NewQuery(&stubStore{}).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if list == nil {
		t.Error("List should return an empty slice, not nil, so JSON encodes [] rather than null")
	}
	if len(list) != 0 {
		t.Errorf("list = %v, want empty", list)
	}
}

func TestList_StoreError(t *testing.T) {
	store := &stubStore{err: domain.ErrStoreUnavailable}
	_, err := NewQuery(store).List(context.Background())
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Errorf("got %v, want ErrStoreUnavailable passed through", err)
	}
}

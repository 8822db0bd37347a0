package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"stresswatch/backend/internal/alerts"
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

func newTestRouter(store *stubStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r.Group("/v1"), NewHandler(alerts.NewQuery(store)))
	return r
}

func getAlerts(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/alerts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleList(t *testing.T) {
	created := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	store := &stubStore{recs: []*domain.StressRecord{
		{RecordID: "rec-1", StressScore: 72.5, ThresholdExceeded: true, CreatedAt: created},
		{RecordID: "rec-2", StressScore: 88.0, ThresholdExceeded: true, CreatedAt: created.Add(time.Hour)},
	}}

	w := getAlerts(newTestRouter(store))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var list []struct {
		RecordID    string    `json:"record_id"`
		StressScore float64   `json:"stress_score"`
		Timestamp   time.Time `json:"timestamp"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("list = %d alerts, want 2", len(list))
	}
	if list[0].RecordID != "rec-1" || list[1].RecordID != "rec-2" {
		t.Errorf("order = [%s, %s], want oldest first", list[0].RecordID, list[1].RecordID)
	}
	if list[0].StressScore != 72.5 {
		t.Errorf("stress_score = %v, want 72.5", list[0].StressScore)
	}
	if !list[0].Timestamp.Equal(created) {
		t.Errorf("timestamp = %v, want %v", list[0].Timestamp, created)
	}
}

func TestHandleList_Empty(t *testing.T) {
	w := getAlerts(newTestRouter(&stubStore{}))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != "[]" {
		t.Errorf("body = %q, want [] (never null)", got)
	}
}

func TestHandleList_StoreUnavailable(t *testing.T) {
	w := getAlerts(newTestRouter(&stubStore{err: domain.ErrStoreUnavailable}))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestHandleList_UnexpectedError(t *testing.T) {
	w := getAlerts(newTestRouter(&stubStore{err: errors.New("boom")}))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

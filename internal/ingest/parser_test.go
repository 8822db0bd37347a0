package ingest

import (
	"errors"
	"testing"

	"stresswatch/backend/internal/stress/domain"
)

func TestParse_UnsupportedMediaType(t *testing.T) {
	testCases := []struct {
		name        string
		contentType string
	}{
		{"json", "application/json"},
		{"plain text", "text/plain"},
		{"empty", ""},
		{"octet stream", "application/octet-stream"},
		{"garbage", "not a media type"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte("a,b\n1,2\n"), tc.contentType)
			if !errors.Is(err, domain.ErrUnsupportedMediaType) {
				t.Errorf("Parse with content type %q: got %v, want ErrUnsupportedMediaType", tc.contentType, err)
			}
		})
	}
}

func TestParse_AcceptedMediaTypes(t *testing.T) {
	testCases := []struct {
		name        string
		contentType string
	}{
		{"text/csv", "text/csv"},
		{"application/csv", "application/csv"},
		{"with charset", "text/csv; charset=utf-8"},
		{"mixed case", "Text/CSV"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := Parse([]byte("a,b\n1,2\n"), tc.contentType)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if len(ds.Rows) != 1 {
				t.Errorf("rows = %d, want 1", len(ds.Rows))
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	raw := []byte("stress_level,sleep_hours,mood_score\n45,5.5,2.1\n60,4.0,1.5\n")
	ds, err := Parse(raw, "text/csv")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	wantHeader := []string{"stress_level", "sleep_hours", "mood_score"}
	if len(ds.Header) != len(wantHeader) {
		t.Fatalf("header = %v, want %v", ds.Header, wantHeader)
	}
	for i, name := range wantHeader {
		if ds.Header[i] != name {
			t.Errorf("header[%d] = %q, want %q", i, ds.Header[i], name)
		}
	}

	if len(ds.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(ds.Rows))
	}
	if v, ok := ds.Value(0, "sleep_hours"); !ok || v != "5.5" {
		t.Errorf("Value(0, sleep_hours) = %q, %v; want 5.5, true", v, ok)
	}
	if v, ok := ds.Value(1, "stress_level"); !ok || v != "60" {
		t.Errorf("Value(1, stress_level) = %q, %v; want 60, true", v, ok)
	}
}

func TestParse_EmptyBody(t *testing.T) {
	ds, err := Parse(nil, "text/csv")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !ds.Empty() {
		t.Error("empty body should yield an empty dataset")
	}
	if len(ds.Header) != 0 {
		t.Errorf("header = %v, want empty", ds.Header)
	}
}

func TestParse_HeaderOnly(t *testing.T) {
	ds, err := Parse([]byte("a,b,c\n"), "text/csv")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !ds.Empty() {
		t.Error("header-only body should yield an empty dataset")
	}
	if len(ds.Header) != 3 {
		t.Errorf("header length = %d, want 3", len(ds.Header))
	}
}

func TestParse_FieldCountMismatch(t *testing.T) {
	raw := []byte("a,b,c\n1,2,3\n4,5\n")
	_, err := Parse(raw, "text/csv")
	if err == nil {
		t.Fatal("Parse should fail on mismatched field count")
	}
	if !errors.Is(err, domain.ErrMalformedInput) {
		t.Errorf("got %v, want ErrMalformedInput", err)
	}

	var malformed *domain.MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("error %v should be a MalformedInputError", err)
	}
	if malformed.Row != 2 {
		t.Errorf("Row = %d, want 2 (data rows count from 1)", malformed.Row)
	}
	if malformed.Fields != 2 || malformed.Want != 3 {
		t.Errorf("Fields/Want = %d/%d, want 2/3", malformed.Fields, malformed.Want)
	}
}

func TestParse_UnterminatedQuote(t *testing.T) {
	raw := []byte("a,b\n1,\"unterminated\n")
	_, err := Parse(raw, "text/csv")
	if !errors.Is(err, domain.ErrMalformedInput) {
		t.Errorf("got %v, want ErrMalformedInput", err)
	}
}

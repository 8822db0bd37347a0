// Package domain holds the core types of the stress-analysis pipeline:
// parsed telemetry datasets, LLM verdicts, persisted stress records, and
// the error kinds shared across pipeline stages.
package domain

import "time"

// TelemetryRow is one CSV data row. Values are positional and align with
// the owning Dataset's header. Rows are never mutated after parsing.
type TelemetryRow []string

// Dataset is a parsed CSV payload: the header naming the fields and zero
// or more data rows. A header with no data rows is a valid, empty dataset.
type Dataset struct {
	Header []string
	Rows   []TelemetryRow
}

// Empty reports whether the dataset has no data rows.
func (d *Dataset) Empty() bool {
	return d == nil || len(d.Rows) == 0
}

// Value returns the named field of the given row, or ok=false when the
// field is not in the header or the row index is out of range.
func (d *Dataset) Value(row int, field string) (string, bool) {
	if d == nil || row < 0 || row >= len(d.Rows) {
		return "", false
	}
	for i, name := range d.Header {
		if name == field && i < len(d.Rows[row]) {
			return d.Rows[row][i], true
		}
	}
	return "", false
}

// StressVerdict is the LLM-derived assessment for one submission:
// a numeric score (expected in [0,100], but not enforced) and a
// natural-language rationale. Created once per submission.
type StressVerdict struct {
	StressScore float64
	Analysis    string
}

// StressRecord is the persisted result of one ingestion. Append-only:
// records are created exactly once and never updated or deleted.
// ThresholdExceeded is frozen at creation time; it is not re-evaluated
// if the configured threshold changes later.
type StressRecord struct {
	// RecordID is the caller-supplied dataset identifier, unique per submission.
	RecordID string
	// UserID is a UUID generated at ingestion time.
	UserID            string
	StressScore       float64
	Analysis          string
	ThresholdExceeded bool
	// CreatedAt is the ingestion time in UTC.
	CreatedAt time.Time
}

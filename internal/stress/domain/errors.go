package domain

import (
	"errors"
	"fmt"
)

// Pipeline error kinds. Every failure surfaced by ingest or the alerts
// query wraps exactly one of these sentinels so callers can match the
// kind with errors.Is without depending on error strings.
var (
	// ErrUnsupportedMediaType is returned when the upload does not declare
	// a CSV-compatible content type.
	ErrUnsupportedMediaType = errors.New("unsupported media type, expected a CSV body")
	// ErrMalformedInput is returned when a CSV data row cannot be parsed
	// or does not match the header's field count. See MalformedInputError.
	ErrMalformedInput = errors.New("malformed CSV input")
	// ErrInsufficientData is returned when a dataset has no data rows;
	// the analyzer refuses to spend a model call on no signal.
	ErrInsufficientData = errors.New("dataset contains no data rows")
	// ErrAnalysisTimeout is returned when the LLM call exceeds its deadline.
	ErrAnalysisTimeout = errors.New("stress analysis timed out")
	// ErrAnalysisParse is returned when the LLM response is not the expected
	// JSON shape. See AnalysisParseError, which retains the raw body.
	ErrAnalysisParse = errors.New("invalid analysis response from LLM")
	// ErrDuplicateRecord is returned by Save when the record_id already exists.
	ErrDuplicateRecord = errors.New("record already exists")
	// ErrStoreUnavailable is returned when the record store cannot be reached.
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// MalformedInputError identifies the offending data row of a malformed CSV.
// Row is 1-based and counts data rows only (the header is row 0).
type MalformedInputError struct {
	Row    int
	Fields int
	Want   int
}

func (e *MalformedInputError) Error() string {
	if e.Want > 0 {
		return fmt.Sprintf("malformed CSV input: row %d has %d fields, header has %d", e.Row, e.Fields, e.Want)
	}
	return fmt.Sprintf("malformed CSV input: row %d cannot be parsed", e.Row)
}

func (e *MalformedInputError) Unwrap() error { return ErrMalformedInput }

// AnalysisParseError carries the raw LLM response body for diagnostics.
// Model output format drift is the most likely real-world failure mode,
// so the body is never discarded.
type AnalysisParseError struct {
	Raw   string
	Cause error
}

func (e *AnalysisParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid analysis response from LLM: %v", e.Cause)
	}
	return "invalid analysis response from LLM"
}

func (e *AnalysisParseError) Unwrap() error { return ErrAnalysisParse }

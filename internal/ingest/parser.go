// Package ingest implements the stress-analysis write path: CSV parsing,
// the threshold policy, and the pipeline that orchestrates parse → analyze
// → decide → persist for a single submission.
package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime"

	"stresswatch/backend/internal/stress/domain"
)

// csvMediaTypes are the content types accepted as a CSV upload.
// Parameters (e.g. charset) are allowed and ignored.
var csvMediaTypes = map[string]bool{
	"text/csv":        true,
	"application/csv": true,
}

// Parse decodes a CSV payload into a dataset for one submission.
//
// The first row is the header and defines the field names; every data row
// must have the same field count or Parse fails with a MalformedInputError
// naming the offending 1-based data row. A header with zero data rows is
// valid and yields an empty dataset. Field values are passed through as-is;
// semantic validation is the analyzer's concern.
func Parse(raw []byte, contentType string) (*domain.Dataset, error) {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil || !csvMediaTypes[mt] {
		return nil, fmt.Errorf("%w: got %q", domain.ErrUnsupportedMediaType, contentType)
	}

	r := csv.NewReader(bytes.NewReader(raw))
	// The field-count check is done below so the error can name the data
	// row instead of the file line.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		// No header at all: an empty dataset; the analyzer rejects it.
		return &domain.Dataset{}, nil
	}
	if err != nil {
		return nil, &domain.MalformedInputError{Row: 0}
	}

	ds := &domain.Dataset{Header: header}
	for row := 1; ; row++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &domain.MalformedInputError{Row: row}
		}
		if len(rec) != len(header) {
			return nil, &domain.MalformedInputError{Row: row, Fields: len(rec), Want: len(header)}
		}
		ds.Rows = append(ds.Rows, domain.TelemetryRow(rec))
	}
	return ds, nil
}

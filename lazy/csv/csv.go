// Package csv provides source cursors over CSV data.
// Records are decoded with encoding/csv one at a time, as the cursor advances.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/lguimbarda/min-lazy/lazy/core"
)

// ReaderOption configures a CSV reader.
type ReaderOption func(*csv.Reader)

// WithComma sets the field delimiter (default is ',').
func WithComma(comma rune) ReaderOption {
	return func(r *csv.Reader) {
		r.Comma = comma
	}
}

// WithComment sets the comment character. Lines beginning with it are ignored.
func WithComment(comment rune) ReaderOption {
	return func(r *csv.Reader) {
		r.Comment = comment
	}
}

// WithFieldsPerRecord sets the expected number of fields per record.
// Positive: exactly that many. 0: as many as the first record. Negative: any.
func WithFieldsPerRecord(n int) ReaderOption {
	return func(r *csv.Reader) {
		r.FieldsPerRecord = n
	}
}

// WithLazyQuotes allows lazy quotes in quoted fields.
func WithLazyQuotes(lazy bool) ReaderOption {
	return func(r *csv.Reader) {
		r.LazyQuotes = lazy
	}
}

// WithTrimLeadingSpace trims leading whitespace from fields.
func WithTrimLeadingSpace(trim bool) ReaderOption {
	return func(r *csv.Reader) {
		r.TrimLeadingSpace = trim
	}
}

// Records creates a cursor over the records of r.
// A malformed record ends the cursor; Err reports it with its position.
// If r is an io.Closer it is closed when the cursor runs out or is closed.
func Records(r io.Reader, opts ...ReaderOption) *core.ReadCursor[[]string] {
	reader := csv.NewReader(r)
	for _, opt := range opts {
		opt(reader)
	}

	var closer func() error
	if c, ok := r.(io.Closer); ok {
		closer = c.Close
	}
	return core.FromRead(reader.Read, closer)
}

// ReadRecords creates a cursor over the records of the CSV file at path.
func ReadRecords(path string, opts ...ReaderOption) (*core.ReadCursor[[]string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	return Records(f, opts...), nil
}

// Rows creates a cursor over the records of r as maps keyed by the header.
// The first record is taken as the header when the cursor is created; an
// error reading it is returned right away.
func Rows(r io.Reader, opts ...ReaderOption) (*core.ReadCursor[map[string]string], error) {
	reader := csv.NewReader(r)
	for _, opt := range opts {
		opt(reader)
	}

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("csv: reading header: %w", err)
	}

	read := func() (map[string]string, error) {
		record, err := reader.Read()
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		return row, nil
	}

	var closer func() error
	if c, ok := r.(io.Closer); ok {
		closer = c.Close
	}
	return core.FromRead(read, closer), nil
}

package ingest

import (
	"errors"
	"fmt"
)

// ErrIngesterClosed is returned when a source is added after Build.
var ErrIngesterClosed = errors.New("ingester already built")

// ErrInvalidRecord indicates a glyph element that cannot form a record.
type ErrInvalidRecord struct {
	Name   string
	Reason string
}

func (e *ErrInvalidRecord) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid record: %s", e.Reason)
	}
	return fmt.Sprintf("invalid record %q: %s", e.Name, e.Reason)
}

// ErrDuplicateName indicates a glyph name defined twice within one source.
type ErrDuplicateName struct {
	Name string
}

func (e *ErrDuplicateName) Error() string {
	return fmt.Sprintf("duplicate glyph name %q", e.Name)
}

// ErrSource attributes an ingestion failure to a source and, when known, the
// line of the offending element.
//
// The underlying error can be accessed via errors.Unwrap.
type ErrSource struct {
	Source string
	Line   int
	cause  error
}

func (e *ErrSource) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("source %s:%d: %v", e.Source, e.Line, e.cause)
	}
	return fmt.Sprintf("source %s: %v", e.Source, e.cause)
}

func (e *ErrSource) Unwrap() error { return e.cause }

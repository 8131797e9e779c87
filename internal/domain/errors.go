package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable is returned when a record source cannot be read or parsed.
	ErrSourceUnavailable = errors.New("sentinel: source unavailable")
	// ErrInvalidRecord is returned when a record lacks its identifier.
	ErrInvalidRecord = errors.New("sentinel: invalid record")
	// ErrDuplicateRecord is returned when a billed id occurs more than once.
	ErrDuplicateRecord = fmt.Errorf("%w: duplicate id", ErrInvalidRecord)
	// ErrReportWriteFailure is returned when a rendered report cannot be persisted.
	ErrReportWriteFailure = errors.New("sentinel: report write failure")
)

// Record sources, used to point at the offending input in errors.
const (
	SourceBilling    = "billing"
	SourceSettlement = "settlement"
)

// RecordError identifies the record that aborted a reconciliation run.
type RecordError struct {
	Source string // SourceBilling or SourceSettlement
	Index  int    // 1-based position in the source sequence
	ID     string
	Err    error
}

func (e *RecordError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s record #%d: %v", e.Source, e.Index, e.Err)
	}
	return fmt.Sprintf("%s record #%d (%s): %v", e.Source, e.Index, e.ID, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

package diagram

import (
	"errors"
	"fmt"
)

// ErrEmptyDiagram is returned when the document holds no drawable cells.
var ErrEmptyDiagram = errors.New("diagram contains no cells")

// FormatError reports input that is not a well-formed draw.io graph.
type FormatError struct {
	// CellID identifies the offending cell, when there is one.
	CellID string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	msg := e.Reason
	if e.CellID != "" {
		msg = fmt.Sprintf("cell %q: %s", e.CellID, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return "malformed diagram: " + msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func formatErrorf(cellID, format string, args ...any) error {
	return &FormatError{CellID: cellID, Reason: fmt.Sprintf(format, args...)}
}

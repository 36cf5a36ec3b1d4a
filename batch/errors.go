package batch

import (
	"errors"
	"fmt"
)

var (
	// ErrNoGeometry is returned for a triangle with neither points nor quadrances.
	ErrNoGeometry = errors.New("triangle has neither points nor quadrances")

	// ErrAmbiguousGeometry is returned for a triangle with both points and quadrances.
	ErrAmbiguousGeometry = errors.New("triangle has both points and quadrances")

	// ErrUnknownCompression is returned for an unsupported compression name.
	ErrUnknownCompression = errors.New("unknown compression")
)

// LineError reports a JSON Lines input line that could not be decoded.
//
// The original underlying error can be accessed via errors.Unwrap.
type LineError struct {
	Line  int
	cause error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.cause)
}

func (e *LineError) Unwrap() error { return e.cause }

// InputError reports a triangle whose scalars could not be parsed or whose
// geometry is incomplete.
//
// The original underlying error can be accessed via errors.Unwrap.
type InputError struct {
	Index int
	ID    string
	cause error
}

func (e *InputError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("triangle %d (%s): %v", e.Index, e.ID, e.cause)
	}
	return fmt.Sprintf("triangle %d: %v", e.Index, e.cause)
}

func (e *InputError) Unwrap() error { return e.cause }

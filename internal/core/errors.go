package core

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyRegistry    = errors.New("no processes to simulate")
	ErrMissingPriority  = errors.New("process has no priority")
	ErrInvalidProcess   = errors.New("invalid process")
	ErrMalformedRecord  = errors.New("malformed process record")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

type InvalidProcessError struct {
	Field  string
	Reason string
}

func (e *InvalidProcessError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrInvalidProcess, e.Field, e.Reason)
}

func (e *InvalidProcessError) Unwrap() error {
	return ErrInvalidProcess
}

// MalformedRecordError describes a stored line that was skipped while loading.
type MalformedRecordError struct {
	Line int
	Text string
	Err  error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%v at line %d (%q): %v", ErrMalformedRecord, e.Line, e.Text, e.Err)
}

func (e *MalformedRecordError) Unwrap() []error {
	return []error{ErrMalformedRecord, e.Err}
}

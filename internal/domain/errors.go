package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrInputNotFound = errors.New("input not found")
	ErrIO            = errors.New("i/o failure")
	ErrMalformedLine = errors.New("malformed line")
)

// IOError describes a failed file operation.
type IOError struct {
	Op   string // "open", "read", "seek", "write", "commit"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both ErrIO and the underlying cause to errors.Is/As.
func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Err} }

// NewIOError wraps err as an IOError. A nil err yields nil.
func NewIOError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}

// LineError reports a line that could not be split into fields.
type LineError struct {
	Line   int
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

func (e *LineError) Unwrap() error { return ErrMalformedLine }

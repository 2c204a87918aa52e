package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidFormat  = errors.New("invalid format")
	ErrDivisionByZero = errors.New("division by zero")
	ErrInvalidConfig  = errors.New("invalid config")
	ErrNotFound       = errors.New("not found")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidFormat  ErrorKind = "invalid_format"
	KindDivisionByZero ErrorKind = "division_by_zero"
	KindInvalidConfig  ErrorKind = "invalid_config"
	KindNotFound       ErrorKind = "not_found"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op    string
	Kind  ErrorKind
	Input string // Optional: the offending user input
	Path  string // Optional: relevant file path
	Err   error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Input != "" {
		base += fmt.Sprintf(" (input=%q)", e.Input)
	}
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without string matching.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

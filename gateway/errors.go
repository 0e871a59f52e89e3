package gateway

import (
	"errors"
	"fmt"
)

// ErrNotFound is the non-exceptional "no such project" outcome of a
// single-record lookup.
var ErrNotFound = errors.New("project not found")

// ValidationError is a local precondition failure. The store is never
// called when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// GatewayError wraps a failed or rejected store call.
type GatewayError struct {
	// Op is the user-facing description of what failed,
	// e.g. "Failed to fetch projects".
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func gatewayError(op string, err error) error {
	return &GatewayError{Op: op, Err: err}
}

package shoppy

import (
	"errors"
	"fmt"
)

// ErrCancelled indicates the window was closed while a screen was running.
// This is a normal flow control error, not an infrastructure failure.
var ErrCancelled = errors.New("operation cancelled by user")

// InfrastructureError represents a UI level failure (SDL could not start,
// the font is missing, a renderer call failed). These errors are fatal for
// the program; nothing at the storefront level can recover from them.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("shoppy: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("shoppy: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates the user closed the window.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

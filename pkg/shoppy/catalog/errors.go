package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three failure classes of a catalog fetch.
// A *FetchError matches exactly one of them with errors.Is.
var (
	// ErrTransport covers network failures and unexpected HTTP statuses.
	ErrTransport = errors.New("catalog transport failure")

	// ErrMalformed indicates the response body did not decode into the expected shape.
	ErrMalformed = errors.New("catalog response malformed")

	// ErrNotFound indicates the requested product identifier does not exist.
	ErrNotFound = errors.New("product not found")
)

// FetchError describes a failed catalog request.
type FetchError struct {
	Kind      error  // One of ErrTransport, ErrMalformed, ErrNotFound
	Op        string // Operation that failed (e.g., "products", "product")
	RequestID string // Value sent in the X-Request-ID header
	Err       error  // Underlying error, may be nil
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog: %s: %v: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("catalog: %s: %v", e.Op, e.Kind)
}

func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindName returns a short stable name for the error class, used in logs and UI.
func (e *FetchError) KindName() string {
	return KindName(e)
}

// KindName classifies any error returned by the Client.
func KindName(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	case errors.Is(err, ErrTransport):
		return "transport"
	default:
		return "unknown"
	}
}

// IsNotFound reports whether err means the product identifier does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsTransport reports whether err is a network or HTTP status failure.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsMalformed reports whether err is a body decoding failure.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformed)
}

// RequestID returns the request id carried by a *FetchError in err's chain.
func RequestID(err error) string {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.RequestID
	}
	return ""
}

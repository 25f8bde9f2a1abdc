package unifi

import (
	"fmt"
	"net/http"
)

// TransportError indicates that the request never produced an HTTP response:
// DNS resolution, connection establishment, TLS handshake, timeout, or
// context cancellation. It wraps the underlying transport error.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError indicates that the server rejected the request with a non-success
// HTTP status. Code and Message are populated from the server's error
// envelope when one was returned; otherwise only StatusCode is set.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Code is the machine-readable error code from the server envelope, if any.
	Code string

	// Message is the human-readable error message from the server envelope, if any.
	Message string
}

func (e *APIError) Error() string {
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("API error: %d %s - %s", e.StatusCode, e.Code, e.Message)
	case e.Message != "":
		return fmt.Sprintf("API error: %d - %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("API error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
}

// IsNotFound reports whether the error is a 404.
func (e *APIError) IsNotFound() bool { return e.StatusCode == http.StatusNotFound }

// IsUnauthorized reports whether the error is a 401.
func (e *APIError) IsUnauthorized() bool { return e.StatusCode == http.StatusUnauthorized }

// DecodeError indicates that the server returned a success status but a body
// that does not match the expected JSON shape. This usually means client and
// controller versions have drifted apart.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ValidationError indicates malformed caller input, caught before any
// network call is made.
type ValidationError struct {
	// Field names the offending input.
	Field string

	// Reason describes why the input was rejected.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

package api

import (
	"errors"
	"fmt"
)

// Sentinel errors of the response taxonomy. Matched with errors.Is.
var (
	// ErrInvalidURL is returned when a request URL cannot be parsed.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrNoData is returned when a response carries no body at all.
	// An envelope whose data field is absent is NOT this error; that is a
	// legal empty result.
	ErrNoData = errors.New("no data in response")

	// ErrUnauthorized is returned for 401 responses. Session refresh is the
	// app network layer's job, not this package's.
	ErrUnauthorized = errors.New("unauthorized")
)

// DecodingError wraps a failure to decode a response body or one of its
// entities. Matched with errors.As; Unwrap exposes the cause.
type DecodingError struct {
	Err error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("decoding error: %v", e.Err)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}

// ServerError carries the backend's own failure message, either from a 5xx
// status or from an envelope with success=false.
type ServerError struct {
	Message    string
	StatusCode int
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("server error: %s", e.Message)
}

// NetworkError wraps a transport-level failure (DNS, connect, timeout).
// Matched with errors.As; Unwrap exposes the underlying error.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

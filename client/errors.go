package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrMissingCredentials indicates no API key was given or found in RATED_API_KEY
	ErrMissingCredentials = errors.New("rated: API key is required (pass it explicitly or set RATED_API_KEY)")
	// ErrInvalidUserAgent indicates the identity header is missing or malformed
	ErrInvalidUserAgent = errors.New("user agent not valid")
	// ErrMissingBearerToken indicates the authorization header is not a bearer token
	ErrMissingBearerToken = errors.New("bearer token is missing")
	// ErrEmptyQueryParam indicates a query parameter with an empty value
	ErrEmptyQueryParam = errors.New("empty query parameters are not allowed")
)

// ValidationError indicates an outgoing request failed a local check and was
// not sent
type ValidationError struct {
	Reason string
	Err    error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("rated: invalid request: %s", e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// APIError represents a 4xx or 5xx response from the Rated API
type APIError struct {
	StatusCode int
	RequestID  string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("rated API error: status %d (request id %s): %s", e.StatusCode, e.RequestID, e.Body)
	}
	return fmt.Sprintf("rated API error: status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsServerError checks if the server failed to handle the request
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

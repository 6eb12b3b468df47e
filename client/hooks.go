package client

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/blang/semver"
)

// RequestHook inspects an outgoing request. A non-nil error stops the request
// before it is sent.
type RequestHook func(req *http.Request) error

// ResponseHook inspects a response before it is handed to the caller. A
// non-nil error is returned to the caller instead of the response.
type ResponseHook func(resp *http.Response) error

// maxErrorBody bounds how much of an error response is kept in APIError
const maxErrorBody = 64 << 10

func checkUserAgent(req *http.Request) error {
	ua := req.Header.Get("User-Agent")
	version, ok := strings.CutPrefix(ua, identityPrefix)
	if !ok {
		return &ValidationError{Reason: fmt.Sprintf("User-Agent not valid: %q", ua), Err: ErrInvalidUserAgent}
	}
	if _, err := semver.Parse(version); err != nil {
		return &ValidationError{Reason: fmt.Sprintf("User-Agent not valid: %q: %v", ua, err), Err: ErrInvalidUserAgent}
	}
	return nil
}

func checkAuthHeader(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return &ValidationError{Reason: "bearer token is missing", Err: ErrMissingBearerToken}
	}
	return nil
}

func checkEmptyQueryParams(req *http.Request) error {
	for key, values := range req.URL.Query() {
		for _, v := range values {
			if v == "" {
				return &ValidationError{
					Reason: fmt.Sprintf("empty query parameters are not allowed: %q", key),
					Err:    ErrEmptyQueryParam,
				}
			}
		}
	}
	return nil
}

func raiseOn4xx5xx(resp *http.Response) error {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &APIError{
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get(HeaderRequestID),
		Body:       string(body),
	}
}

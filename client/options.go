package client

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL       string
	timeout       time.Duration
	httpClient    *http.Client
	requestHooks  []RequestHook
	responseHooks []ResponseHook
	registerer    prometheus.Registerer
}

// WithBaseURL overrides the API origin. Intended for tests and proxies.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout. There is no timeout by default.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client. WithTimeout is ignored
// when a custom client is given.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithRequestHook appends a hook that runs after the built-in request checks.
func WithRequestHook(hook RequestHook) Option {
	return func(o *clientOptions) {
		o.requestHooks = append(o.requestHooks, hook)
	}
}

// WithResponseHook appends a hook that runs before the built-in status check.
func WithResponseHook(hook ResponseHook) Option {
	return func(o *clientOptions) {
		o.responseHooks = append(o.responseHooks, hook)
	}
}

// WithMetrics counts responses by method and status code on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *clientOptions) {
		o.registerer = reg
	}
}

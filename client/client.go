package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rated-network/rated-go/config"
)

// DefaultBaseURL is the origin of the Rated API
const DefaultBaseURL = "https://api.rated.network"

const (
	// HeaderNetwork selects the network a request is scoped to
	HeaderNetwork = "X-Rated-Network"
	// HeaderRequestID identifies a request for support escalation
	HeaderRequestID = "X-Request-Id"
)

// Client represents a Rated API client
type Client struct {
	baseURL       string
	network       string
	header        http.Header
	httpClient    *http.Client
	requestHooks  []RequestHook
	responseHooks []ResponseHook
	logger        zerolog.Logger
}

// New creates a new Rated client. An empty apiKey is resolved from
// RATED_API_KEY; if that is empty too, ErrMissingCredentials is returned.
// The network is sent as-is; resources validate it against what they support.
func New(apiKey, network string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		apiKey = config.APIKeyFromEnv()
	}
	if apiKey == "" {
		return nil, ErrMissingCredentials
	}

	o := clientOptions{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(&o)
	}

	baseURL := strings.TrimRight(o.baseURL, "/")
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", o.baseURL, err)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	header := make(http.Header)
	header.Set("User-Agent", UserAgent)
	header.Set("Authorization", "Bearer "+apiKey)
	header.Set(HeaderNetwork, network)

	requestHooks := []RequestHook{checkUserAgent, checkAuthHeader, checkEmptyQueryParams}
	requestHooks = append(requestHooks, o.requestHooks...)

	responseHooks := append([]ResponseHook(nil), o.responseHooks...)
	if o.registerer != nil {
		responseHooks = append(responseHooks, countResponses(newResponseCounter(o.registerer)))
	}
	responseHooks = append(responseHooks, raiseOn4xx5xx)

	return &Client{
		baseURL:       baseURL,
		network:       network,
		header:        header,
		httpClient:    httpClient,
		requestHooks:  requestHooks,
		responseHooks: responseHooks,
		logger:        logger,
	}, nil
}

// Network returns the network selector sent with every request
func (c *Client) Network() string {
	return c.network
}

// BaseURL returns the API origin requests are sent to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET request and returns the parsed JSON body. Numbers are
// returned as json.Number.
func (c *Client) Get(ctx context.Context, path string, params Params) (any, error) {
	var out any
	if err := c.getJSON(ctx, path, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Post sends body as JSON and returns the raw response. The caller must
// close the response body. Error statuses are still returned as *APIError.
func (c *Client) Post(ctx context.Context, path string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	requestURL, err := c.buildURL(path, nil)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// getJSON performs a GET request and decodes the body into out
func (c *Client) getJSON(ctx context.Context, path string, params Params, out any) error {
	requestURL, err := c.buildURL(path, params)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// buildURL joins path to the base URL. Params are merged into any query the
// path already carries; with no params the path is used verbatim.
func (c *Client) buildURL(path string, params Params) (string, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("invalid request path %q: %w", path, err)
	}

	if values := params.Values(); len(values) > 0 {
		query := u.Query()
		for key, vs := range values {
			for _, v := range vs {
				query.Add(key, v)
			}
		}
		u.RawQuery = query.Encode()
	}

	return u.String(), nil
}

// do attaches the fixed headers, runs the hook chains and sends the request
func (c *Client) do(req *http.Request) (*http.Response, error) {
	for key, values := range c.header {
		req.Header[key] = append([]string(nil), values...)
	}

	for _, hook := range c.requestHooks {
		if err := hook(req); err != nil {
			c.logger.Debug().
				Err(err).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Msg("Rejected Rated API request")
			return nil, err
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Str("request_id", resp.Header.Get(HeaderRequestID)).
		Msg("Rated API request")

	for _, hook := range c.responseHooks {
		if err := hook(resp); err != nil {
			resp.Body.Close()
			return nil, err
		}
	}

	return resp, nil
}

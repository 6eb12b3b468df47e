package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rated-network/rated-go/config"
)

func newTestClient(t *testing.T, serverURL string, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithBaseURL(serverURL)}, opts...)
	c, err := New("fake_api_key", "mainnet", zerolog.Nop(), opts...)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		t.Setenv(config.EnvAPIKey, "")
		_, err := New("", "mainnet", zerolog.Nop())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("defaults", func(t *testing.T) {
		c, err := New("fake_api_key", "holesky", zerolog.Nop())
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, c.BaseURL())
		assert.Equal(t, "holesky", c.Network())
		assert.Equal(t, "Bearer fake_api_key", c.header.Get("Authorization"))
		assert.Equal(t, time.Duration(0), c.httpClient.Timeout)
	})

	t.Run("with timeout", func(t *testing.T) {
		c, err := New("fake_api_key", "mainnet", zerolog.Nop(), WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, c.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		c, err := New("fake_api_key", "mainnet", zerolog.Nop(), WithHTTPClient(custom))
		require.NoError(t, err)
		assert.Same(t, custom, c.httpClient)
	})

	t.Run("base url trailing slash", func(t *testing.T) {
		c, err := New("fake_api_key", "mainnet", zerolog.Nop(), WithBaseURL("https://foo.bar/"))
		require.NoError(t, err)
		assert.Equal(t, "https://foo.bar", c.BaseURL())
	})
}

func TestNew_Credentials(t *testing.T) {
	var gotAuth atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	t.Setenv(config.EnvAPIKey, "ey...0x69")

	t.Run("from environment", func(t *testing.T) {
		c, err := New("", "mainnet", zerolog.Nop(), WithBaseURL(server.URL))
		require.NoError(t, err)
		_, err = c.Get(context.Background(), "/v0/health", nil)
		require.NoError(t, err)
		assert.Equal(t, "Bearer ey...0x69", gotAuth.Load())
	})

	t.Run("explicit key overrides environment", func(t *testing.T) {
		c, err := New("ey...MyKey", "mainnet", zerolog.Nop(), WithBaseURL(server.URL))
		require.NoError(t, err)
		_, err = c.Get(context.Background(), "/v0/health", nil)
		require.NoError(t, err)
		assert.Equal(t, "Bearer ey...MyKey", gotAuth.Load())
	})
}

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v0/eth/validators/1000/apr", r.URL.Path)
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "Bearer fake_api_key", r.Header.Get("Authorization"))
		assert.Equal(t, "mainnet", r.Header.Get(HeaderNetwork))
		assert.Equal(t, url.Values{"aprType": {"backward"}, "window": {"all"}}, r.URL.Query())

		json.NewEncoder(w).Encode(map[string]any{
			"validatorIndex":   1000,
			"activeStake":      4823520000000000,
			"percentage":       5.35,
			"activeValidators": 150735,
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	body, err := c.Get(context.Background(), "/v0/eth/validators/1000/apr", Params{
		"aprType": "backward",
		"window":  "all",
		"from":    nil,
	})
	require.NoError(t, err)

	m, ok := body.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("1000"), m["validatorIndex"])
	assert.Equal(t, json.Number("4823520000000000"), m["activeStake"])
}

func TestClient_Get_APIError(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		requestID string
	}{
		{name: "internal server error", status: http.StatusInternalServerError, requestID: "req-500"},
		{name: "bad request", status: http.StatusBadRequest, requestID: "req-400"},
		{name: "unauthorized", status: http.StatusUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, requestID: "req-403"},
		{name: "not found", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.requestID != "" {
					w.Header().Set(HeaderRequestID, tt.requestID)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"detail":"nope"}`))
			}))
			defer server.Close()

			c := newTestClient(t, server.URL)
			_, err := c.Get(context.Background(), "/v0/health", nil)
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.requestID, apiErr.RequestID)
			assert.Equal(t, `{"detail":"nope"}`, apiErr.Body)
			assert.Equal(t, tt.status == http.StatusNotFound, apiErr.IsNotFound())
			assert.Equal(t, tt.status == http.StatusUnauthorized || tt.status == http.StatusForbidden, apiErr.IsUnauthorized())
			assert.Equal(t, tt.status >= 500, apiErr.IsServerError())
		})
	}
}

func TestClient_Get_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.Get(context.Background(), "/v0/health", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse response")

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestClient_Get_FollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"moved":true}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestClient(t, server.URL)
	body, err := c.Get(context.Background(), "/old", nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"moved": true}, body)
}

func TestClient_Validation(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	t.Run("empty query value", func(t *testing.T) {
		_, err := c.Get(context.Background(), "/v0/eth/operators", Params{"parentId": ""})
		require.Error(t, err)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.ErrorIs(t, err, ErrEmptyQueryParam)
		assert.Contains(t, vErr.Reason, "parentId")
	})

	t.Run("empty value in cursor path", func(t *testing.T) {
		_, err := c.Get(context.Background(), "/v0/eth/blocks?from=&size=1", nil)
		assert.ErrorIs(t, err, ErrEmptyQueryParam)
	})

	t.Run("broken identity", func(t *testing.T) {
		c := newTestClient(t, server.URL)
		c.header.Set("User-Agent", "python-httpx/0.25")
		_, err := c.Get(context.Background(), "/v0/health", nil)
		assert.ErrorIs(t, err, ErrInvalidUserAgent)
	})

	t.Run("missing token", func(t *testing.T) {
		c := newTestClient(t, server.URL)
		c.header.Set("Authorization", "Bearer ")
		_, err := c.Post(context.Background(), "/v0/selfReports/validators", map[string]any{})
		assert.ErrorIs(t, err, ErrMissingBearerToken)
	})

	assert.Equal(t, int32(0), hits.Load(), "rejected requests must not reach the server")
}

func TestRequestHooks(t *testing.T) {
	newRequest := func(rawURL string, header map[string]string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, rawURL, nil)
		for k, v := range header {
			req.Header.Set(k, v)
		}
		return req
	}

	tests := []struct {
		name    string
		hook    RequestHook
		req     *http.Request
		wantErr error
	}{
		{"valid user agent", checkUserAgent, newRequest("https://foo.bar/", map[string]string{"User-Agent": UserAgent}), nil},
		{"prerelease user agent", checkUserAgent, newRequest("https://foo.bar/", map[string]string{"User-Agent": "rated-go/1.0.0-rc.1"}), nil},
		{"missing user agent", checkUserAgent, newRequest("https://foo.bar/", nil), ErrInvalidUserAgent},
		{"foreign user agent", checkUserAgent, newRequest("https://foo.bar/", map[string]string{"User-Agent": "curl/8.0"}), ErrInvalidUserAgent},
		{"non semver user agent", checkUserAgent, newRequest("https://foo.bar/", map[string]string{"User-Agent": "rated-go/dev"}), ErrInvalidUserAgent},
		{"bearer token", checkAuthHeader, newRequest("https://foo.bar/", map[string]string{"Authorization": "Bearer abc"}), nil},
		{"basic auth", checkAuthHeader, newRequest("https://foo.bar/", map[string]string{"Authorization": "Basic abc"}), ErrMissingBearerToken},
		{"no auth", checkAuthHeader, newRequest("https://foo.bar/", nil), ErrMissingBearerToken},
		{"query values", checkEmptyQueryParams, newRequest("https://foo.bar/?a=1&b=x", nil), nil},
		{"empty query value", checkEmptyQueryParams, newRequest("https://foo.bar/?a=1&b=", nil), ErrEmptyQueryParam},
		{"bare query key", checkEmptyQueryParams, newRequest("https://foo.bar/?a", nil), ErrEmptyQueryParam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.hook(tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotEmpty(t, vErr.Reason)
		})
	}
}

func TestClient_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v0/selfReports/validators", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer fake_api_key", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []any{"0x01", "0x02"}, body["validators"])
		assert.Contains(t, body, "poolTag")
		assert.Nil(t, body["poolTag"])

		w.Header().Set(HeaderRequestID, "req-post")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"validators": body["validators"]})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	resp, err := c.Post(context.Background(), "/v0/selfReports/validators", map[string]any{
		"validators": []string{"0x01", "0x02"},
		"poolTag":    nil,
	})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "req-post", resp.Header.Get(HeaderRequestID))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"validators":["0x01","0x02"]}`, string(raw))
}

func TestClient_Post_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderRequestID, "req-422")
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	resp, err := c.Post(context.Background(), "/v0/selfReports/validators", map[string]any{"validators": []string{}})
	assert.Nil(t, resp)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "req-422", apiErr.RequestID)
}

func TestClient_CustomHooks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	var seen []int
	errBlocked := errors.New("blocked")

	c := newTestClient(t, server.URL,
		WithResponseHook(func(resp *http.Response) error {
			seen = append(seen, resp.StatusCode)
			return nil
		}),
	)
	_, err := c.Get(context.Background(), "/v0/health", nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, []int{http.StatusInternalServerError}, seen, "custom response hooks see error responses")

	blocked := newTestClient(t, server.URL,
		WithRequestHook(func(req *http.Request) error { return errBlocked }),
	)
	_, err = blocked.Get(context.Background(), "/v0/health", nil)
	assert.ErrorIs(t, err, errBlocked)
}

func TestClient_Metrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	reg := prometheus.NewRegistry()
	c := newTestClient(t, server.URL, WithMetrics(reg))
	// a second client on the same registry shares the counter
	other := newTestClient(t, server.URL, WithMetrics(reg))

	ctx := context.Background()
	_, err := c.Get(ctx, "/ok", nil)
	require.NoError(t, err)
	_, err = other.Get(ctx, "/ok", nil)
	require.NoError(t, err)
	_, err = c.Get(ctx, "/missing", nil)
	require.Error(t, err)

	counter := newResponseCounter(reg)
	assert.Equal(t, 2.0, testutil.ToFloat64(counter.WithLabelValues("GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(counter.WithLabelValues("GET", "404")))
}

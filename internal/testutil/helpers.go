// Package testutil provides mock HTTP servers shared by the client tests.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewMockServer creates a test HTTP server with a predefined response.
// It validates the request path and the X-API-KEY header before writing
// the configured body and status code.
func NewMockServer(t *testing.T, expectedPath, apiKey, responseBody string, statusCode int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, expectedPath, r.URL.Path, "request path should match expected")

		if apiKey != "" {
			assert.Equal(t, apiKey, r.Header.Get("X-API-KEY"), "X-API-KEY header should be set")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_, err := w.Write([]byte(responseBody))
		require.NoError(t, err, "failed to write response body")
	}))
}

// MockResponse is one canned response served by NewMockServerSequence.
type MockResponse struct {
	Body       string
	StatusCode int
}

// NewMockServerSequence creates a test server that returns responses in
// order, one per request. Useful for pagination tests where each page is
// a separate round trip.
func NewMockServerSequence(t *testing.T, responses []MockResponse) *httptest.Server {
	t.Helper()

	callCount := 0

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if callCount >= len(responses) {
			t.Errorf("more requests than configured responses (got %d requests, have %d responses)",
				callCount+1, len(responses))
			w.WriteHeader(http.StatusInternalServerError)

			return
		}

		resp := responses[callCount]
		callCount++

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.StatusCode)
		_, err := w.Write([]byte(resp.Body))
		require.NoError(t, err, "failed to write response body")
	}))
}

// CountingServer is a test server that records how many requests it has
// received. Use it to assert that client-side validation short-circuits
// before any round trip happens.
type CountingServer struct {
	*httptest.Server

	requests atomic.Int64
}

// Requests returns the number of requests the server has handled.
func (s *CountingServer) Requests() int {
	return int(s.requests.Load())
}

// NewCountingServer creates a test server that counts requests and
// delegates to the given handler. A nil handler responds 200 with an
// empty JSON object.
func NewCountingServer(t *testing.T, handler http.HandlerFunc) *CountingServer {
	t.Helper()

	srv := &CountingServer{}
	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srv.requests.Add(1)

		if handler != nil {
			handler(w, r)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{}"))
	}))

	return srv
}

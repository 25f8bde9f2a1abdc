package unifi

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	u, err := url.Parse(baseURL)
	require.NoError(t, err)

	return &Client{baseURL: u}
}

func TestNewRequest(t *testing.T) {
	t.Parallel()

	t.Run("preserves the base URL path prefix", func(t *testing.T) {
		t.Parallel()

		c := testClient(t, "https://unifi.local/proxy/network/integrations")

		req, err := c.newRequest(context.Background(), http.MethodGet, "/v1/sites", nil, nil)
		require.NoError(t, err)

		assert.Equal(t, "/proxy/network/integrations/v1/sites", req.URL.Path)
		assert.Equal(t, "application/json", req.Header.Get("Accept"))
		assert.Empty(t, req.Header.Get("Content-Type"))
	})

	t.Run("encodes query parameters", func(t *testing.T) {
		t.Parallel()

		c := testClient(t, "https://unifi.local")

		params := url.Values{}
		params.Set("offset", "50")
		params.Set("limit", "25")

		req, err := c.newRequest(context.Background(), http.MethodGet, "/v1/sites", params, nil)
		require.NoError(t, err)

		assert.Equal(t, "limit=25&offset=50", req.URL.RawQuery)
	})

	t.Run("marshals the body and sets Content-Type", func(t *testing.T) {
		t.Parallel()

		c := testClient(t, "https://unifi.local")

		req, err := c.newRequest(context.Background(), http.MethodPost, "/v1/actions", nil, deviceAction{Action: "RESTART"})
		require.NoError(t, err)

		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"action":"RESTART"}`, string(body))
	})
}

func TestParseID(t *testing.T) {
	t.Parallel()

	t.Run("accepts a well-formed UUID", func(t *testing.T) {
		t.Parallel()

		id, err := parseID("site ID", "550e8400-e29b-41d4-a716-446655440000")
		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()

		for _, bad := range []string{"", "default", "550e8400", "not-a-uuid-at-all"} {
			_, err := parseID("site ID", bad)
			require.Error(t, err, "input %q", bad)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "site ID", vErr.Field)
		}
	})
}

func TestListQuery(t *testing.T) {
	t.Parallel()

	t.Run("nil params yields empty query", func(t *testing.T) {
		t.Parallel()

		v, err := listQuery(nil)
		require.NoError(t, err)
		assert.Empty(t, v.Encode())
	})

	t.Run("zero values are omitted", func(t *testing.T) {
		t.Parallel()

		v, err := listQuery(&ListParams{})
		require.NoError(t, err)
		assert.Empty(t, v.Encode())
	})

	t.Run("encodes offset and limit", func(t *testing.T) {
		t.Parallel()

		v, err := listQuery(&ListParams{Offset: 50, Limit: 25})
		require.NoError(t, err)
		assert.Equal(t, "limit=25&offset=50", v.Encode())
	})
}

package unifi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageHasMore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page Page[int]
		want bool
	}{
		{
			name: "first of several pages",
			page: Page[int]{Offset: 0, Limit: 10, Count: 10, TotalCount: 24, Data: make([]int, 10)},
			want: true,
		},
		{
			name: "middle page",
			page: Page[int]{Offset: 10, Limit: 10, Count: 10, TotalCount: 24, Data: make([]int, 10)},
			want: true,
		},
		{
			name: "last partial page",
			page: Page[int]{Offset: 20, Limit: 10, Count: 4, TotalCount: 24, Data: make([]int, 4)},
			want: false,
		},
		{
			name: "exactly one full page",
			page: Page[int]{Offset: 0, Limit: 10, Count: 10, TotalCount: 10, Data: make([]int, 10)},
			want: false,
		},
		{
			name: "empty page wins over totalCount",
			page: Page[int]{Offset: 0, Limit: 10, Count: 0, TotalCount: 100, Data: nil},
			want: false,
		},
		{
			name: "no totalCount, full page",
			page: Page[int]{Offset: 0, Limit: 10, Count: 10, Data: make([]int, 10)},
			want: true,
		},
		{
			name: "no totalCount, short page",
			page: Page[int]{Offset: 0, Limit: 10, Count: 4, Data: make([]int, 4)},
			want: false,
		},
		{
			name: "no totalCount and no limit",
			page: Page[int]{Offset: 0, Count: 4, Data: make([]int, 4)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.page.hasMore())
		})
	}
}

func TestCheckStatus(t *testing.T) {
	t.Parallel()

	t.Run("success statuses pass through", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, checkStatus(http.StatusOK, nil))
		assert.NoError(t, checkStatus(http.StatusCreated, []byte("{}")))
		assert.NoError(t, checkStatus(http.StatusNoContent, nil))
	})

	t.Run("statusCode envelope", func(t *testing.T) {
		t.Parallel()

		err := checkStatus(http.StatusNotFound, []byte(`{"statusCode":404,"message":"device not found"}`))
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "device not found", apiErr.Message)
		assert.Empty(t, apiErr.Code)
		assert.True(t, apiErr.IsNotFound())
	})

	t.Run("code envelope", func(t *testing.T) {
		t.Parallel()

		err := checkStatus(http.StatusNotFound, []byte(`{"code":"not_found","message":"device missing"}`))

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "not_found", apiErr.Code)
		assert.Equal(t, "device missing", apiErr.Message)
	})

	t.Run("non-JSON body keeps raw status", func(t *testing.T) {
		t.Parallel()

		err := checkStatus(http.StatusBadGateway, []byte("<html>Bad Gateway</html>"))

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Empty(t, apiErr.Code)
		assert.Empty(t, apiErr.Message)
	})

	t.Run("envelope statusCode overrides transport status", func(t *testing.T) {
		t.Parallel()

		err := checkStatus(http.StatusInternalServerError, []byte(`{"statusCode":429,"message":"rate limited"}`))

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	})
}

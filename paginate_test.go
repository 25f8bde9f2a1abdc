package unifi

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPages builds a pageFunc serving the given pages in order, keyed by
// the requested offset.
func stubPages(t *testing.T, pages []Page[int]) pageFunc[int] {
	t.Helper()

	return func(_ context.Context, params ListParams) (*Page[int], error) {
		for i := range pages {
			if pages[i].Offset == params.Offset {
				return &pages[i], nil
			}
		}

		t.Fatalf("unexpected offset %d", params.Offset)

		return nil, nil
	}
}

func TestIterate(t *testing.T) {
	t.Parallel()

	t.Run("walks pages in server order", func(t *testing.T) {
		t.Parallel()

		fetch := stubPages(t, []Page[int]{
			{Offset: 0, Limit: 25, Count: 10, TotalCount: 24, Data: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
			{Offset: 10, Limit: 25, Count: 10, TotalCount: 24, Data: []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}},
			{Offset: 20, Limit: 25, Count: 4, TotalCount: 24, Data: []int{20, 21, 22, 23}},
		})

		items, err := collect(iterate(context.Background(), fetch))
		require.NoError(t, err)
		require.Len(t, items, 24)

		for i, item := range items {
			assert.Equal(t, i, item)
		}
	})

	t.Run("empty page terminates even when totalCount disagrees", func(t *testing.T) {
		t.Parallel()

		fetch := stubPages(t, []Page[int]{
			{Offset: 0, Limit: 25, Count: 0, TotalCount: 100, Data: nil},
		})

		items, err := collect(iterate(context.Background(), fetch))
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("fetch error is yielded once and ends the sequence", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("controller unreachable")
		calls := 0

		fetch := func(_ context.Context, params ListParams) (*Page[int], error) {
			calls++
			if params.Offset == 0 {
				return &Page[int]{Offset: 0, Limit: 2, Count: 2, TotalCount: 4, Data: []int{1, 2}}, nil
			}

			return nil, boom
		}

		var items []int

		var errs []error

		for item, err := range iterate(context.Background(), fetch) {
			if err != nil {
				errs = append(errs, err)

				continue
			}

			items = append(items, item)
		}

		assert.Equal(t, []int{1, 2}, items)
		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], boom)
		assert.Equal(t, 2, calls)
	})

	t.Run("early break stops fetching", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ ListParams) (*Page[int], error) {
			calls++

			return &Page[int]{Offset: 0, Limit: 2, Count: 2, TotalCount: 100, Data: []int{1, 2}}, nil
		}

		for item := range iterate(context.Background(), fetch) {
			if item == 1 {
				break
			}
		}

		assert.Equal(t, 1, calls)
	})

	t.Run("ranging again restarts from the first page", func(t *testing.T) {
		t.Parallel()

		fetch := stubPages(t, []Page[int]{
			{Offset: 0, Limit: 25, Count: 2, TotalCount: 2, Data: []int{1, 2}},
		})

		seq := iterate(context.Background(), fetch)

		first, err := collect(seq)
		require.NoError(t, err)

		second, err := collect(seq)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestCollect(t *testing.T) {
	t.Parallel()

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		fetch := func(_ context.Context, _ ListParams) (*Page[int], error) {
			return nil, boom
		}

		items, err := collect(iterate(context.Background(), fetch))
		require.ErrorIs(t, err, boom)
		assert.Nil(t, items)
	})
}

package unifi

import (
	"context"
	"iter"
)

// ListParams control pagination of list endpoints. Zero values are omitted
// from the query string and the server applies its defaults.
type ListParams struct {
	// Offset is the index of the first item to return.
	Offset int `url:"offset,omitempty"`

	// Limit is the maximum number of items to return per page.
	Limit int `url:"limit,omitempty"`
}

// pageFunc fetches a single page of items T.
type pageFunc[T any] func(context.Context, ListParams) (*Page[T], error)

// iterate returns a lazy iterator that walks all pages using fetch.
// Items are yielded in server order, page by page, with no reordering or
// deduplication. A fetch failure is yielded once and terminates the
// sequence; items from earlier pages have already been observed by the
// caller. Ranging over the returned sequence again restarts from the
// first page.
func iterate[T any](ctx context.Context, fetch pageFunc[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		params := ListParams{Offset: 0, Limit: DefaultPageLimit}

		for {
			page, err := fetch(ctx, params)
			if err != nil {
				yield(*new(T), err)
				return
			}

			for _, item := range page.Data {
				if !yield(item, nil) {
					return
				}
			}

			if !page.hasMore() {
				return
			}
			params.Offset += len(page.Data)
		}
	}
}

// collect materializes an iterator into a slice, stopping on the first error.
func collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var items []T
	for item, err := range seq {
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

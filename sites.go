package unifi

import (
	"context"
	"iter"
	"net/http"

	"github.com/google/uuid"
)

// Site is a site configured on the controller.
type Site struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name,omitempty"`
}

// ListSites retrieves a single page of sites.
// A nil params requests the first page with the server's default page size.
func (c *Client) ListSites(ctx context.Context, params *ListParams) (*Page[Site], error) {
	v, err := listQuery(params)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/v1/sites", v, nil)
	if err != nil {
		return nil, err
	}

	return doJSON[Page[Site]](c, req)
}

// AllSites retrieves all sites, traversing every page, and returns them in
// server order.
func (c *Client) AllSites(ctx context.Context) ([]Site, error) {
	return collect(c.SitesIter(ctx))
}

// SitesIter returns a lazy iterator over all sites. Pages are fetched on
// demand as the caller advances.
func (c *Client) SitesIter(ctx context.Context) iter.Seq2[Site, error] {
	return iterate(ctx, func(ctx context.Context, p ListParams) (*Page[Site], error) {
		return c.ListSites(ctx, &p)
	})
}

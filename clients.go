package unifi

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ClientType distinguishes how a network client is connected.
type ClientType string

const (
	ClientTypeWired    ClientType = "WIRED"
	ClientTypeWireless ClientType = "WIRELESS"
	ClientTypeVPN      ClientType = "VPN"
	ClientTypeTeleport ClientType = "TELEPORT"
)

// NetworkClient is a client connected to a site. The Type field discriminates
// the connection kind; MacAddress and UplinkDeviceID are only present for
// wired and wireless clients.
type NetworkClient struct {
	ID             uuid.UUID  `json:"id"`
	Type           ClientType `json:"type"`
	Name           string     `json:"name,omitempty"`
	ConnectedAt    time.Time  `json:"connectedAt"`
	IPAddress      string     `json:"ipAddress,omitempty"`
	MacAddress     string     `json:"macAddress,omitempty"`
	UplinkDeviceID uuid.UUID  `json:"uplinkDeviceId,omitempty"`
}

// ListClients retrieves a single page of clients for a site.
func (c *Client) ListClients(ctx context.Context, siteID string, params *ListParams) (*Page[NetworkClient], error) {
	site, err := parseID("site ID", siteID)
	if err != nil {
		return nil, err
	}

	v, err := listQuery(params)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/sites/%s/clients", site), v, nil)
	if err != nil {
		return nil, err
	}

	return doJSON[Page[NetworkClient]](c, req)
}

// AllClients retrieves all clients for a site, traversing every page, and
// returns them in server order.
func (c *Client) AllClients(ctx context.Context, siteID string) ([]NetworkClient, error) {
	return collect(c.ClientsIter(ctx, siteID))
}

// ClientsIter returns a lazy iterator over all clients for a site.
func (c *Client) ClientsIter(ctx context.Context, siteID string) iter.Seq2[NetworkClient, error] {
	return iterate(ctx, func(ctx context.Context, p ListParams) (*Page[NetworkClient], error) {
		return c.ListClients(ctx, siteID, &p)
	})
}

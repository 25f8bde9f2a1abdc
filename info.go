package unifi

import (
	"context"
	"net/http"
)

// ApplicationInfo describes the Network application running on the controller.
type ApplicationInfo struct {
	ApplicationVersion string `json:"applicationVersion"`
}

// GetApplicationInfo retrieves version information about the Network application.
func (c *Client) GetApplicationInfo(ctx context.Context) (*ApplicationInfo, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v1/info", nil, nil)
	if err != nil {
		return nil, err
	}

	return doJSON[ApplicationInfo](c, req)
}

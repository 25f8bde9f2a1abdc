package unifi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/google/go-querystring/query"
	"github.com/google/uuid"
)

// parseID checks that the given identifier is a well-formed UUID, failing
// with a *ValidationError before any request is sent.
func parseID(field, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, &ValidationError{Field: field, Reason: "must be a valid UUID"}
	}

	return parsed, nil
}

// listQuery encodes pagination parameters into query values.
// A nil params leaves the query string empty so the server applies defaults.
func listQuery(params *ListParams) (url.Values, error) {
	if params == nil {
		return nil, nil
	}

	v, err := query.Values(params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode query parameters")
	}

	return v, nil
}

// newRequest builds an HTTP request against the configured base URL.
// Query parameters are URL-encoded; a nil body produces a bodyless request.
func (c *Client) newRequest(
	ctx context.Context,
	method, path string,
	params url.Values,
	body any,
) (*http.Request, error) {
	u := c.baseURL.JoinPath(path)
	u.RawQuery = params.Encode()

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal request body")
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

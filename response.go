package unifi

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Page is the paginated response envelope returned by all list endpoints.
type Page[T any] struct {
	Offset     int `json:"offset"`
	Limit      int `json:"limit"`
	Count      int `json:"count"`
	TotalCount int `json:"totalCount"`
	Data       []T `json:"data"`
}

// hasMore reports whether the server indicates more data beyond this page.
// The envelope carries no explicit flag, so totalCount is authoritative,
// with page-size comparison as the fallback when totalCount is absent.
// An empty page always means exhaustion.
func (p *Page[T]) hasMore() bool {
	if len(p.Data) == 0 {
		return false
	}
	if p.TotalCount > 0 {
		return p.Offset+p.Count < p.TotalCount
	}
	return p.Limit > 0 && p.Count >= p.Limit
}

// errorEnvelope is the server's error payload. Controllers emit either
// {"statusCode": ..., "message": ...} or {"code": ..., "message": ...}.
type errorEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// do executes the request and classifies failures that never produced an
// HTTP response as *TransportError.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	return resp, nil
}

// doJSON executes the request and decodes the response body into T.
// Non-success statuses become *APIError; a success status with a body that
// fails to decode becomes *DecodeError.
func doJSON[T any](c *Client, req *http.Request) (*T, error) {
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: errors.Wrap(err, "failed to read response body")}
	}

	if err := checkStatus(resp.StatusCode, body); err != nil {
		return nil, err
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &DecodeError{
			Err: errors.Wrapf(err, "unexpected response body for %s %s", req.Method, req.URL.Path),
		}
	}

	return &out, nil
}

// doNoContent executes the request and discards any response body.
// Used for action endpoints that return no data.
func (c *Client) doNoContent(req *http.Request) error {
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: errors.Wrap(err, "failed to read response body")}
	}

	return checkStatus(resp.StatusCode, body)
}

// checkStatus maps a non-success status to an *APIError, parsing the server
// error envelope when the body carries one. A body that is not an envelope
// still yields an *APIError with the raw status, never a decode failure:
// "server rejected the request" and "response was unreadable" stay distinct.
func checkStatus(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	apiErr := &APIError{StatusCode: status}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		if env.StatusCode != 0 {
			apiErr.StatusCode = env.StatusCode
		}
		apiErr.Code = env.Code
		apiErr.Message = env.Message
	}

	return apiErr
}

// Package remote implements the repository interfaces as a client of the
// Foodcourt HTTP API. It owns the wire conventions: snake_case query keys
// omitted when empty, comma-joined array filters, percent-encoded path ids,
// and the mapping of HTTP failures into the shared error taxonomy.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"foodcourt/internal/models"
	"foodcourt/internal/observability"
	"foodcourt/internal/pagination"
)

// TokenSource supplies the bearer token attached to authenticated requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client is the shared HTTP plumbing behind the remote repositories.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
	log     *observability.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.httpc = h }
}

// WithTokenSource attaches a bearer token source.
func WithTokenSource(ts TokenSource) ClientOption {
	return func(c *Client) { c.tokens = ts }
}

// NewClient creates a Client for the API at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
		log:     observability.GlobalLogger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// pageQuery seeds the query string with the always-present page and limit.
func pageQuery(p pagination.Params) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
	return q
}

// setParam adds a filter key, omitting empty values.
func setParam(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

// setList adds an array-valued filter, comma-joined, omitted when empty.
func setList(q url.Values, key string, values []string) {
	kept := values[:0:0]
	for _, v := range values {
		if v != "" {
			kept = append(kept, v)
		}
	}
	if len(kept) > 0 {
		q.Set(key, strings.Join(kept, ","))
	}
}

// pathID percent-encodes a resource id for path substitution.
func pathID(id string) string {
	return url.PathEscape(id)
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, q, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, body, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return models.NewInternalError(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return models.NewInternalError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return err
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Error("request failed", "method", method, "path", path, "error", err)
		observability.RemoteRequestErrors.WithLabelValues(method).Inc()
		return models.NewRemoteError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return models.NewRemoteError(err)
	}
	return nil
}

// errorFromResponse maps a non-2xx response into the error taxonomy, keeping
// authorization failures distinct from missing records.
func (c *Client) errorFromResponse(resp *http.Response) error {
	var body models.ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)
	msg := body.Error
	if msg == "" {
		msg = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return models.NewValidationError(msg)
	case http.StatusUnauthorized, http.StatusForbidden:
		return models.NewUnauthorizedError(msg)
	case http.StatusNotFound:
		return &models.AppError{Code: models.CodeNotFound, Message: msg}
	default:
		return models.NewRemoteError(fmt.Errorf("%s: %s", resp.Status, msg))
	}
}

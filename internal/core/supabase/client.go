package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrNotFound is returned when a scalar lookup or a filtered mutation
// matched zero rows.
var ErrNotFound = errors.New("no rows found")

// RequestError is any non-2xx answer from the Supabase REST interface.
// The backend's error payload is carried as free text, not inspected.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("supabase returned status %d: %s", e.StatusCode, e.Body)
}

// Filter is a set of column equality conditions, rendered as
// PostgREST query-string filters (col=eq.value).
type Filter map[string]string

// Client talks to the Supabase row-level REST endpoint. It is constructed
// explicitly and passed to handlers; there is no process-wide instance.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient(baseURL, apiKey string) (*Client, error) {
	if baseURL == "" || apiKey == "" {
		return nil, errors.New("SUPABASE_URL and SUPABASE_KEY are required")
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

func (c *Client) do(ctx context.Context, method, table string, filter Filter, order string, payload any) ([]byte, error) {
	q := url.Values{}
	for col, val := range filter {
		q.Set(col, "eq."+val)
	}
	if order != "" {
		q.Set("order", order)
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	if enc := q.Encode(); enc != "" {
		endpoint += "?" + enc
	}

	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode payload: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	// Ask the backend to echo affected rows back in the response body.
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supabase request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	return raw, nil
}

func decodeRows[T any](raw []byte) ([]T, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var rows []T
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return rows, nil
}

// Insert creates one row and returns it as echoed by the backend.
func Insert[T any](ctx context.Context, c *Client, table string, payload any) (T, error) {
	var zero T

	raw, err := c.do(ctx, http.MethodPost, table, nil, "", payload)
	if err != nil {
		return zero, err
	}

	rows, err := decodeRows[T](raw)
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, fmt.Errorf("insert into %s returned no rows", table)
	}
	return rows[0], nil
}

// Select returns every row matching the filter, in backend order.
func Select[T any](ctx context.Context, c *Client, table string, filter Filter, order string) ([]T, error) {
	raw, err := c.do(ctx, http.MethodGet, table, filter, order, nil)
	if err != nil {
		return nil, err
	}
	return decodeRows[T](raw)
}

// SelectOne returns the first row matching the filter, or ErrNotFound.
func SelectOne[T any](ctx context.Context, c *Client, table string, filter Filter) (T, error) {
	var zero T

	rows, err := Select[T](ctx, c, table, filter, "")
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, ErrNotFound
	}
	return rows[0], nil
}

// Update applies a partial field set to every row matching the filter and
// returns the first updated row, or ErrNotFound when nothing matched.
func Update[T any](ctx context.Context, c *Client, table string, filter Filter, patch any) (T, error) {
	var zero T

	raw, err := c.do(ctx, http.MethodPut, table, filter, "", patch)
	if err != nil {
		return zero, err
	}

	rows, err := decodeRows[T](raw)
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, ErrNotFound
	}
	return rows[0], nil
}

// Delete removes every row matching the filter. A backend answer with zero
// echoed rows means the target never existed (ErrNotFound); transport and
// upstream failures surface as-is so they are not mistaken for a 404.
func Delete(ctx context.Context, c *Client, table string, filter Filter) error {
	raw, err := c.do(ctx, http.MethodDelete, table, filter, "", nil)
	if err != nil {
		return err
	}

	rows, err := decodeRows[json.RawMessage](raw)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	return nil
}

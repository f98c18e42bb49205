package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Request is an arbitrary payload forwarded to the configured third-party
// API. Endpoint, method and headers are carried along as data; the outbound
// call itself is fixed.
type Request struct {
	Data     map[string]any    `json:"data"`
	Endpoint *string           `json:"endpoint,omitempty"`
	Method   string            `json:"method"`
	Headers  map[string]string `json:"headers,omitempty"`
}

type Response struct {
	Success    bool           `json:"success"`
	Data       map[string]any `json:"data,omitempty"`
	Message    string         `json:"message"`
	Error      string         `json:"error,omitempty"`
	StatusCode int            `json:"status_code,omitempty"`
}

// StatusError is a non-200 answer from the external API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("external API returned status %d: %s", e.StatusCode, e.Body)
}

// Client calls the configured external API with a bearer token.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ForwardData posts the payload to the external API's data endpoint and
// returns the decoded response body.
func (c *Client) ForwardData(ctx context.Context, payload Request) (map[string]any, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/data", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("external API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return data, nil
}

// Health reports whether the external API answers its health endpoint,
// with a shorter timeout than data calls.
type Health struct {
	Status       string
	ResponseTime time.Duration
	StatusCode   int
}

func (c *Client) CheckHealth(ctx context.Context) (*Health, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	endpoint := fmt.Sprintf("%s/health", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("external API health check failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	status := "unhealthy"
	if resp.StatusCode == http.StatusOK {
		status = "healthy"
	}

	return &Health{
		Status:       status,
		ResponseTime: time.Since(start),
		StatusCode:   resp.StatusCode,
	}, nil
}

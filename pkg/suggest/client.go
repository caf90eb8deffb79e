// Package suggest proxies content-suggestion prompts to the generative
// backend. The call is opaque: one POST, no retries, and any non-2xx
// response collapses into ErrUnavailable so the composer can show a
// single generic failure.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// ErrUnavailable is the only error callers should branch on; details go
// to the log, not the user.
var ErrUnavailable = errors.New("content suggestions unavailable")

type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

type Request struct {
	Platform string `json:"platform"`
	KPI      string `json:"kpi"`
	Topic    string `json:"topic"`
}

// Response mirrors the generator's output: trending topics, caption
// suggestions and a free-form strategy object.
type Response struct {
	Trends   []string        `json:"trends"`
	Captions []string        `json:"captions"`
	Strategy json.RawMessage `json:"strategy"`
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: 20 * time.Second},
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// Suggest asks the generator for trends, captions and a strategy for
// the given (platform, kpi, topic) triple.
func (c *Client) Suggest(ctx context.Context, req Request) (*Response, error) {
	if c.BaseURL == "" {
		return nil, ErrUnavailable
	}
	b, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	res, err := c.httpClient().Do(httpReq)
	if err != nil {
		return nil, ErrUnavailable
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, ErrUnavailable
	}

	var out Response
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, ErrUnavailable
	}
	return &out, nil
}

// Package httpclient is the shared JSON-over-HTTP call helper for outbound
// collaborators. Every collaborator client wraps one of these.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"journalforing/pkg/platform/sentinel"
)

// TokenProvider supplies bearer tokens for outbound calls.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Client calls one collaborator's REST API with bearer auth and JSON
// bodies. 404 maps to sentinel.ErrNotFound so domain code never inspects
// status codes.
type Client struct {
	name       string
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
}

func New(name, baseURL string, httpClient *http.Client, tokens TokenProvider) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{name: name, baseURL: baseURL, httpClient: httpClient, tokens: tokens}
}

// GetJSON performs a GET and decodes the response into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// PostJSON performs a POST with a JSON body and decodes the response into
// out. out may be nil.
func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", c.name, err)
	}
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", c.name, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		bearer, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("%s: token: %w", c.name, err)
		}
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: call %s %s: %w", c.name, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %s %s: %w", c.name, method, path, sentinel.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s: %s %s: status %d: %s", c.name, method, path, resp.StatusCode, raw)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s: decode response: %w", c.name, err)
		}
	}
	return nil
}

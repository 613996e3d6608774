package sak

import (
	"context"
	"fmt"
	"net/url"

	"journalforing/internal/platform/httpclient"
)

// HTTPRegistryClient lists pension cases from the national pension registry.
type HTTPRegistryClient struct {
	client *httpclient.Client
}

func NewHTTPRegistryClient(client *httpclient.Client) *HTTPRegistryClient {
	return &HTTPRegistryClient{client: client}
}

func (c *HTTPRegistryClient) HentSaker(ctx context.Context, aktoerID string) ([]Sak, error) {
	var saker []Sak
	if err := c.client.GetJSON(ctx, "/saker?aktoerId="+url.QueryEscape(aktoerID), &saker); err != nil {
		return nil, fmt.Errorf("hent saker: %w", err)
	}
	return saker, nil
}

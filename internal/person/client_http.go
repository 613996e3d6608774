package person

import (
	"context"
	"fmt"
	"net/url"

	"journalforing/internal/platform/httpclient"
)

// HTTPRegistryClient resolves persons against the national person registry.
type HTTPRegistryClient struct {
	client *httpclient.Client
}

func NewHTTPRegistryClient(client *httpclient.Client) *HTTPRegistryClient {
	return &HTTPRegistryClient{client: client}
}

func (c *HTTPRegistryClient) HentPerson(ctx context.Context, ident string) (*Person, error) {
	var p Person
	if err := c.client.GetJSON(ctx, "/personer/"+url.PathEscape(ident), &p); err != nil {
		return nil, fmt.Errorf("hent person: %w", err)
	}
	return &p, nil
}

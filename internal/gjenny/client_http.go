package gjenny

import (
	"context"
	"fmt"
	"net/url"

	"journalforing/internal/platform/httpclient"
)

// HTTPClient queries the Gjenny REST API.
type HTTPClient struct {
	client *httpclient.Client
}

func NewHTTPClient(client *httpclient.Client) *HTTPClient {
	return &HTTPClient{client: client}
}

func (c *HTTPClient) HentSak(ctx context.Context, sakID string) (*Sak, error) {
	var s Sak
	if err := c.client.GetJSON(ctx, "/api/sak/"+url.PathEscape(sakID), &s); err != nil {
		return nil, fmt.Errorf("hent gjenny-sak: %w", err)
	}
	return &s, nil
}

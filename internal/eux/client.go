// Package eux fetches SED document content from the EESSI exchange point.
package eux

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"journalforing/internal/platform/httpclient"
	sedmodels "journalforing/internal/sed/models"
)

// Client fetches and decodes document content by case and document id.
type Client struct {
	client *httpclient.Client
}

func NewClient(client *httpclient.Client) *Client {
	return &Client{client: client}
}

// HentSed fetches the document and decodes it into the concrete content
// type for the given SED type.
func (c *Client) HentSed(ctx context.Context, rinaSakID, dokumentID string, sedType sedmodels.SedType) (sedmodels.Document, error) {
	path := fmt.Sprintf("/buc/%s/sed/%s", url.PathEscape(rinaSakID), url.PathEscape(dokumentID))
	var raw json.RawMessage
	if err := c.client.GetJSON(ctx, path, &raw); err != nil {
		return nil, fmt.Errorf("hent sed %s/%s: %w", rinaSakID, dokumentID, err)
	}
	doc, err := sedmodels.ParseSed(sedType, raw)
	if err != nil {
		return nil, fmt.Errorf("parse sed %s/%s: %w", rinaSakID, dokumentID, err)
	}
	return doc, nil
}

// Package gjenny integrates the external bereavement-case system. A Gjenny
// record on a case overrides ordinary pension routing: the case belongs to
// the sibling agency's child-survivor or resettlement domain.
package gjenny

import (
	"context"
	"encoding/json"
	"fmt"
)

// SakType is the marker in a Gjenny record that decides which derived tema
// applies.
type SakType string

const (
	SakBarnepensjon SakType = "BARNEPENSJON"
	SakOmstilling   SakType = "OMSTILLINGSSTOENAD"
)

// Sak is a bereavement case held by Gjenny.
type Sak struct {
	SakID   string  `json:"sakId"`
	SakType SakType `json:"sakType"`
}

// Client queries Gjenny by national case id.
type Client interface {
	// HentSak looks up a bereavement case. Returns sentinel.ErrNotFound when
	// Gjenny holds no record for the id.
	HentSak(ctx context.Context, sakID string) (*Sak, error)
}

// BlobStore is the subset of blob operations the cache needs.
type BlobStore interface {
	Exists(ctx context.Context, key string) (bool, error)
	Get(ctx context.Context, key string) ([]byte, error)
}

// Cache reads Gjenny payloads that an upstream job mirrors into blob storage,
// keyed by RINA case id. It answers “does a bereavement case exist for this
// case” without a live Gjenny call.
type Cache struct {
	store BlobStore
}

func NewCache(store BlobStore) *Cache {
	return &Cache{store: store}
}

func (c *Cache) key(rinaSakID string) string {
	return "gjenny/" + rinaSakID + ".json"
}

// Exists reports whether a mirrored Gjenny payload is present for the case.
func (c *Cache) Exists(ctx context.Context, rinaSakID string) (bool, error) {
	ok, err := c.store.Exists(ctx, c.key(rinaSakID))
	if err != nil {
		return false, fmt.Errorf("gjenny cache exists %s: %w", rinaSakID, err)
	}
	return ok, nil
}

// Hent fetches and decodes the mirrored Gjenny payload for the case.
func (c *Cache) Hent(ctx context.Context, rinaSakID string) (*Sak, error) {
	raw, err := c.store.Get(ctx, c.key(rinaSakID))
	if err != nil {
		return nil, fmt.Errorf("gjenny cache get %s: %w", rinaSakID, err)
	}
	var s Sak
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("gjenny cache decode %s: %w", rinaSakID, err)
	}
	return &s, nil
}

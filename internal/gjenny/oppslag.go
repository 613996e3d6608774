package gjenny

import "context"

// Oppslag combines the live client and the mirrored cache behind one
// surface, so callers hold a single dependency for both lookup styles.
type Oppslag struct {
	client Client
	cache  *Cache
}

func NewOppslag(client Client, cache *Cache) *Oppslag {
	return &Oppslag{client: client, cache: cache}
}

// HentSak queries Gjenny live by national case id.
func (o *Oppslag) HentSak(ctx context.Context, sakID string) (*Sak, error) {
	return o.client.HentSak(ctx, sakID)
}

// Finnes reports whether a mirrored payload exists for the RINA case.
func (o *Oppslag) Finnes(ctx context.Context, rinaSakID string) (bool, error) {
	return o.cache.Exists(ctx, rinaSakID)
}

// HentFraCache fetches the mirrored payload for the RINA case.
func (o *Oppslag) HentFraCache(ctx context.Context, rinaSakID string) (*Sak, error) {
	return o.cache.Hent(ctx, rinaSakID)
}

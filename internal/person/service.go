package person

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"journalforing/pkg/platform/sentinel"
)

// RegistryClient queries the national person registry.
type RegistryClient interface {
	// HentPerson resolves a person by national identity number. Returns
	// sentinel.ErrNotFound when the registry has no entry.
	HentPerson(ctx context.Context, ident string) (*Person, error)
}

// Cache is a lookup cache in front of the registry. Implementations must
// treat a miss as sentinel.ErrNotFound.
type Cache interface {
	Find(ctx context.Context, ident string) (*Person, error)
	Save(ctx context.Context, ident string, p *Person) error
}

// Service coordinates person lookups with cache-aside semantics. An
// unresolved person is an expected steady-state outcome, not an error, so
// callers should branch on sentinel.ErrNotFound.
type Service struct {
	client RegistryClient
	cache  Cache
	logger *slog.Logger
}

func NewService(client RegistryClient, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// Hent resolves a person by ident, consulting the cache first.
func (s *Service) Hent(ctx context.Context, ident string) (*Person, error) {
	if ident == "" {
		return nil, sentinel.ErrNotFound
	}
	if s.cache != nil {
		if cached, err := s.cache.Find(ctx, ident); err == nil {
			return cached, nil
		} else if !errors.Is(err, sentinel.ErrNotFound) {
			s.logger.WarnContext(ctx, "person cache read failed, falling through to registry", "error", err)
		}
	}
	p, err := s.client.HentPerson(ctx, ident)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("hent person: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Save(ctx, ident, p); err != nil {
			s.logger.WarnContext(ctx, "person cache write failed", "error", err)
		}
	}
	return p, nil
}

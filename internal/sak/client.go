package sak

import "context"

// RegistryClient queries the national pension case registry by internal
// person key.
type RegistryClient interface {
	// HentSaker lists the person's pension cases. An empty slice means the
	// person has no cases; that is not an error.
	HentSaker(ctx context.Context, aktoerID string) ([]Sak, error)
}

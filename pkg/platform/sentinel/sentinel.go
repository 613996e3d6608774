package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Clients, caches and stores return
// these (optionally wrapped) so services can branch without string matching.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist in a registry, cache or store
// - ErrExpired: cached token or record has expired
// - ErrInvalidState: entity in wrong state for the requested operation
// - ErrUnavailable: collaborator temporarily unavailable
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrExpired      = errors.New("expired")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)

package pending

import (
	"context"
	"encoding/json"
	"fmt"

	"journalforing/internal/platform/blob"
)

// BlobStore persists pending records as JSON blobs. The blob store's
// per-key read-after-write consistency provides the ordering the
// reconciliation path depends on.
type BlobStore struct {
	store blob.Store
}

func NewBlobStore(store blob.Store) *BlobStore {
	return &BlobStore{store: store}
}

func (s *BlobStore) Save(ctx context.Context, key string, r Record) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode pending record %s: %w", key, err)
	}
	if err := s.store.Put(ctx, key, payload); err != nil {
		return fmt.Errorf("save pending record %s: %w", key, err)
	}
	return nil
}

func (s *BlobStore) Get(ctx context.Context, key string) (Record, error) {
	payload, err := s.store.Get(ctx, key)
	if err != nil {
		return Record{}, fmt.Errorf("get pending record %s: %w", key, err)
	}
	var r Record
	if err := json.Unmarshal(payload, &r); err != nil {
		return Record{}, fmt.Errorf("decode pending record %s: %w", key, err)
	}
	return r, nil
}

func (s *BlobStore) ListKeys(ctx context.Context, rinaSakID string) ([]string, error) {
	keys, err := s.store.List(ctx, Prefix(rinaSakID))
	if err != nil {
		return nil, fmt.Errorf("list pending records for %s: %w", rinaSakID, err)
	}
	return keys, nil
}

func (s *BlobStore) Delete(ctx context.Context, key string) error {
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete pending record %s: %w", key, err)
	}
	return nil
}

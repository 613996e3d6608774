package statistikk

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// InMemoryStore is the outbox fake used in tests.
type InMemoryStore struct {
	mu   sync.Mutex
	rows []Rad
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(_ context.Context, m Melding) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal statistikk payload: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, Rad{ID: uuid.NewString(), Payload: payload})
	return nil
}

func (s *InMemoryStore) NextBatch(_ context.Context, limit int) ([]Rad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit > len(s.rows) {
		limit = len(s.rows)
	}
	batch := make([]Rad, limit)
	copy(batch, s.rows[:limit])
	return batch, nil
}

func (s *InMemoryStore) MarkPublished(_ context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	published := make(map[string]bool, len(ids))
	for _, id := range ids {
		published[id] = true
	}
	kept := s.rows[:0]
	for _, r := range s.rows {
		if !published[r.ID] {
			kept = append(kept, r)
		}
	}
	s.rows = kept
	return nil
}

// Len reports the number of unpublished rows.
func (s *InMemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

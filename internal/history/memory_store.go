package history

import (
	"context"
	"sync"

	"github.com/dealerdesk/finance-engine/internal/domain"
)

// MemoryStore is a map-backed Store used in tests and by the CLI when no
// Redis backend is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	lists map[string][]domain.LookupResult
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{lists: make(map[string][]domain.LookupResult)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]domain.LookupResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.lists[key]
	out := make([]domain.LookupResult, len(list))
	copy(out, list)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, results []domain.LookupResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]domain.LookupResult, len(results))
	copy(list, results)
	s.lists[key] = list
	return nil
}

// Package history keeps per-key lists of vehicle market-value lookups so
// repeated searches for the same plate or VIN can be served from cache. The
// storage backend is injected, which keeps the list policy (dedupe by key,
// newest first, capped length) testable without a live backend.
package history

import (
	"context"

	"github.com/dealerdesk/finance-engine/internal/domain"
)

// Store persists lookup-history lists keyed by an owner (e.g. a user or a
// dealership account).
type Store interface {
	Get(ctx context.Context, key string) ([]domain.LookupResult, error)
	Set(ctx context.Context, key string, results []domain.LookupResult) error
}

// Service applies the history list policy on top of a Store.
type Service struct {
	store Store
	limit int
}

// NewService creates a Service capping each list at limit entries.
func NewService(store Store, limit int) *Service {
	if limit < 1 {
		limit = 1
	}
	return &Service{store: store, limit: limit}
}

// Record prepends a lookup to the owner's history. An existing entry with the
// same lookup key is removed first, so a repeated search moves to the front
// instead of duplicating. The list is truncated to the configured cap.
func (s *Service) Record(ctx context.Context, owner string, result domain.LookupResult) error {
	existing, err := s.store.Get(ctx, owner)
	if err != nil {
		return err
	}

	updated := make([]domain.LookupResult, 0, len(existing)+1)
	updated = append(updated, result)
	for _, r := range existing {
		if r.Key == result.Key {
			continue
		}
		updated = append(updated, r)
	}

	if len(updated) > s.limit {
		updated = updated[:s.limit]
	}

	return s.store.Set(ctx, owner, updated)
}

// List returns the owner's history, most recent first.
func (s *Service) List(ctx context.Context, owner string) ([]domain.LookupResult, error) {
	return s.store.Get(ctx, owner)
}

// Find returns the cached lookup for one key, or nil when absent.
func (s *Service) Find(ctx context.Context, owner, key string) (*domain.LookupResult, error) {
	results, err := s.store.Get(ctx, owner)
	if err != nil {
		return nil, err
	}

	for i := range results {
		if results[i].Key == key {
			return &results[i], nil
		}
	}
	return nil, nil
}

// Trim re-applies the length cap to the owner's list. Used by the scheduler
// after the cap is lowered in configuration.
func (s *Service) Trim(ctx context.Context, owner string) error {
	results, err := s.store.Get(ctx, owner)
	if err != nil {
		return err
	}

	if len(results) <= s.limit {
		return nil
	}
	return s.store.Set(ctx, owner, results[:s.limit])
}

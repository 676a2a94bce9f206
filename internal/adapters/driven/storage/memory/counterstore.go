package memory

import (
	"context"
	"sync"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

// Ensure CounterStore implements the interface.
var _ driven.CounterStore = (*CounterStore)(nil)

// CounterStore is an in-memory driven.CounterStore.
type CounterStore struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewCounterStore creates a new in-memory counter store.
func NewCounterStore() *CounterStore {
	return &CounterStore{counts: make(map[string]int)}
}

// Increment adds one to key.
func (s *CounterStore) Increment(_ context.Context, key string) (int, error) {
	if key == "" {
		return 0, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[key]++
	return s.counts[key], nil
}

// Count returns the value of key.
func (s *CounterStore) Count(_ context.Context, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[key], nil
}

// Reset zeroes key.
func (s *CounterStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.counts, key)
	return nil
}

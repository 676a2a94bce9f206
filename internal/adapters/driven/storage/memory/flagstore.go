package memory

import (
	"context"
	"sync"

	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

// Ensure FlagStore implements the interface.
var _ driven.FlagStore = (*FlagStore)(nil)

// FlagStore is an in-memory driven.FlagStore.
type FlagStore struct {
	mu    sync.RWMutex
	flags map[string]bool
}

// NewFlagStore creates a new in-memory flag store.
func NewFlagStore() *FlagStore {
	return &FlagStore{flags: make(map[string]bool)}
}

// GetFlag returns the flag value and whether it was set.
func (s *FlagStore) GetFlag(_ context.Context, key string) (value, found bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, found = s.flags[key]
	return value, found, nil
}

// SetFlag stores a flag.
func (s *FlagStore) SetFlag(_ context.Context, key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[key] = value
	return nil
}

package memory

import (
	"context"
	"sync"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

// Ensure EventStore implements the interface.
var _ driven.EventStore = (*EventStore)(nil)

// EventStore is an in-memory driven.EventStore.
type EventStore struct {
	mu     sync.RWMutex
	events []domain.AnalyticsEvent
}

// NewEventStore creates a new in-memory event store.
func NewEventStore() *EventStore {
	return &EventStore{}
}

// Append stores an event.
func (s *EventStore) Append(_ context.Context, event domain.AnalyticsEvent) error {
	if event.Name == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// List returns up to limit events, newest first. A limit <= 0 returns all.
func (s *EventStore) List(_ context.Context, limit int) ([]domain.AnalyticsEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.events)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]domain.AnalyticsEvent, 0, limit)
	for i := n - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.events[i])
	}
	return out, nil
}

// CountByName counts stored events with the given name.
func (s *EventStore) CountByName(_ context.Context, name string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, e := range s.events {
		if e.Name == name {
			count++
		}
	}
	return count, nil
}

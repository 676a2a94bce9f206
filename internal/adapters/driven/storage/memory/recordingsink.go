package memory

import (
	"sync"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

// Ensure RecordingSink implements the interface.
var _ driven.AnalyticsSink = (*RecordingSink)(nil)

// RecordingSink keeps tracked events in memory for inspection.
type RecordingSink struct {
	mu      sync.Mutex
	events  []domain.AnalyticsEvent
	flushes int
}

// NewRecordingSink creates an empty recording sink.
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

// TrackEvent records the event.
func (s *RecordingSink) TrackEvent(name string, properties map[string]any) {
	props := make(map[string]any, len(properties))
	for k, v := range properties {
		props[k] = v
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, domain.AnalyticsEvent{Name: name, Properties: props})
}

// Flush counts flush calls.
func (s *RecordingSink) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushes++
}

// Events returns a copy of recorded events.
func (s *RecordingSink) Events() []domain.AnalyticsEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AnalyticsEvent, len(s.events))
	copy(out, s.events)
	return out
}

// Named returns recorded events with the given name.
func (s *RecordingSink) Named(name string) []domain.AnalyticsEvent {
	var out []domain.AnalyticsEvent
	for _, e := range s.Events() {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// Flushes returns how many times Flush was called.
func (s *RecordingSink) Flushes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushes
}

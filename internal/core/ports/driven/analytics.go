package driven

import (
	"context"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
)

// AnalyticsSink receives tracked events.
// TrackEvent is fire-and-forget: it must never block or fail the caller.
type AnalyticsSink interface {
	TrackEvent(name string, properties map[string]any)

	// Flush pushes buffered events to their destination.
	Flush()
}

// EventHistory holds the events tracked by the running process.
type EventHistory interface {
	// Last returns up to n of the most recent events, oldest first.
	Last(n int) []domain.AnalyticsEvent
}

// EventStore persists analytics events.
type EventStore interface {
	// Append stores an event.
	Append(ctx context.Context, event domain.AnalyticsEvent) error

	// List returns the most recent events, newest first.
	List(ctx context.Context, limit int) ([]domain.AnalyticsEvent, error)

	// CountByName returns how many events with the given name were stored.
	CountByName(ctx context.Context, name string) (int, error)
}

package analytics

import (
	"sync"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

var _ driven.EventHistory = (*Ring)(nil)

// DefaultRingSize is the default ring capacity.
const DefaultRingSize = 256

// Ring is a fixed-size circular buffer of events.
// Goroutine-safe.
type Ring struct {
	mu    sync.Mutex
	buf   []domain.AnalyticsEvent
	head  int
	count int
}

// NewRing creates a ring with the given capacity.
func NewRing(size int) *Ring {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &Ring{buf: make([]domain.AnalyticsEvent, size)}
}

// Push adds an event, overwriting the oldest if full.
func (r *Ring) Push(e domain.AnalyticsEvent) {
	e.Properties = copyProps(e.Properties)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf[r.head] = e
	r.head = (r.head + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Last returns up to n of the most recent events, oldest first.
func (r *Ring) Last(n int) []domain.AnalyticsEvent {
	if n <= 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if n > r.count {
		n = r.count
	}
	if n == 0 {
		return nil
	}

	size := len(r.buf)
	out := make([]domain.AnalyticsEvent, n)
	start := (r.head - n + size) % size
	for i := 0; i < n; i++ {
		out[i] = r.buf[(start+i)%size]
	}
	return out
}

// Len returns the number of buffered events.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Cap returns the ring capacity.
func (r *Ring) Cap() int {
	return len(r.buf)
}

func copyProps(props map[string]any) map[string]any {
	if props == nil {
		return nil
	}
	cp := make(map[string]any, len(props))
	for k, v := range props {
		cp[k] = v
	}
	return cp
}

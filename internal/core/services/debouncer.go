package services

import (
	"sync"
	"time"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
)

// Debouncer coalesces bursts of conversion requests.
//
// Only the latest pushed request is kept. It is emitted once the
// interval passes without another push, unless its key equals the key
// of the previously emitted request.
type Debouncer struct {
	interval time.Duration
	clock    Clock
	emit     func(domain.ConversionRequest)

	mu      sync.Mutex
	timer   Timer
	gen     uint64
	pending *domain.ConversionRequest
	lastKey string
	emitted bool
	stopped bool
}

// NewDebouncer creates a debouncer that calls emit from a timer goroutine.
func NewDebouncer(interval time.Duration, clock Clock, emit func(domain.ConversionRequest)) *Debouncer {
	if interval <= 0 {
		interval = domain.DefaultDebounceInterval
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Debouncer{
		interval: interval,
		clock:    clock,
		emit:     emit,
	}
}

// Push buffers req and restarts the quiet period.
func (d *Debouncer) Push(req domain.ConversionRequest) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending = &req
	d.timer = d.clock.AfterFunc(d.interval, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.gen || d.pending == nil {
		d.mu.Unlock()
		return
	}
	req := *d.pending
	d.pending = nil
	d.timer = nil

	key := req.Key()
	if d.emitted && key == d.lastKey {
		d.mu.Unlock()
		return
	}
	d.lastKey = key
	d.emitted = true
	d.mu.Unlock()

	d.emit(req)
}

// Pending reports whether a request is waiting for the quiet period.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Stop discards the buffered request. No emission happens afterwards.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

// --- Clock ---

type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	timers  []*fakeTimer
	created int
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

type fakeTimer struct {
	clock *fakeClock
	at    time.Time
	f     func()
	done  bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	active := !t.done
	t.done = true
	return active
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	c.created++
	return t
}

// Advance moves time forward and runs due timers on the caller's goroutine.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.done && !t.at.After(c.now) {
			t.done = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

func (c *fakeClock) Created() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.created
}

var _ Clock = (*fakeClock)(nil)

// --- Detector ---

type fakeDetector struct {
	mu     sync.Mutex
	detect func(text string) domain.DetectedEncoding
	calls  []string
	opts   []driven.DetectOptions
}

func newFakeDetector(fn func(string) domain.DetectedEncoding) *fakeDetector {
	return &fakeDetector{detect: fn}
}

func constDetector(enc domain.DetectedEncoding) *fakeDetector {
	return newFakeDetector(func(string) domain.DetectedEncoding { return enc })
}

func (d *fakeDetector) Detect(text string, opts driven.DetectOptions) driven.DetectResult {
	d.mu.Lock()
	d.calls = append(d.calls, text)
	d.opts = append(d.opts, opts)
	d.mu.Unlock()
	return driven.DetectResult{Encoding: d.detect(text), Probability: 1}
}

func (d *fakeDetector) Calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.calls)
}

var _ driven.Detector = (*fakeDetector)(nil)

// --- Transliterator ---

type mockTranslit struct {
	mock.Mock
	n atomic.Int32
}

func (m *mockTranslit) Translit(ctx context.Context, text string, rule domain.RuleName) (*domain.ConversionResult, error) {
	m.n.Add(1)
	args := m.Called(ctx, text, rule)
	res, _ := args.Get(0).(*domain.ConversionResult)
	return res, args.Error(1)
}

// count returns how many calls have started, including blocked ones.
func (m *mockTranslit) count() int {
	return int(m.n.Load())
}

var _ driven.Transliterator = (*mockTranslit)(nil)

func replaced(out string) *domain.ConversionResult {
	return &domain.ConversionResult{OutputText: out, WasReplaced: true, Duration: 3 * time.Millisecond}
}

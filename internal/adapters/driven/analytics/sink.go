package analytics

// The drain goroutine is the sole reader of s.ch and the sole caller of
// the destination. Sink.mu guards only the ring pointer.

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
	"github.com/myanmartools/zuc-cli/internal/logger"
)

// Ensure Sink implements the interface.
var _ driven.AnalyticsSink = (*Sink)(nil)

const (
	// DefaultBufferSize is the capacity of the async channel.
	DefaultBufferSize = 512

	// DefaultFlushTimeout bounds how long Flush waits for the drain.
	DefaultFlushTimeout = 2 * time.Second
)

// destination receives events from the drain goroutine.
type destination interface {
	write(ev domain.AnalyticsEvent) error
	flush() error
}

// entry is either an event or, when flushed is non-nil, a flush marker.
type entry struct {
	ev      domain.AnalyticsEvent
	flushed chan struct{}
}

// Options configures a Sink.
type Options struct {
	// BufferSize is the channel capacity. Defaults to DefaultBufferSize.
	BufferSize int

	// FlushTimeout bounds Flush. Defaults to DefaultFlushTimeout.
	FlushTimeout time.Duration

	// SessionID groups events. A random UUID is used when empty.
	SessionID string

	// Now returns the event time. Defaults to time.Now.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.BufferSize <= 0 {
		o.BufferSize = DefaultBufferSize
	}
	if o.FlushTimeout <= 0 {
		o.FlushTimeout = DefaultFlushTimeout
	}
	if o.SessionID == "" {
		o.SessionID = uuid.NewString()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Sink is an asynchronous analytics sink.
type Sink struct {
	mu   sync.Mutex
	ring *Ring

	opts      Options
	dest      destination
	ch        chan entry
	dropped   atomic.Uint64
	closed    atomic.Bool
	done      chan struct{}
	closeOnce sync.Once
}

func newSink(dest destination, opts Options) *Sink {
	opts = opts.withDefaults()
	s := &Sink{
		opts: opts,
		dest: dest,
		ch:   make(chan entry, opts.BufferSize),
		done: make(chan struct{}),
	}
	go s.drain()
	return s
}

// NewJSONLSink creates a sink writing one JSON object per line to w.
func NewJSONLSink(w io.Writer, opts Options) *Sink {
	return newSink(&jsonlDest{w: bufio.NewWriter(w)}, opts)
}

// NewStoreSink creates a sink appending events to store.
func NewStoreSink(store driven.EventStore, opts Options) *Sink {
	return newSink(&storeDest{store: store}, opts)
}

func (s *Sink) drain() {
	defer close(s.done)
	for e := range s.ch {
		if e.flushed != nil {
			if err := s.dest.flush(); err != nil {
				logger.Debug("analytics flush: %v", err)
			}
			close(e.flushed)
			continue
		}

		if err := s.dest.write(e.ev); err != nil {
			s.dropped.Add(1)
			logger.Debug("analytics write %s: %v", e.ev.Name, err)
			continue
		}

		s.mu.Lock()
		rb := s.ring
		s.mu.Unlock()
		if rb != nil {
			rb.Push(e.ev)
		}
	}
	if err := s.dest.flush(); err != nil {
		logger.Debug("analytics flush: %v", err)
	}
}

// TrackEvent queues an event. It never blocks; the event is dropped when
// the buffer is full or the sink is closed.
func (s *Sink) TrackEvent(name string, properties map[string]any) {
	defer func() {
		// Close may race between the closed check and the send.
		if recover() != nil {
			s.dropped.Add(1)
		}
	}()

	if s.closed.Load() {
		s.dropped.Add(1)
		return
	}

	ev := domain.AnalyticsEvent{
		ID:         uuid.NewString(),
		SessionID:  s.opts.SessionID,
		Name:       name,
		Properties: copyProps(properties),
		Time:       s.opts.Now(),
	}

	select {
	case s.ch <- entry{ev: ev}:
	default:
		s.dropped.Add(1)
	}
}

// Flush waits until every event queued before the call has reached the
// destination, or until the flush timeout elapses.
func (s *Sink) Flush() {
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.FlushTimeout)
	defer cancel()
	if err := s.FlushContext(ctx); err != nil {
		logger.Debug("analytics flush: %v", err)
	}
}

// FlushContext is Flush bounded by ctx.
func (s *Sink) FlushContext(ctx context.Context) (err error) {
	defer func() {
		if recover() != nil {
			err = domain.ErrPipelineClosed
		}
	}()

	if s.closed.Load() {
		return nil
	}

	marker := make(chan struct{})
	select {
	case s.ch <- entry{flushed: marker}:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-marker:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SetRing attaches a ring that receives every event written to the
// destination.
func (s *Sink) SetRing(r *Ring) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ring = r
}

// SessionID returns the session identifier stamped on every event.
func (s *Sink) SessionID() string {
	return s.opts.SessionID
}

// Dropped returns the number of events dropped since creation.
func (s *Sink) Dropped() uint64 {
	return s.dropped.Load()
}

// Close drains pending events and stops the drain goroutine.
// Safe to call more than once.
func (s *Sink) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.ch)
		<-s.done

		if d := s.dropped.Load(); d > 0 {
			logger.Warn("analytics: %d events dropped during session %s", d, s.opts.SessionID)
		}
	})
	return nil
}

// record is the JSONL shape of an event.
type record struct {
	ID         string         `json:"id"`
	SessionID  string         `json:"session_id"`
	Name       string         `json:"name"`
	Properties map[string]any `json:"properties,omitempty"`
	Time       time.Time      `json:"time"`
}

type jsonlDest struct {
	w *bufio.Writer
}

func (d *jsonlDest) write(ev domain.AnalyticsEvent) error {
	data, err := json.Marshal(record{
		ID:         ev.ID,
		SessionID:  ev.SessionID,
		Name:       ev.Name,
		Properties: ev.Properties,
		Time:       ev.Time,
	})
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = d.w.Write(data)
	return err
}

func (d *jsonlDest) flush() error {
	return d.w.Flush()
}

type storeDest struct {
	store driven.EventStore
}

func (d *storeDest) write(ev domain.AnalyticsEvent) error {
	return d.store.Append(context.Background(), ev)
}

func (d *storeDest) flush() error {
	return nil
}

// DecodeJSONL parses events previously written by a JSONL sink.
func DecodeJSONL(r io.Reader) ([]domain.AnalyticsEvent, error) {
	var out []domain.AnalyticsEvent
	dec := json.NewDecoder(r)
	for dec.More() {
		var rec record
		if err := dec.Decode(&rec); err != nil {
			return out, err
		}
		out = append(out, domain.AnalyticsEvent{
			ID:         rec.ID,
			SessionID:  rec.SessionID,
			Name:       rec.Name,
			Properties: rec.Properties,
			Time:       rec.Time,
		})
	}
	return out, nil
}

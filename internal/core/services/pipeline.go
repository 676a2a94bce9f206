package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driving"
	"github.com/myanmartools/zuc-cli/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.ConverterService = (*Pipeline)(nil)

// PipelineConfig configures a Pipeline.
type PipelineConfig struct {
	// DebounceInterval defaults to domain.DefaultDebounceInterval.
	DebounceInterval time.Duration

	// Clock defaults to the system clock.
	Clock Clock
}

type eventKind int

const (
	eventSubmit eventKind = iota
	eventSetEncoding
)

type pipelineEvent struct {
	kind eventKind
	req  domain.ConversionRequest
	mode domain.EncodingMode
}

type dispatchResult struct {
	seq    uint64
	req    domain.ConversionRequest
	rule   domain.RuleName
	result domain.ConversionResult
	err    error
}

// Pipeline is the live conversion pipeline: debounce, resolve, dispatch.
//
// A single goroutine owns the encoding state. Callers enqueue events and
// observe published snapshots. Dispatches are switch-latest: each one
// gets a new sequence number, superseded calls are cancelled, and only
// the result carrying the current sequence number is applied.
type Pipeline struct {
	resolver   *Resolver
	dispatcher *Dispatcher
	sink       driven.AnalyticsSink
	debouncer  *Debouncer

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	events  chan pipelineEvent
	emitted chan domain.ConversionRequest
	results chan dispatchResult
	updates chan domain.Snapshot

	mu       sync.RWMutex
	snapshot domain.Snapshot

	// Owned by the loop goroutine.
	state      domain.EncodingState
	labels     domain.Labels
	mode       domain.EncodingMode
	provenance domain.Provenance
	sourceText string
	outputText string
	lastRule   domain.RuleName
	lastDur    time.Duration
	seq        uint64
	applied    uint64
	inflight   context.CancelFunc
}

// NewPipeline creates a pipeline and starts its event loop. The loop
// stops when ctx is cancelled or Close is called.
func NewPipeline(
	ctx context.Context,
	detector driven.Detector,
	translit driven.Transliterator,
	sink driven.AnalyticsSink,
	cfg PipelineConfig,
) *Pipeline {
	loopCtx, cancel := context.WithCancel(ctx)
	p := &Pipeline{
		resolver:   NewResolver(detector),
		dispatcher: NewDispatcher(translit, sink),
		sink:       sink,
		ctx:        loopCtx,
		cancel:     cancel,
		done:       make(chan struct{}),
		events:     make(chan pipelineEvent, 64),
		emitted:    make(chan domain.ConversionRequest),
		results:    make(chan dispatchResult, 1),
		updates:    make(chan domain.Snapshot, 1),
		state:      domain.NewEncodingState(),
		labels:     domain.AutoLabels(),
		mode:       domain.EncodingAuto,
		provenance: domain.ProvenanceDirect,
	}
	p.debouncer = NewDebouncer(cfg.DebounceInterval, cfg.Clock, p.emit)
	p.snapshot = p.buildSnapshot()

	go p.run()
	return p
}

// Submit enqueues a request. An empty RequestedEncoding keeps the
// current mode and an empty Provenance keeps the current provenance.
func (p *Pipeline) Submit(req domain.ConversionRequest) error {
	if req.RequestedEncoding != "" && !req.RequestedEncoding.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedEncoding, req.RequestedEncoding)
	}
	return p.enqueue(pipelineEvent{kind: eventSubmit, req: req})
}

// SetText enqueues new source text in the current mode. An empty
// provenance keeps the provenance of the previous edit until it has
// been reported.
func (p *Pipeline) SetText(text string, provenance domain.Provenance) error {
	return p.enqueue(pipelineEvent{
		kind: eventSubmit,
		req:  domain.ConversionRequest{RawText: text, Provenance: provenance},
	})
}

// SetEncoding enqueues an explicit mode switch.
func (p *Pipeline) SetEncoding(mode domain.EncodingMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedEncoding, mode)
	}
	return p.enqueue(pipelineEvent{kind: eventSetEncoding, mode: mode})
}

func (p *Pipeline) enqueue(ev pipelineEvent) error {
	if p.ctx.Err() != nil {
		return domain.ErrPipelineClosed
	}
	select {
	case p.events <- ev:
		return nil
	case <-p.ctx.Done():
		return domain.ErrPipelineClosed
	}
}

// Snapshot returns the latest published state.
func (p *Pipeline) Snapshot() domain.Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot
}

// Updates delivers snapshots, latest wins. Closed after teardown.
func (p *Pipeline) Updates() <-chan domain.Snapshot {
	return p.updates
}

// Close tears the pipeline down and waits for the loop to exit.
func (p *Pipeline) Close() error {
	p.cancel()
	<-p.done
	return nil
}

// Done is closed once the loop has exited.
func (p *Pipeline) Done() <-chan struct{} {
	return p.done
}

func (p *Pipeline) emit(req domain.ConversionRequest) {
	select {
	case p.emitted <- req:
	case <-p.ctx.Done():
	}
}

func (p *Pipeline) run() {
	defer p.shutdown()

	for {
		select {
		case <-p.ctx.Done():
			return
		case ev := <-p.events:
			if p.ctx.Err() != nil {
				return
			}
			p.handleEvent(ev)
		case req := <-p.emitted:
			if p.ctx.Err() != nil {
				return
			}
			p.dispatch(req)
		case res := <-p.results:
			if p.ctx.Err() != nil {
				return
			}
			p.apply(res)
		}
	}
}

func (p *Pipeline) shutdown() {
	if p.debouncer.Pending() {
		logger.Debug("pipeline: discarding a request waiting for the quiet period")
	}
	p.debouncer.Stop()
	if p.inflight != nil {
		p.inflight()
		p.inflight = nil
	}
	close(p.updates)
	close(p.done)
	logger.Debug("pipeline: stopped at seq %d", p.seq)
}

func (p *Pipeline) handleEvent(ev pipelineEvent) {
	switch ev.kind {
	case eventSetEncoding:
		p.mode = ev.mode
		ApplyMode(ev.mode, &p.state, &p.labels)
		p.track(domain.EventChangeFontEnc, map[string]any{
			domain.PropFontEnc: ev.mode.String(),
		})
		p.publish()
		p.debouncer.Push(domain.ConversionRequest{
			RawText:           p.sourceText,
			RequestedEncoding: p.mode,
			Provenance:        p.provenance,
		})

	case eventSubmit:
		req := ev.req
		if req.RequestedEncoding == "" {
			req.RequestedEncoding = p.mode
		}
		if req.Provenance == "" {
			req.Provenance = p.provenance
		}
		p.mode = req.RequestedEncoding
		p.provenance = req.Provenance
		p.sourceText = req.RawText
		p.publish()
		p.debouncer.Push(req)
	}
}

func (p *Pipeline) dispatch(req domain.ConversionRequest) {
	// A mode switch after the request was queued supersedes it; the
	// switch pushed its own request.
	if req.RequestedEncoding != p.mode {
		logger.Debug("pipeline: dropping request for %s (mode is %s)", req.RequestedEncoding, p.mode)
		return
	}
	rule := p.resolver.Resolve(req, &p.state, &p.labels)

	p.seq++
	seq := p.seq
	if p.inflight != nil {
		p.inflight()
		p.inflight = nil
	}

	if rule == domain.RuleNone {
		p.applyResult(seq, req, rule, domain.PassThrough(req.RawText))
		return
	}

	ctx, cancel := context.WithCancel(p.ctx)
	p.inflight = cancel
	p.publish()

	logger.Debug("pipeline: dispatch seq=%d rule=%s len=%d", seq, rule, len(req.RawText))
	go func() {
		res, err := p.dispatcher.Convert(ctx, req.RawText, rule)
		select {
		case p.results <- dispatchResult{seq: seq, req: req, rule: rule, result: res, err: err}:
		case <-p.ctx.Done():
		}
	}()
}

func (p *Pipeline) apply(res dispatchResult) {
	if res.seq != p.seq {
		logger.Debug("pipeline: discarding superseded result seq=%d (current %d)", res.seq, p.seq)
		return
	}
	if p.inflight != nil {
		p.inflight()
		p.inflight = nil
	}

	if res.err != nil {
		if !errors.Is(res.err, context.Canceled) {
			logger.Warn("An error occurs while converting text: %v", res.err)
		}
		p.publish()
		return
	}
	p.applyResult(res.seq, res.req, res.rule, res.result)
}

func (p *Pipeline) applyResult(seq uint64, req domain.ConversionRequest, rule domain.RuleName, res domain.ConversionResult) {
	p.applied = seq
	p.outputText = res.OutputText
	p.lastRule = rule
	p.lastDur = res.Duration

	if p.dispatcher.Track(req, rule, res) {
		p.provenance = domain.ProvenanceDirect
	}
	p.publish()
}

func (p *Pipeline) track(name string, props map[string]any) {
	if p.sink != nil {
		p.sink.TrackEvent(name, props)
	}
}

func (p *Pipeline) buildSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Seq:            p.applied,
		SourceText:     p.sourceText,
		OutputText:     p.outputText,
		State:          p.state,
		Mode:           p.mode,
		TargetEncoding: p.state.Detected.Opposite(),
		Labels:         p.labels,
		LastRule:       p.lastRule,
		LastDuration:   p.lastDur,
		Converting:     p.inflight != nil,
	}
}

func (p *Pipeline) publish() {
	snap := p.buildSnapshot()

	p.mu.Lock()
	p.snapshot = snap
	p.mu.Unlock()

	select {
	case p.updates <- snap:
	default:
		select {
		case <-p.updates:
		default:
		}
		select {
		case p.updates <- snap:
		default:
		}
	}
}

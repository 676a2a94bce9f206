package services

import (
	"context"
	"fmt"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driving"
)

// Ensure Converter implements the interface.
var _ driving.Converter = (*Converter)(nil)

// Converter runs the resolver and dispatcher synchronously with fresh
// state per call. It backs the convert command and the MCP tools.
type Converter struct {
	detector   driven.Detector
	resolver   *Resolver
	dispatcher *Dispatcher
	provenance domain.Provenance
}

// NewConverter creates a one-shot converter. Conversions are reported
// to sink with the given provenance.
func NewConverter(
	detector driven.Detector,
	translit driven.Transliterator,
	sink driven.AnalyticsSink,
	provenance domain.Provenance,
) *Converter {
	if provenance == "" {
		provenance = domain.ProvenanceCLI
	}
	return &Converter{
		detector:   detector,
		resolver:   NewResolver(detector),
		dispatcher: NewDispatcher(translit, sink),
		provenance: provenance,
	}
}

// Convert converts text. In auto mode the detector picks the direction;
// undetectable or blank text is passed through unchanged.
func (c *Converter) Convert(ctx context.Context, text string, mode domain.EncodingMode) (*domain.OneShotResult, error) {
	if mode == "" {
		mode = domain.EncodingAuto
	}
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedEncoding, mode)
	}

	req := domain.ConversionRequest{
		RawText:           text,
		RequestedEncoding: mode,
		Provenance:        c.provenance,
	}
	state := domain.NewEncodingState()
	labels := domain.AutoLabels()

	rule := c.resolver.Resolve(req, &state, &labels)
	if rule == domain.RuleNone {
		return &domain.OneShotResult{
			ConversionResult: domain.PassThrough(text),
			Detected:         state.Detected,
		}, nil
	}

	res, err := c.dispatcher.Convert(ctx, text, rule)
	if err != nil {
		return nil, err
	}
	c.dispatcher.Track(req, rule, res)

	return &domain.OneShotResult{
		ConversionResult: res,
		Detected:         state.Detected,
		Target:           state.Detected.Opposite(),
	}, nil
}

// Detect reports the encoding of text.
func (c *Converter) Detect(ctx context.Context, text string) (domain.DetectedEncoding, error) {
	if err := ctx.Err(); err != nil {
		return domain.DetectedNone, err
	}
	if c.detector == nil {
		return domain.DetectedNone, domain.ErrServiceUnavailable
	}
	return c.detector.Detect(text, driven.DetectOptions{MixType: false}).Encoding, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

// Dispatcher runs resolved conversions and reports them to analytics.
type Dispatcher struct {
	translit driven.Transliterator
	sink     driven.AnalyticsSink
}

// NewDispatcher creates a dispatcher. A nil sink disables analytics.
func NewDispatcher(translit driven.Transliterator, sink driven.AnalyticsSink) *Dispatcher {
	return &Dispatcher{translit: translit, sink: sink}
}

// Convert calls the transliterator. A nil result is treated as empty output.
func (d *Dispatcher) Convert(ctx context.Context, text string, rule domain.RuleName) (domain.ConversionResult, error) {
	if d.translit == nil {
		return domain.ConversionResult{}, domain.ErrServiceUnavailable
	}
	if !rule.IsValid() {
		return domain.ConversionResult{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedRule, rule)
	}

	start := time.Now()
	res, err := d.translit.Translit(ctx, text, rule)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return domain.ConversionResult{}, err
		}
		return domain.ConversionResult{}, fmt.Errorf("translit %s: %w", rule, err)
	}
	if res == nil {
		return domain.ConversionResult{RuleApplied: rule, Duration: time.Since(start)}, nil
	}

	out := *res
	out.RuleApplied = rule
	if out.Duration == 0 {
		out.Duration = time.Since(start)
	}
	return out, nil
}

// Track emits a "convert" event when input is non-empty, a rule was
// applied and the rule replaced something. It reports whether an event
// was emitted.
func (d *Dispatcher) Track(req domain.ConversionRequest, rule domain.RuleName, res domain.ConversionResult) bool {
	if d.sink == nil || req.RawText == "" || rule == domain.RuleNone || !res.WasReplaced {
		return false
	}

	source := req.Provenance
	if source == "" {
		source = domain.ProvenanceDirect
	}
	d.sink.TrackEvent(domain.EventConvert, map[string]any{
		domain.PropMethod:       rule.String(),
		domain.PropInputLength:  len([]rune(req.RawText)),
		domain.PropDurationMsec: res.DurationMs(),
		domain.PropSource:       source.String(),
	})
	return true
}

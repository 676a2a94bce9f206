package services

import (
	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

// Resolver decides which rule, if any, converts a request.
// It mutates the EncodingState and Labels it is given and must only be
// called from the goroutine that owns them.
type Resolver struct {
	detector driven.Detector
}

// NewResolver creates a resolver backed by detector. A nil detector
// never recognises anything.
func NewResolver(detector driven.Detector) *Resolver {
	return &Resolver{detector: detector}
}

// Resolve applies req to state and labels and returns the rule to
// dispatch. RuleNone means the text passes through unconverted.
func (r *Resolver) Resolve(req domain.ConversionRequest, state *domain.EncodingState, labels *domain.Labels) domain.RuleName {
	if req.RequestedEncoding.IsValid() {
		ApplyMode(req.RequestedEncoding, state, labels)
	}

	if req.IsBlank() {
		if state.LockedMode == domain.EncodingAuto || state.Detected.IsNone() {
			state.Reset()
			labels.FontEncSelected = domain.LabelAutoDetect
		}
		return domain.RuleNone
	}

	if state.NeedsDetection() {
		detected := r.detect(req.RawText)
		if detected.IsNone() {
			state.Reset()
			labels.FontEncSelected = domain.LabelAutoDetect
			return domain.RuleNone
		}
		state.Detected = detected
		labels.FontEncSelected = domain.DetectedLabel(detected)
	}

	return domain.RuleFor(state.Detected)
}

func (r *Resolver) detect(text string) domain.DetectedEncoding {
	if r.detector == nil {
		return domain.DetectedNone
	}
	return r.detector.Detect(text, driven.DetectOptions{MixType: false}).Encoding
}

// ApplyMode records an explicit encoding selection. A forced mode pins
// the detected encoding; switching back to auto clears it. It reports
// whether anything changed.
func ApplyMode(mode domain.EncodingMode, state *domain.EncodingState, labels *domain.Labels) bool {
	if mode == state.LockedMode {
		if !mode.IsForced() || state.Detected == domain.DetectedFromMode(mode) {
			return false
		}
	}

	state.LockedMode = mode
	state.Detected = domain.DetectedFromMode(mode)
	*labels = domain.ForcedLabels(mode)
	return true
}

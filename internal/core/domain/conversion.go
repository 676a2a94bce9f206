package domain

import (
	"strings"
	"time"
)

// Provenance tags how a conversion was triggered. It is opaque to the
// pipeline apart from being part of the debounce key and analytics.
type Provenance string

// Well-known provenance values.
const (
	// ProvenanceDirect means the user edited the source text.
	ProvenanceDirect Provenance = "direct"

	// ProvenanceWebIntent means the text was handed off by another app.
	ProvenanceWebIntent Provenance = "web_intent"

	// ProvenanceCLI means a one-shot conversion from the command line.
	ProvenanceCLI Provenance = "cli"

	// ProvenanceMCP means a one-shot conversion requested over MCP.
	ProvenanceMCP Provenance = "mcp"
)

// String returns the string representation.
func (p Provenance) String() string {
	return string(p)
}

// ConversionRequest is created on every input change or encoding switch.
type ConversionRequest struct {
	// RawText is the source text as typed or handed off.
	RawText string

	// RequestedEncoding is the encoding mode in effect when the request was made.
	RequestedEncoding EncodingMode

	// Provenance is passed through to analytics.
	Provenance Provenance
}

// Key returns the composite key used to suppress duplicate emissions.
func (r ConversionRequest) Key() string {
	return string(r.RequestedEncoding) + "|" + string(r.Provenance) + "|" + r.RawText
}

// IsBlank reports whether the raw text is empty or whitespace-only.
func (r ConversionRequest) IsBlank() bool {
	return strings.TrimSpace(r.RawText) == ""
}

// EncodingState is the detection state owned by exactly one pipeline.
type EncodingState struct {
	// Detected is the last detected or forced source encoding.
	Detected DetectedEncoding

	// LockedMode is the mode the user selected.
	LockedMode EncodingMode
}

// NewEncodingState returns the initial {None, Auto} state.
func NewEncodingState() EncodingState {
	return EncodingState{Detected: DetectedNone, LockedMode: EncodingAuto}
}

// Reset returns the state to {None, Auto}.
func (s *EncodingState) Reset() {
	s.Detected = DetectedNone
	s.LockedMode = EncodingAuto
}

// NeedsDetection reports whether the detector must be consulted.
// Once a direction is known it sticks until input is cleared or the
// mode is changed explicitly.
func (s EncodingState) NeedsDetection() bool {
	return s.Detected.IsNone()
}

// ConversionResult is produced once per dispatched request.
type ConversionResult struct {
	// OutputText is the converted (or passed-through) text.
	OutputText string

	// RuleApplied is RuleNone for pass-through results.
	RuleApplied RuleName

	// WasReplaced is true if the rule changed anything.
	WasReplaced bool

	// Duration is how long the conversion took.
	Duration time.Duration
}

// DurationMs returns the duration in milliseconds.
func (r ConversionResult) DurationMs() int64 {
	return r.Duration.Milliseconds()
}

// PassThrough returns a result that echoes the input unchanged.
func PassThrough(text string) ConversionResult {
	return ConversionResult{OutputText: text}
}

// OneShotResult is the outcome of a synchronous, stateless conversion.
type OneShotResult struct {
	ConversionResult

	// Detected is the source encoding used for the conversion.
	Detected DetectedEncoding

	// Target is the output encoding, or DetectedNone for pass-through.
	Target DetectedEncoding
}

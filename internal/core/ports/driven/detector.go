package driven

import "github.com/myanmartools/zuc-cli/internal/core/domain"

// DetectOptions controls detection.
type DetectOptions struct {
	// MixType enables reporting of mixed Zawgyi/Unicode input.
	// The conversion pipeline always disables it.
	MixType bool
}

// DetectResult is the outcome of a detection call.
type DetectResult struct {
	// Encoding is DetectedNone when the detector is not confident.
	Encoding domain.DetectedEncoding

	// Probability is the detector's confidence that the text is Zawgyi, 0..1.
	Probability float64

	// Mixed is set only when MixType was requested and both encodings were seen.
	Mixed bool
}

// Detector identifies the encoding of Myanmar text.
// Implementations must be deterministic for identical input and must
// return promptly; the pipeline calls Detect synchronously.
type Detector interface {
	Detect(text string, opts DetectOptions) DetectResult
}

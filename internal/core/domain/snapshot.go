package domain

import "time"

// Snapshot is a read-only projection of pipeline state.
// UIs observe snapshots instead of reaching into the pipeline.
type Snapshot struct {
	// Seq is the sequence number of the last applied dispatch.
	Seq uint64

	// SourceText is the most recently submitted source text.
	SourceText string

	// OutputText is the most recently applied output.
	OutputText string

	// State is the encoding state at the time of the snapshot.
	State EncodingState

	// Mode is the encoding mode currently requested by the user.
	Mode EncodingMode

	// TargetEncoding is the implied output encoding.
	TargetEncoding DetectedEncoding

	// Labels holds selector and placeholder texts.
	Labels Labels

	// LastRule is the rule used for the last applied result.
	LastRule RuleName

	// LastDuration is the conversion time of the last applied result.
	LastDuration time.Duration

	// Converting is true while a dispatch is in flight.
	Converting bool
}

// SourceEncLabel returns the label for the source encoding.
func (s Snapshot) SourceEncLabel() string {
	return EncodingLabel(s.State.Detected)
}

// TargetEncLabel returns the label for the target encoding.
func (s Snapshot) TargetEncLabel() string {
	return EncodingLabel(s.State.Detected.Opposite())
}

// SourcePlaceholder returns the source placeholder, falling back to auto.
func (s Snapshot) SourcePlaceholder() string {
	if s.Labels.SourcePlaceholder == "" {
		return SourcePlaceholderAuto
	}
	return s.Labels.SourcePlaceholder
}

// TargetPlaceholder returns the target placeholder, falling back to auto.
func (s Snapshot) TargetPlaceholder() string {
	if s.Labels.TargetPlaceholder == "" {
		return TargetPlaceholderAuto
	}
	return s.Labels.TargetPlaceholder
}

// FontEncSelected returns the selector text, falling back to auto.
func (s Snapshot) FontEncSelected() string {
	if s.Labels.FontEncSelected == "" {
		return LabelAutoDetect
	}
	return s.Labels.FontEncSelected
}

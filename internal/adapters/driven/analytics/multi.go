package analytics

import "github.com/myanmartools/zuc-cli/internal/core/ports/driven"

var (
	_ driven.AnalyticsSink = MultiSink(nil)
	_ driven.AnalyticsSink = NopSink{}
)

// MultiSink fans events out to several sinks.
type MultiSink []driven.AnalyticsSink

// NewMultiSink drops nil sinks and returns the rest.
func NewMultiSink(sinks ...driven.AnalyticsSink) MultiSink {
	out := make(MultiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// TrackEvent forwards to every sink.
func (m MultiSink) TrackEvent(name string, properties map[string]any) {
	for _, s := range m {
		s.TrackEvent(name, properties)
	}
}

// Flush flushes every sink.
func (m MultiSink) Flush() {
	for _, s := range m {
		s.Flush()
	}
}

// NopSink discards events. Used when analytics are disabled.
type NopSink struct{}

// TrackEvent does nothing.
func (NopSink) TrackEvent(string, map[string]any) {}

// Flush does nothing.
func (NopSink) Flush() {}

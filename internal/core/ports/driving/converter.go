package driving

import (
	"context"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
)

// ConverterService is the live, debounced conversion pipeline behind an
// interactive editor. All methods are safe for concurrent use.
type ConverterService interface {
	// Submit enqueues an edit event. It never blocks on conversion.
	Submit(req domain.ConversionRequest) error

	// SetText enqueues new source text using the current requested encoding.
	SetText(text string, provenance domain.Provenance) error

	// SetEncoding switches the requested encoding mode. Forced modes take
	// effect on labels immediately; the conversion itself is debounced.
	SetEncoding(mode domain.EncodingMode) error

	// Snapshot returns the latest published state.
	Snapshot() domain.Snapshot

	// Updates delivers snapshots as they change. Slow readers only see
	// the latest one. The channel is closed after Close.
	Updates() <-chan domain.Snapshot

	// Close tears the pipeline down. Buffered and in-flight work is dropped.
	Close() error
}

// Converter performs single, synchronous conversions for batch callers.
type Converter interface {
	// Convert resolves the encoding for text and converts it.
	Convert(ctx context.Context, text string, mode domain.EncodingMode) (*domain.OneShotResult, error)

	// Detect reports the encoding of text.
	Detect(ctx context.Context, text string) (domain.DetectedEncoding, error)
}

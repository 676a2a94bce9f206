// Package domain defines the core entities for zuc.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ConversionRequest: A debounced unit of work for the pipeline
//   - EncodingState: The single mutable detection state owned by a pipeline
//   - ConversionResult: The outcome of one transliteration call
//   - Snapshot: A read-only projection of pipeline state for UIs
//   - AppConfig: Application metadata (name, version, links, sharing)
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

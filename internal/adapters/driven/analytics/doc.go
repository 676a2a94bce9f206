// Package analytics provides driven.AnalyticsSink implementations.
//
// Sink serialises events asynchronously through a bounded channel and a
// single drain goroutine. Tracking never blocks: when the channel is full
// or the sink is closed the event is dropped and counted. A Ring can be
// attached for live inspection of recent events.
package analytics

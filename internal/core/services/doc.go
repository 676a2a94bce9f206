// Package services implements the driving port interfaces.
// Services hold the application logic and orchestrate calls to
// driven ports (adapters).
//
// The conversion pipeline lives here: Debouncer, Resolver and Dispatcher
// composed by Pipeline into one single-writer event loop.
//
// Services are pure Go with no CGO or external dependencies.
package services

// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the conversion pipeline to function:
//
//   - Detector: Decides whether text is Zawgyi or Unicode
//   - Transliterator: Applies a named rule table to text
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - AnalyticsSink: Event tracking. Nil means events are dropped.
//   - FlagStore: One-time flags. Nil means the welcome screen is never shown.
//   - Platform capabilities (theme, share, rating, intents, deep links,
//     modals, menus, toasts). Missing capabilities fall back to
//     platform-neutral defaults.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

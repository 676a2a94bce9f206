// Package driving defines the interfaces that user interfaces (TUI, CLI, MCP)
// call into. These are the "driving" ports in hexagonal architecture terms.
//
// Implementations live in internal/core/services.
package driving

// Package mcp provides an MCP (Model Context Protocol) server adapter for zuc.
// It lets AI assistants detect and convert Zawgyi and Unicode text.
package mcp

import "errors"

// ErrMissingConverter is returned when the converter is not provided.
var ErrMissingConverter = errors.New("mcp: converter is required")

// ErrRateLimited is returned when tool calls arrive faster than allowed.
var ErrRateLimited = errors.New("mcp: too many requests, retry shortly")

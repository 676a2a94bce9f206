package tui

import "errors"

// ErrMissingConverterService is returned when the converter service is not provided.
var ErrMissingConverterService = errors.New("tui: converter service is required")

// ErrMissingShellService is returned when the shell service is not provided.
var ErrMissingShellService = errors.New("tui: shell service is required")

// ErrMissingBridge is returned when the bridge is not provided.
var ErrMissingBridge = errors.New("tui: bridge is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")

// Package tui provides an interactive terminal user interface for zuc.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/myanmartools/zuc-cli/internal/core/ports/driving"
)

// Lifecycle receives terminal focus changes as pause and resume.
type Lifecycle interface {
	Pause()
	Resume()
}

// Ports aggregates everything the TUI needs from the rest of the app.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Converter is the live conversion pipeline.
	Converter driving.ConverterService

	// Shell handles back, menu, modals, sharing and rating.
	Shell driving.ShellService

	// Bridge is the modal/menu/notice state the shell drives.
	// It must be the same bridge passed to the shell.
	Bridge *Bridge

	// Lifecycle is told when the terminal gains or loses focus. Optional.
	Lifecycle Lifecycle

	// Copy writes text to the clipboard. Optional.
	Copy func(string) error
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(converter driving.ConverterService, shell driving.ShellService, bridge *Bridge) *Ports {
	return &Ports{
		Converter: converter,
		Shell:     shell,
		Bridge:    bridge,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Converter == nil {
		return ErrMissingConverterService
	}
	if p.Shell == nil {
		return ErrMissingShellService
	}
	if p.Bridge == nil {
		return ErrMissingBridge
	}
	return nil
}

package mcp

import (
	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driving"
)

// RuleSource supplies the raw source of a rule table.
type RuleSource interface {
	Load(rule domain.RuleName) ([]byte, error)
}

// Ports aggregates everything the MCP server needs.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Converter detects and converts text.
	Converter driving.Converter

	// App describes the application. Optional.
	App *domain.AppConfig

	// Rules exposes the active rule tables. Optional.
	Rules RuleSource

	// RuleNames lists the compiled rule tables. Optional.
	RuleNames []domain.RuleName

	// Events holds the events tracked while the server runs. Optional.
	Events driven.EventHistory
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Converter == nil {
		return ErrMissingConverter
	}
	return nil
}

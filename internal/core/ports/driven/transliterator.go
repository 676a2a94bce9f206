package driven

import (
	"context"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
)

// Transliterator converts text with a named rule table.
type Transliterator interface {
	// Translit applies rule to text. It may fail; callers treat failure
	// as "no update". Implementations should honour ctx cancellation.
	Translit(ctx context.Context, text string, rule domain.RuleName) (*domain.ConversionResult, error)
}

// RuleTableStore supplies the raw source of named rule tables.
type RuleTableStore interface {
	// Load returns the table source for rule.
	Load(rule domain.RuleName) ([]byte, error)

	// Reload drops cached tables so the next Load reads fresh copies.
	Reload()
}

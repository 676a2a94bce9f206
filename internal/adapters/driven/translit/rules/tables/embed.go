// Package tables embeds the transliteration rule tables.
package tables

import (
	"embed"
	"io/fs"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
)

// FS contains the rule tables embedded at compile time.
//
//go:embed *.yaml
var FS embed.FS

// Embedded serves the built-in tables as a read-only rule table store.
type Embedded struct{}

// Load returns the built-in table source for rule.
func (Embedded) Load(rule domain.RuleName) ([]byte, error) {
	return fs.ReadFile(FS, string(rule)+".yaml")
}

// Reload is a no-op; embedded tables never change.
func (Embedded) Reload() {}

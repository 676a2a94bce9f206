package terminal

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

var (
	_ driven.ThemeDetector    = (*EnvThemeDetector)(nil)
	_ driven.ColorSchemeQuery = (*BackgroundQuery)(nil)
)

// ErrThemeUnset is returned by EnvThemeDetector when ZUC_THEME is not set.
var ErrThemeUnset = errors.New(ThemeEnvVar + " is not set")

// ThemeEnvVar names the environment variable read by EnvThemeDetector.
const ThemeEnvVar = "ZUC_THEME"

// EnvThemeDetector reports the dark-mode preference from ZUC_THEME.
// It rejects when the variable is unset and is unavailable when the
// value is not "dark" or "light".
type EnvThemeDetector struct {
	lookup func(string) (string, bool)
}

// NewEnvThemeDetector creates a detector reading the process environment.
func NewEnvThemeDetector() *EnvThemeDetector {
	return &EnvThemeDetector{lookup: os.LookupEnv}
}

func (d *EnvThemeDetector) value() string {
	v, _ := d.lookup(ThemeEnvVar)
	return strings.ToLower(strings.TrimSpace(v))
}

// IsAvailable reports whether ZUC_THEME holds a usable value.
func (d *EnvThemeDetector) IsAvailable(_ context.Context) (bool, error) {
	if _, ok := d.lookup(ThemeEnvVar); !ok {
		return false, ErrThemeUnset
	}
	v := d.value()
	return v == "dark" || v == "light", nil
}

// IsDarkModeEnabled reports whether ZUC_THEME is "dark".
func (d *EnvThemeDetector) IsDarkModeEnabled(_ context.Context) (bool, error) {
	return d.value() == "dark", nil
}

// BackgroundQuery asks the terminal for its background colour.
type BackgroundQuery struct {
	hasDark func() bool
}

// NewBackgroundQuery creates a query backed by lipgloss.
func NewBackgroundQuery() *BackgroundQuery {
	return &BackgroundQuery{hasDark: lipgloss.HasDarkBackground}
}

// PrefersDark reports whether the terminal background is dark.
func (q *BackgroundQuery) PrefersDark() bool {
	return q.hasDark()
}

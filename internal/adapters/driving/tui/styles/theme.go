// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Name is the domain theme this palette renders.
	Name domain.Theme

	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Background is the background colour.
	Background lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DarkTheme returns the dark colour theme.
func DarkTheme() *Theme {
	return &Theme{
		Name:       domain.ThemeDark,
		Primary:    lipgloss.Color("#42A5F5"), // Blue 400
		Secondary:  lipgloss.Color("#26C6DA"), // Cyan
		Background: lipgloss.Color("#1E1E2E"), // Dark gray
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Warning:    lipgloss.Color("#F9E2AF"), // Yellow
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
		Bar:        lipgloss.Color("#181825"),
	}
}

// LightTheme returns the light colour theme.
func LightTheme() *Theme {
	return &Theme{
		Name:       domain.ThemeLight,
		Primary:    lipgloss.Color("#1E88E5"), // App theme colour
		Secondary:  lipgloss.Color("#00838F"), // Dark cyan
		Background: lipgloss.Color("#FAFAFA"),
		Foreground: lipgloss.Color("#212121"),
		Muted:      lipgloss.Color("#757575"),
		Success:    lipgloss.Color("#2E7D32"),
		Warning:    lipgloss.Color("#EF6C00"),
		Error:      lipgloss.Color("#C62828"),
		Border:     lipgloss.Color("#BDBDBD"),
		Bar:        lipgloss.Color("#E0E0E0"),
	}
}

// DefaultTheme returns the light theme, the shell's default.
func DefaultTheme() *Theme {
	return LightTheme()
}

// ThemeFor returns the palette for a resolved domain theme.
func ThemeFor(t domain.Theme) *Theme {
	if t == domain.ThemeDark {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Warning style for warning messages.
	Warning lipgloss.Style

	// InputField style for the text areas.
	InputField lipgloss.Style

	// FocusedField style for the focused text area.
	FocusedField lipgloss.Style

	// Selector style for the encoding selector.
	Selector lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Toast style for transient notices.
	Toast lipgloss.Style

	// Modal style for About and Support boxes.
	Modal lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Background).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		FocusedField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		Selector: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),

		Toast: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Warning),

		Modal: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(theme.Primary).
			Padding(1, 2),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// ForTheme returns styles for a resolved domain theme.
func ForTheme(t domain.Theme) *Styles {
	return NewStyles(ThemeFor(t))
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

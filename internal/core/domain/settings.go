package domain

import "time"

// ThemeMode selects how the colour theme is chosen.
type ThemeMode string

// Available theme modes.
const (
	// ThemeModeAuto asks the platform, falling back to the terminal background.
	ThemeModeAuto ThemeMode = "auto"

	// ThemeModeDark forces the dark theme.
	ThemeModeDark ThemeMode = "dark"

	// ThemeModeLight forces the light theme.
	ThemeModeLight ThemeMode = "light"
)

// IsValid returns true if the theme mode is recognised.
func (m ThemeMode) IsValid() bool {
	switch m {
	case ThemeModeAuto, ThemeModeDark, ThemeModeLight:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m ThemeMode) String() string {
	return string(m)
}

// DefaultDebounceInterval is the quiet period before a conversion runs.
const DefaultDebounceInterval = 200 * time.Millisecond

// DefaultBackPressWindow is how long a second back press exits the app.
const DefaultBackPressWindow = 2000 * time.Millisecond

// PipelineSettings configures the conversion pipeline.
type PipelineSettings struct {
	// DebounceInterval is the quiet period before a conversion is dispatched.
	DebounceInterval time.Duration
}

// AnalyticsSettings configures analytics collection.
type AnalyticsSettings struct {
	// Enabled turns event tracking on or off.
	Enabled bool

	// Persist stores events in the local database as well as the event log.
	Persist bool
}

// RulesSettings selects where transliteration rule tables come from.
type RulesSettings struct {
	// Custom loads the tables from the user's rules directory instead
	// of the built-in copies.
	Custom bool
}

// Settings holds user-configurable application settings.
type Settings struct {
	Pipeline  PipelineSettings
	Analytics AnalyticsSettings
	Rules     RulesSettings
	Theme     ThemeMode
	LogLevel  string
}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		Pipeline: PipelineSettings{
			DebounceInterval: DefaultDebounceInterval,
		},
		Analytics: AnalyticsSettings{
			Enabled: true,
			Persist: true,
		},
		Theme:    ThemeModeAuto,
		LogLevel: "info",
	}
}

// AllThemeModes returns all theme modes.
func AllThemeModes() []ThemeMode {
	return []ThemeMode{ThemeModeAuto, ThemeModeDark, ThemeModeLight}
}

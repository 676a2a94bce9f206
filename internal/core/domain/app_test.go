package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppConfig_WelcomeScreenKey(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.AppVersion = "2.1.0"

	assert.Equal(t, "is-shown-welcome-screen-v2.1.0", cfg.WelcomeScreenKey())
}

func TestAppConfig_ThemeColorARGB(t *testing.T) {
	cfg := AppConfig{AppThemeColor: "#1E88E5"}
	assert.Equal(t, "#FF1E88E5", cfg.ThemeColorARGB())

	cfg.AppThemeColor = "1E88E5"
	assert.Equal(t, "#FF1E88E5", cfg.ThemeColorARGB())
}

func TestDefaultRatePreferences(t *testing.T) {
	cfg := DefaultAppConfig()
	prefs := DefaultRatePreferences(cfg)

	assert.Equal(t, "en", prefs.UseLanguage)
	assert.Equal(t, cfg.AppName, prefs.DisplayAppName)
	assert.Equal(t, 3, prefs.UsesUntilPrompt)
	assert.True(t, prefs.PromptAgainForEachNewVersion)
	assert.Equal(t, "Rate it now", prefs.Locale.RateButtonLabel)
}

func TestTextAreaMinRows(t *testing.T) {
	tests := []struct {
		height   int
		expected int
	}{
		{568, 4},
		{580, 5},
		{640, 6},
		{736, 7},
		{812, 7},
		{824, 8},
		{896, 8},
		{900, 10},
		{1200, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TextAreaMinRows(tt.height), "height %d", tt.height)
	}
}

func TestIntent_Text(t *testing.T) {
	var nilIntent *Intent
	assert.Equal(t, "", nilIntent.Text())
	assert.Equal(t, "", (&Intent{}).Text())

	in := &Intent{Extras: map[string]string{IntentExtraText: "hello"}}
	assert.Equal(t, "hello", in.Text())
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, DefaultDebounceInterval, s.Pipeline.DebounceInterval)
	assert.True(t, s.Analytics.Enabled)
	assert.Equal(t, ThemeModeAuto, s.Theme)
	assert.True(t, s.Theme.IsValid())
	assert.False(t, ThemeMode("sepia").IsValid())
}

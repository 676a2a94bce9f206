package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
)

func TestThemes_AllColoursSet(t *testing.T) {
	for _, theme := range []*Theme{DarkTheme(), LightTheme()} {
		t.Run(string(theme.Name), func(t *testing.T) {
			for _, c := range []lipgloss.Color{
				theme.Primary, theme.Secondary, theme.Background, theme.Foreground,
				theme.Muted, theme.Success, theme.Warning, theme.Error, theme.Border, theme.Bar,
			} {
				assert.NotEmpty(t, string(c))
			}
		})
	}
}

func TestThemes_AccentsAreDistinct(t *testing.T) {
	for _, theme := range []*Theme{DarkTheme(), LightTheme()} {
		seen := make(map[string]bool)
		for _, c := range []lipgloss.Color{theme.Primary, theme.Secondary, theme.Success, theme.Warning, theme.Error} {
			s := string(c)
			assert.False(t, seen[s], "duplicate colour %s in %s theme", s, theme.Name)
			seen[s] = true
		}
	}
}

func TestThemeFor(t *testing.T) {
	assert.Equal(t, domain.ThemeDark, ThemeFor(domain.ThemeDark).Name)
	assert.Equal(t, domain.ThemeLight, ThemeFor(domain.ThemeLight).Name)
	assert.Equal(t, domain.ThemeLight, ThemeFor("").Name)
	assert.Equal(t, domain.ThemeLight, DefaultTheme().Name)
}

func TestLightTheme_UsesAppThemeColour(t *testing.T) {
	assert.Equal(t, lipgloss.Color(domain.DefaultAppConfig().AppThemeColor), LightTheme().Primary)
}

func TestNewStyles_WithTheme(t *testing.T) {
	theme := DarkTheme()
	styles := NewStyles(theme)

	require.NotNil(t, styles)
	assert.Equal(t, theme, styles.Theme())
}

func TestNewStyles_NilTheme(t *testing.T) {
	styles := NewStyles(nil)

	require.NotNil(t, styles)
	assert.Equal(t, domain.ThemeLight, styles.Theme().Name)
}

func TestForTheme(t *testing.T) {
	assert.Equal(t, domain.ThemeDark, ForTheme(domain.ThemeDark).Theme().Name)
	assert.Equal(t, domain.ThemeLight, DefaultStyles().Theme().Name)
}

func TestStyles_AllStylesInitialised(t *testing.T) {
	styles := DefaultStyles()

	for name, style := range map[string]lipgloss.Style{
		"Title":        styles.Title,
		"Subtitle":     styles.Subtitle,
		"Normal":       styles.Normal,
		"Muted":        styles.Muted,
		"Selected":     styles.Selected,
		"Error":        styles.Error,
		"Success":      styles.Success,
		"Warning":      styles.Warning,
		"InputField":   styles.InputField,
		"FocusedField": styles.FocusedField,
		"Selector":     styles.Selector,
		"StatusBar":    styles.StatusBar,
		"Toast":        styles.Toast,
		"Modal":        styles.Modal,
		"Help":         styles.Help,
		"Border":       styles.Border,
	} {
		assert.NotEqual(t, lipgloss.Style{}, style, name)
	}
}

func TestStyles_CanRenderText(t *testing.T) {
	styles := ForTheme(domain.ThemeDark)

	for _, style := range []lipgloss.Style{styles.Title, styles.Toast, styles.Modal, styles.Selector} {
		assert.Contains(t, style.Render("test text"), "test text")
	}
}

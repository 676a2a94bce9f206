package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui/messages"
	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui/styles"
	"github.com/myanmartools/zuc-cli/internal/core/domain"
)

func newView() *View {
	return NewView(nil, domain.DefaultAppConfig())
}

func TestItems(t *testing.T) {
	cfg := domain.DefaultAppConfig()

	items := Items(cfg)

	// About, Support, Share, Rate, nav links, Quit
	require.Len(t, items, 5+len(cfg.NavLinks))
	assert.Equal(t, messages.MenuAbout, items[0].Action)
	assert.Equal(t, messages.MenuSupport, items[1].Action)
	assert.Equal(t, messages.MenuShare, items[2].Action)
	assert.Equal(t, messages.MenuRate, items[3].Action)
	assert.Equal(t, messages.MenuLink, items[4].Action)
	assert.Equal(t, cfg.NavLinks[0].URL, items[4].URL)
	assert.Equal(t, messages.MenuQuit, items[len(items)-1].Action)
}

func TestItems_NoNavLinks(t *testing.T) {
	items := Items(domain.AppConfig{})

	assert.Len(t, items, 5)
}

func TestNewView(t *testing.T) {
	view := NewView(styles.DefaultStyles(), domain.DefaultAppConfig())

	require.NotNil(t, view)
	assert.Equal(t, 0, view.Selected())
	assert.Equal(t, 80, view.width)
	assert.Equal(t, 24, view.height)
}

func TestNewView_NilStyles(t *testing.T) {
	view := newView()

	assert.NotNil(t, view.styles)
	assert.Nil(t, view.Init())
}

func TestView_Update_WindowSize(t *testing.T) {
	view := newView()

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.Equal(t, 100, view.width)
	assert.Equal(t, 50, view.height)
}

func TestView_Update_Navigate(t *testing.T) {
	view := newView()
	last := len(view.Items()) - 1

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, view.Selected())

	for i := 0; i < 20; i++ {
		view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	}
	assert.Equal(t, last, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, last-1, view.Selected())

	for i := 0; i < 20; i++ {
		view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	}
	assert.Equal(t, 0, view.Selected())
}

func TestView_Update_Enter(t *testing.T) {
	cfg := domain.DefaultAppConfig()
	tests := []struct {
		name     string
		selected int
		want     messages.MenuSelected
	}{
		{"about", 0, messages.MenuSelected{Action: messages.MenuAbout}},
		{"support", 1, messages.MenuSelected{Action: messages.MenuSupport}},
		{"share", 2, messages.MenuSelected{Action: messages.MenuShare}},
		{"rate", 3, messages.MenuSelected{Action: messages.MenuRate}},
		{"link", 4, messages.MenuSelected{Action: messages.MenuLink, URL: cfg.NavLinks[0].URL}},
		{"quit", 4 + len(cfg.NavLinks), messages.MenuSelected{Action: messages.MenuQuit}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewView(nil, cfg)
			view.selected = tt.selected

			_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

			require.NotNil(t, cmd)
			assert.Equal(t, tt.want, cmd())
		})
	}
}

func TestView_Update_OtherKeysIgnored(t *testing.T) {
	view := newView()

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	assert.Nil(t, cmd)
	assert.Equal(t, 0, view.Selected())
}

func TestView_View(t *testing.T) {
	cfg := domain.DefaultAppConfig()
	view := NewView(nil, cfg)

	output := view.View()

	assert.Contains(t, output, cfg.AppName)
	for _, item := range view.Items() {
		assert.Contains(t, output, item.Label)
	}
	assert.Contains(t, output, ">")
}

func TestView_ResetAndDimensions(t *testing.T) {
	view := newView()
	view.selected = 3

	view.Reset()
	view.SetDimensions(120, 60)

	assert.Equal(t, 0, view.Selected())
	assert.Equal(t, 120, view.width)
	assert.Equal(t, 60, view.height)
}

func TestView_SetStyles(t *testing.T) {
	view := newView()
	dark := styles.ForTheme(domain.ThemeDark)

	view.SetStyles(dark)

	assert.Same(t, dark, view.styles)
}

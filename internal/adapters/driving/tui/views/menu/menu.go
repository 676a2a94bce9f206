// Package menu provides the drawer menu view for the TUI.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui/messages"
	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui/styles"
	"github.com/myanmartools/zuc-cli/internal/core/domain"
)

// Item represents a single menu entry.
type Item struct {
	Label  string
	Action messages.MenuAction
	URL    string
}

// View is the drawer menu.
type View struct {
	styles   *styles.Styles
	title    string
	items    []Item
	selected int
	width    int
	height   int
}

// Items builds the drawer entries for an app configuration.
func Items(cfg domain.AppConfig) []Item {
	items := []Item{
		{Label: "About", Action: messages.MenuAbout},
		{Label: "Support", Action: messages.MenuSupport},
		{Label: "Share", Action: messages.MenuShare},
		{Label: "Rate", Action: messages.MenuRate},
	}
	for _, l := range cfg.NavLinks {
		items = append(items, Item{Label: l.Label, Action: messages.MenuLink, URL: l.URL})
	}
	return append(items, Item{Label: "Quit", Action: messages.MenuQuit})
}

// NewView creates a drawer menu for cfg.
func NewView(s *styles.Styles, cfg domain.AppConfig) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		title:  cfg.AppName,
		items:  Items(cfg),
		width:  80,
		height: 24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			item := v.items[v.selected]
			return v, func() tea.Msg {
				return messages.MenuSelected{Action: item.Action, URL: item.URL}
			}
		}
	}

	return v, nil
}

// View renders the drawer.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(v.title))
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		label := v.styles.Normal.Render(item.Label)
		if i == v.selected {
			cursor = "> "
			label = v.styles.Selected.Render(item.Label)
		}
		b.WriteString(cursor + label)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [Esc] Close"))

	return v.styles.Border.Padding(0, 1).Render(b.String())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// SetStyles restyles the menu after a theme change.
func (v *View) SetStyles(s *styles.Styles) {
	if s != nil {
		v.styles = s
	}
}

// Reset moves the cursor back to the first entry.
func (v *View) Reset() {
	v.selected = 0
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Items returns the menu entries.
func (v *View) Items() []Item {
	return v.items
}

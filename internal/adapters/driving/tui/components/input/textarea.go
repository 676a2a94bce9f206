// Package input provides the text area components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui/styles"
)

// MaxChars caps the source text.
const MaxChars = 20000

// Area wraps a bubbles textarea with converter styling. A read-only area
// ignores key input and only shows what SetValue puts in it.
type Area struct {
	textarea textarea.Model
	styles   *styles.Styles
	label    string
	readOnly bool
	width    int
}

// NewArea creates a labelled text area.
func NewArea(s *styles.Styles, label string, readOnly bool) *Area {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = MaxChars
	ta.SetWidth(60)
	ta.SetHeight(4)

	return &Area{
		textarea: ta,
		styles:   s,
		label:    label,
		readOnly: readOnly,
		width:    60,
	}
}

// Init initialises the area.
func (a *Area) Init() tea.Cmd {
	if a.readOnly {
		return nil
	}
	return textarea.Blink
}

// Update handles input messages. Key input is dropped for read-only areas.
func (a *Area) Update(msg tea.Msg) (*Area, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok && a.readOnly {
		return a, nil
	}
	var cmd tea.Cmd
	a.textarea, cmd = a.textarea.Update(msg)
	return a, cmd
}

// View renders the label above the bordered area.
func (a *Area) View() string {
	field := a.styles.InputField
	if a.textarea.Focused() {
		field = a.styles.FocusedField
	}
	return a.styles.Subtitle.Render(a.label) + "\n" + field.Render(a.textarea.View())
}

// Value returns the current text.
func (a *Area) Value() string {
	return a.textarea.Value()
}

// SetValue replaces the text.
func (a *Area) SetValue(value string) {
	a.textarea.SetValue(value)
}

// SetPlaceholder sets the text shown while the area is empty.
func (a *Area) SetPlaceholder(p string) {
	a.textarea.Placeholder = p
}

// Placeholder returns the placeholder text.
func (a *Area) Placeholder() string {
	return a.textarea.Placeholder
}

// SetLabel sets the heading shown above the area.
func (a *Area) SetLabel(label string) {
	a.label = label
}

// Label returns the heading.
func (a *Area) Label() string {
	return a.label
}

// Focus sets focus on the area.
func (a *Area) Focus() tea.Cmd {
	return a.textarea.Focus()
}

// Blur removes focus from the area.
func (a *Area) Blur() {
	a.textarea.Blur()
}

// Focused returns whether the area is focused.
func (a *Area) Focused() bool {
	return a.textarea.Focused()
}

// ReadOnly reports whether the area ignores key input.
func (a *Area) ReadOnly() bool {
	return a.readOnly
}

// SetSize sets the outer width and the number of text rows.
func (a *Area) SetSize(width, rows int) {
	a.width = width
	// Account for border and padding
	inner := width - 4
	if inner < 20 {
		inner = 20
	}
	if rows < 1 {
		rows = 1
	}
	a.textarea.SetWidth(inner)
	a.textarea.SetHeight(rows)
}

// Width returns the current outer width.
func (a *Area) Width() int {
	return a.width
}

// Height returns the number of text rows.
func (a *Area) Height() int {
	return a.textarea.Height()
}

// SetStyles restyles the area after a theme change.
func (a *Area) SetStyles(s *styles.Styles) {
	if s != nil {
		a.styles = s
	}
}

// Reset clears the text.
func (a *Area) Reset() {
	a.textarea.Reset()
}

// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui/keymap"
	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady      State = "ready"
	StateConverting State = "converting"
	StateError      State = "error"
	StateToast      State = "toast"
)

// Hints selects which key hints are shown on the right.
type Hints int

const (
	HintsHome Hints = iota
	HintsMenu
	HintsModal
)

// Bar displays the detected direction, notices and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	state    State
	message  string
	source   string
	target   string
	duration time.Duration
	hints    Hints
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateConverting:
		return s.styles.Muted.Render("Converting...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateToast:
		return s.styles.Toast.Render(s.message)
	case StateReady:
	}

	if s.source == "" || s.target == "" {
		return s.styles.Muted.Render("Ready")
	}
	dir := fmt.Sprintf("%s → %s", s.source, s.target)
	if s.duration > 0 {
		dir += fmt.Sprintf(" (%dms)", s.duration.Milliseconds())
	}
	return s.styles.Normal.Render(dir)
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch s.hints {
	case HintsMenu:
		bindings = s.keymap.MenuHelp()
	case HintsModal:
		bindings = s.keymap.ModalHelp()
	default:
		bindings = s.keymap.ShortHelp()
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(parts, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the error or notice text.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetDirection sets the source and target encoding labels and the
// duration of the last conversion.
func (s *Bar) SetDirection(source, target string, d time.Duration) {
	s.source = source
	s.target = target
	s.duration = d
}

// Direction returns the source and target labels.
func (s *Bar) Direction() (string, string) {
	return s.source, s.target
}

// SetHints selects the key hints.
func (s *Bar) SetHints(h Hints) {
	s.hints = h
}

// SetStyles restyles the bar after a theme change.
func (s *Bar) SetStyles(st *styles.Styles) {
	if st != nil {
		s.styles = st
	}
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to its ready state, keeping the direction.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}

// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/myanmartools/zuc-cli/internal/core/domain"
)

// ViewType identifies which view is currently on top.
type ViewType int

const (
	// ViewHome is the converter screen.
	ViewHome ViewType = iota
	// ViewMenu is the drawer menu over the home screen.
	ViewMenu
	// ViewAbout is the About modal.
	ViewAbout
	// ViewSupport is the Support modal.
	ViewSupport
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewMenu:
		return "menu"
	case ViewAbout:
		return "about"
	case ViewSupport:
		return "support"
	default:
		return "unknown"
	}
}

// SnapshotUpdated carries a new pipeline snapshot.
type SnapshotUpdated struct {
	Snapshot domain.Snapshot
}

// UpdatesClosed signals the pipeline stopped publishing.
type UpdatesClosed struct{}

// ChromeChanged signals that a modal or the drawer menu opened or closed.
type ChromeChanged struct{}

// ToastShown carries a transient notice to display.
type ToastShown struct {
	ID    uint64
	Toast domain.Toast
}

// ToastExpired clears the notice with the same ID.
type ToastExpired struct {
	ID uint64
}

// ThemeChanged asks the app to restyle.
type ThemeChanged struct {
	Theme domain.Theme
}

// ShellReady signals the platform-ready flow finished.
type ShellReady struct {
	Err error
}

// MenuAction identifies a drawer menu entry.
type MenuAction int

const (
	// MenuAbout opens the About modal.
	MenuAbout MenuAction = iota
	// MenuSupport opens the Support modal.
	MenuSupport
	// MenuShare shares the app.
	MenuShare
	// MenuRate shows the rating prompt.
	MenuRate
	// MenuLink shows a navigation link.
	MenuLink
	// MenuQuit exits the application.
	MenuQuit
)

// String returns the string representation of the action.
func (a MenuAction) String() string {
	switch a {
	case MenuAbout:
		return "about"
	case MenuSupport:
		return "support"
	case MenuShare:
		return "share"
	case MenuRate:
		return "rate"
	case MenuLink:
		return "link"
	case MenuQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// MenuSelected is sent when a drawer menu entry is chosen.
type MenuSelected struct {
	Action MenuAction
	URL    string
}

// Copied signals the output text was copied to the clipboard.
type Copied struct {
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

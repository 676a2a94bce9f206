package driven

import (
	"context"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
)

// LifecycleEvent is a platform lifecycle signal.
type LifecycleEvent int

const (
	// LifecyclePause is sent when the app moves to the background.
	LifecyclePause LifecycleEvent = iota
	// LifecycleResume is sent when the app returns to the foreground.
	LifecycleResume
)

// String returns the string representation of the event.
func (e LifecycleEvent) String() string {
	switch e {
	case LifecyclePause:
		return "pause"
	case LifecycleResume:
		return "resume"
	default:
		return "unknown"
	}
}

// Platform describes the host the application runs on.
type Platform interface {
	// Name returns the platform name, e.g. "terminal".
	Name() string

	// Is reports whether the platform matches name ("android", "ios", ...).
	Is(name string) bool

	// Height returns the usable screen height in device-independent pixels.
	Height() int

	// Ready blocks until the platform is ready for use.
	Ready(ctx context.Context) error

	// Lifecycle returns a channel of pause/resume signals.
	// The channel is never closed; stop reading when ctx is done.
	Lifecycle() <-chan LifecycleEvent
}

// ThemeDetector queries the native dark-mode setting.
type ThemeDetector interface {
	IsAvailable(ctx context.Context) (bool, error)
	IsDarkModeEnabled(ctx context.Context) (bool, error)
}

// ColorSchemeQuery is the platform-neutral fallback for theme detection.
type ColorSchemeQuery interface {
	PrefersDark() bool
}

// SystemChrome controls native status bar, header colour and splash screen.
type SystemChrome interface {
	StyleLightContent() error
	SetStatusBarColor(argbHex string) error
	TintHeader(hex string) error
	HideSplash() error
}

// ShareSheet shares a message through the platform's share facility.
type ShareSheet interface {
	Share(ctx context.Context, sharing domain.SocialSharing) error
}

// RatePrompter shows the rate-this-app prompt.
type RatePrompter interface {
	SetPreferences(prefs domain.RatePreferences)

	// Prompt shows the prompt. When immediately is false the prompter
	// honours its usage counter and only shows the prompt when due.
	Prompt(ctx context.Context, immediately bool) error
}

// IntentSource exposes data handed to the app by other applications.
type IntentSource interface {
	// GetIntent returns the launch intent, or nil if there is none.
	GetIntent(ctx context.Context) (*domain.Intent, error)

	RegisterReceiver(actions []string) error
	UnregisterReceiver() error
}

// DynamicLinks delivers deep links opened by the user.
type DynamicLinks interface {
	// Links returns a channel of deep links and a channel of errors.
	// Both are closed when ctx is done or the source has no more links.
	Links(ctx context.Context) (<-chan domain.DeepLink, <-chan error)
}

// ModalKind identifies a modal screen.
type ModalKind string

// Modal screens.
const (
	ModalNone    ModalKind = ""
	ModalAbout   ModalKind = "about"
	ModalSupport ModalKind = "support"
)

// ModalController presents and dismisses modal screens.
type ModalController interface {
	// Present shows a modal and returns once it is visible. The returned
	// channel is closed when the modal is dismissed.
	Present(ctx context.Context, kind ModalKind) (<-chan struct{}, error)

	// Top returns the topmost modal, or ModalNone.
	Top(ctx context.Context) (ModalKind, error)

	// Dismiss closes the topmost modal.
	Dismiss(ctx context.Context) error
}

// MenuController drives the drawer menu.
type MenuController interface {
	IsOpen(ctx context.Context) (bool, error)
	Close(ctx context.Context) error

	// Toggle opens or closes the menu and reports whether it is now open.
	Toggle(ctx context.Context) (bool, error)
}

// Notifier shows transient notices.
type Notifier interface {
	Toast(ctx context.Context, toast domain.Toast) error
}

// Exiter terminates the application.
type Exiter interface {
	Exit()
}

package domain

import "time"

// Analytics event names.
const (
	EventConvert          = "convert"
	EventShare            = "share"
	EventRate             = "rate"
	EventToggleDrawerMenu = "toggle_drawer_menu"
	EventScreenView       = "screen_view"
	EventChangeFontEnc    = "change_input_font_enc"
)

// Analytics property keys.
const (
	PropMethod       = "method"
	PropInputLength  = "input_length"
	PropDurationMsec = "duration_msec"
	PropSource       = "source"
	PropAction       = "action"
	PropScreenName   = "screen_name"
	PropFontEnc      = "font_enc"
)

// Screen names used in screen_view events.
const (
	ScreenHome    = "Home"
	ScreenAbout   = "About"
	ScreenSupport = "Support"
)

// AnalyticsEvent is a single tracked event.
type AnalyticsEvent struct {
	// ID uniquely identifies the event.
	ID string

	// SessionID groups events from one application run.
	SessionID string

	// Name is the event name, e.g. "convert".
	Name string

	// Properties carries event-specific values.
	Properties map[string]any

	// Time is when the event was tracked.
	Time time.Time
}

// Analytics property values.
const (
	ShareMethodNative = "Social Sharing Native"
	RateMethodNative  = "App Rate Native"
	ActionOpen        = "open"
	ActionClose       = "close"
)

// Notice texts shown by the shell.
const (
	ToastShareThanks   = "Thank you for sharing the app."
	ToastPressBackExit = "Press back again to exit the app."
)

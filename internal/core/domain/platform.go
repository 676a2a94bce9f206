package domain

import "time"

// Platform names understood by Platform.Is.
const (
	PlatformAndroid  = "android"
	PlatformIOS      = "ios"
	PlatformTerminal = "terminal"
)

// Intent extras and actions.
const (
	IntentExtraText       = "android.intent.extra.TEXT"
	IntentBroadcastAction = "com.darryncampbell.cordova.plugin.broadcastIntent.ACTION"
)

// Intent is text or data handed to the app by another application.
type Intent struct {
	Action string
	Extras map[string]string
}

// Text returns the shared text extra, if any.
func (i *Intent) Text() string {
	if i == nil || i.Extras == nil {
		return ""
	}
	return i.Extras[IntentExtraText]
}

// DeepLink is a dynamic link opened by the user.
type DeepLink struct {
	URL string
}

// Toast is a transient notice.
type Toast struct {
	Message  string
	Duration time.Duration
}

// Theme is the resolved colour scheme.
type Theme string

// Themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// RateLocale holds the rating dialog texts.
type RateLocale struct {
	Title             string
	Message           string
	CancelButtonLabel string
	LaterButtonLabel  string
	RateButtonLabel   string
	YesButtonLabel    string
	NoButtonLabel     string
}

// RatePreferences configures the rating prompt.
type RatePreferences struct {
	UseLanguage                  string
	DisplayAppName               string
	UsesUntilPrompt              int
	PromptAgainForEachNewVersion bool
	SimpleMode                   bool
	StoreAppURL                  StoreAppURLInfo
	Locale                       RateLocale
}

// DefaultRatePreferences returns the preferences used at startup.
func DefaultRatePreferences(cfg AppConfig) RatePreferences {
	return RatePreferences{
		UseLanguage:                  "en",
		DisplayAppName:               cfg.AppName,
		UsesUntilPrompt:              3,
		PromptAgainForEachNewVersion: true,
		SimpleMode:                   true,
		StoreAppURL:                  cfg.StoreAppURLInfo,
		Locale: RateLocale{
			Title:             "Do you ❤️ using this app?",
			Message:           "We hope you like using " + cfg.AppName + ".\nWe love to hear your feedback.",
			CancelButtonLabel: "No, thanks",
			LaterButtonLabel:  "Later",
			RateButtonLabel:   "Rate it now",
			YesButtonLabel:    "Yes",
			NoButtonLabel:     "No",
		},
	}
}

// TextAreaMinRows returns the minimum text area rows for a screen height.
func TextAreaMinRows(height int) int {
	switch {
	case height >= 900:
		return 10
	case height >= 820:
		return 8
	case height >= 730:
		return 7
	case height >= 640:
		return 6
	case height >= 580:
		return 5
	default:
		return 4
	}
}

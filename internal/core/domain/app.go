package domain

import (
	"fmt"
	"strings"
)

// Deep link targets handled by the application shell.
const (
	DeepLinkBase    = "https://zawgyi-unicode-converter.myanmartools.org"
	DeepLinkAbout   = DeepLinkBase + "/about"
	DeepLinkSupport = DeepLinkBase + "/support"
)

// NavLinkItem is an entry in the drawer menu.
type NavLinkItem struct {
	Label string
	URL   string
	Icon  string
}

// SocialSharing describes the share-the-app message.
type SocialSharing struct {
	Subject string
	Message string
	LinkURL string
}

// StoreAppURLInfo holds store identifiers used by the rating prompt.
type StoreAppURLInfo struct {
	Android string
	IOS     string
	Windows string
}

// AppConfig is the application metadata exposed to the shell and UIs.
type AppConfig struct {
	AppName         string
	AppVersion      string
	AppDescription  string
	AppThemeColor   string
	PrivacyURL      string
	NavLinks        []NavLinkItem
	SocialSharing   SocialSharing
	StoreAppURLInfo StoreAppURLInfo
}

// DefaultAppConfig returns the built-in application metadata.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		AppName:        "Zawgyi Unicode Converter",
		AppVersion:     "dev",
		AppDescription: "Zawgyi Unicode converter with auto detection for Myanmar text",
		AppThemeColor:  "#1E88E5",
		PrivacyURL:     DeepLinkBase + "/privacy",
		NavLinks: []NavLinkItem{
			{Label: "Myanmar Tools", URL: "https://myanmartools.org", Icon: "home"},
			{Label: "GitHub", URL: "https://github.com/myanmartools", Icon: "code"},
		},
		SocialSharing: SocialSharing{
			Subject: "Zawgyi Unicode Converter",
			Message: "Zawgyi Unicode converter with auto detection",
			LinkURL: DeepLinkBase,
		},
		StoreAppURLInfo: StoreAppURLInfo{
			Android: "market://details?id=com.dagonmetric.zawgyiunicodeconverter",
		},
	}
}

// WelcomeScreenKey returns the flag key recording that the one-time
// welcome screen was shown for this version.
func (c AppConfig) WelcomeScreenKey() string {
	return fmt.Sprintf("is-shown-welcome-screen-v%s", c.AppVersion)
}

// ThemeColorARGB returns the theme colour as #FFRRGGBB for status bars.
func (c AppConfig) ThemeColorARGB() string {
	return "#FF" + strings.TrimPrefix(c.AppThemeColor, "#")
}

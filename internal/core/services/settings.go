package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
	"github.com/myanmartools/zuc-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyAppName          = "app.name"
	keyAppThemeColor    = "app.theme_color"
	keyAppPrivacyURL    = "app.privacy_url"
	keySharingSubject   = "sharing.subject"
	keySharingMessage   = "sharing.message"
	keySharingLinkURL   = "sharing.link_url"
	keyStoreAndroid     = "store.android"
	keyStoreIOS         = "store.ios"
	keyStoreWindows     = "store.windows"
	keyDebounceMs       = "pipeline.debounce_ms"
	keyThemeMode        = "theme.mode"
	keyAnalyticsOn      = "analytics.enabled"
	keyAnalyticsPersist = "analytics.persist"
	keyRulesCustom      = "rules.custom"
	keyLogLevel         = "log.level"
)

type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindBool
)

var knownKeys = map[string]valueKind{
	keyAppName:          kindString,
	keyAppThemeColor:    kindString,
	keyAppPrivacyURL:    kindString,
	keySharingSubject:   kindString,
	keySharingMessage:   kindString,
	keySharingLinkURL:   kindString,
	keyStoreAndroid:     kindString,
	keyStoreIOS:         kindString,
	keyStoreWindows:     kindString,
	keyDebounceMs:       kindInt,
	keyThemeMode:        kindString,
	keyAnalyticsOn:      kindBool,
	keyAnalyticsPersist: kindBool,
	keyRulesCustom:      kindBool,
	keyLogLevel:         kindString,
}

var logLevels = []string{"debug", "info", "warn", "error"}

// SettingsService reads and writes settings through a ConfigStore.
type SettingsService struct {
	configStore driven.ConfigStore
	appVersion  string
}

// NewSettingsService creates a new settings service. appVersion is the
// build version reported in AppConfig.
func NewSettingsService(configStore driven.ConfigStore, appVersion string) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		appVersion:  appVersion,
	}
}

// Get retrieves current settings. Invalid stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	debounce := defaults.Pipeline.DebounceInterval
	if ms := s.configStore.GetInt(keyDebounceMs); ms > 0 {
		debounce = time.Duration(ms) * time.Millisecond
	}

	return &domain.Settings{
		Pipeline: domain.PipelineSettings{
			DebounceInterval: debounce,
		},
		Analytics: domain.AnalyticsSettings{
			Enabled: s.getBool(keyAnalyticsOn, defaults.Analytics.Enabled),
			Persist: s.getBool(keyAnalyticsPersist, defaults.Analytics.Persist),
		},
		Rules: domain.RulesSettings{
			Custom: s.getBool(keyRulesCustom, defaults.Rules.Custom),
		},
		Theme:    s.getThemeMode(defaults.Theme),
		LogLevel: s.getLogLevel(defaults.LogLevel),
	}, nil
}

// Save persists settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if !settings.Theme.IsValid() {
		return fmt.Errorf("%w: theme mode %q", domain.ErrInvalidInput, settings.Theme)
	}

	if err := s.configStore.Set(keyDebounceMs, int(settings.Pipeline.DebounceInterval.Milliseconds())); err != nil {
		return fmt.Errorf("save debounce interval: %w", err)
	}
	if err := s.configStore.Set(keyAnalyticsOn, settings.Analytics.Enabled); err != nil {
		return fmt.Errorf("save analytics enabled: %w", err)
	}
	if err := s.configStore.Set(keyAnalyticsPersist, settings.Analytics.Persist); err != nil {
		return fmt.Errorf("save analytics persist: %w", err)
	}
	if err := s.configStore.Set(keyRulesCustom, settings.Rules.Custom); err != nil {
		return fmt.Errorf("save custom rules: %w", err)
	}
	if err := s.configStore.Set(keyThemeMode, settings.Theme.String()); err != nil {
		return fmt.Errorf("save theme mode: %w", err)
	}
	if settings.LogLevel != "" {
		if err := s.configStore.Set(keyLogLevel, settings.LogLevel); err != nil {
			return fmt.Errorf("save log level: %w", err)
		}
	}

	return nil
}

// AppConfig returns the built-in metadata with configured overrides.
func (s *SettingsService) AppConfig() domain.AppConfig {
	cfg := domain.DefaultAppConfig()
	if s.appVersion != "" {
		cfg.AppVersion = s.appVersion
	}

	cfg.AppName = s.getString(keyAppName, cfg.AppName)
	cfg.AppThemeColor = s.getString(keyAppThemeColor, cfg.AppThemeColor)
	cfg.PrivacyURL = s.getString(keyAppPrivacyURL, cfg.PrivacyURL)

	cfg.SocialSharing.Subject = s.getString(keySharingSubject, cfg.SocialSharing.Subject)
	cfg.SocialSharing.Message = s.getString(keySharingMessage, cfg.SocialSharing.Message)
	cfg.SocialSharing.LinkURL = s.getString(keySharingLinkURL, cfg.SocialSharing.LinkURL)

	cfg.StoreAppURLInfo.Android = s.getString(keyStoreAndroid, cfg.StoreAppURLInfo.Android)
	cfg.StoreAppURLInfo.IOS = s.getString(keyStoreIOS, cfg.StoreAppURLInfo.IOS)
	cfg.StoreAppURLInfo.Windows = s.getString(keyStoreWindows, cfg.StoreAppURLInfo.Windows)

	return cfg
}

// SetValue parses and stores a single known key.
func (s *SettingsService) SetValue(key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	kind, ok := knownKeys[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	var v any
	switch kind {
	case kindInt:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		v = n
	case kindBool:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		v = b
	default:
		v = value
	}

	switch key {
	case keyThemeMode:
		if !domain.ThemeMode(value).IsValid() {
			return fmt.Errorf("%w: theme mode must be one of auto, dark, light", domain.ErrInvalidInput)
		}
	case keyLogLevel:
		if !isLogLevel(value) {
			return fmt.Errorf("%w: log level must be one of %s", domain.ErrInvalidInput, strings.Join(logLevels, ", "))
		}
	}

	return s.configStore.Set(key, v)
}

// Values returns every stored key with its value.
func (s *SettingsService) Values() []driving.KeyValue {
	keys := s.configStore.Keys()
	out := make([]driving.KeyValue, 0, len(keys))
	for _, k := range keys {
		v, _ := s.configStore.Get(k)
		out = append(out, driving.KeyValue{Key: k, Value: v})
	}
	return out
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getThemeMode(defaultVal domain.ThemeMode) domain.ThemeMode {
	mode := domain.ThemeMode(s.configStore.GetString(keyThemeMode))
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}

func (s *SettingsService) getLogLevel(defaultVal string) string {
	val := s.configStore.GetString(keyLogLevel)
	if !isLogLevel(val) {
		return defaultVal
	}
	return val
}

func isLogLevel(s string) bool {
	for _, l := range logLevels {
		if s == l {
			return true
		}
	}
	return false
}

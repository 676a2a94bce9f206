package driving

import "github.com/myanmartools/zuc-cli/internal/core/domain"

// SettingsService manages user-configurable settings and app metadata.
type SettingsService interface {
	// Get returns the current settings, falling back to defaults for
	// missing or invalid values.
	Get() (*domain.Settings, error)

	// Save persists settings.
	Save(settings *domain.Settings) error

	// AppConfig returns application metadata with configured overrides.
	AppConfig() domain.AppConfig

	// SetValue validates and stores a single key.
	SetValue(key, value string) error

	// Values returns every stored key with its value, sorted by key.
	Values() []KeyValue

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}

// KeyValue is a single configuration entry.
type KeyValue struct {
	Key   string
	Value any
}

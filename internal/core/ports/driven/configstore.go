package driven

// ConfigStore is flat, dot-keyed application configuration ("pipeline.debounce_ms").
// Implementations handle persistence (TOML file, memory) and type coercion.
type ConfigStore interface {
	// Get returns the raw value and whether the key exists.
	Get(key string) (any, bool)

	// GetString returns "" if the key is absent or not a string.
	GetString(key string) string

	// GetInt returns 0 if the key is absent or not numeric.
	GetInt(key string) int

	// GetBool returns false if the key is absent or not a boolean.
	GetBool(key string) bool

	// Keys returns all keys in sorted order.
	Keys() []string

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Save persists the current configuration.
	Save() error

	// Load re-reads configuration from storage, replacing in-memory values.
	Load() error

	// Path returns the backing file path, or "" for non-file stores.
	Path() string
}

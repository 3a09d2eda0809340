package driven

// ConfigStore is the persisted settings map behind config.toml.
// Keys are dotted paths into TOML tables, e.g. "router.life_bucket".
// Typed getters return the zero value for a missing key or a value of
// the wrong kind; numeric getters accept any TOML number.
type ConfigStore interface {
	// Get reports the raw value stored under key.
	Get(key string) (any, bool)

	GetString(key string) string
	GetInt(key string) int
	GetFloat(key string) float64
	GetBool(key string) bool
	GetStringSlice(key string) []string

	// Set stores value under key and writes the file.
	Set(key string, value any) error

	// Save writes the current map to disk.
	Save() error

	// Load replaces the in-memory map with the file contents. A missing
	// file leaves the map empty.
	Load() error

	// Path is the location of config.toml.
	Path() string
}

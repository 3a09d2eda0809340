package driving

import "github.com/custodia-labs/lifeos-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the current settings, defaults filled in.
	Get() (*domain.Settings, error)

	// Set validates and persists one setting by key.
	Set(key, value string) error

	// Keys lists the settable keys in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}

package driving

import "github.com/custodia-labs/bloodbank-cli/internal/core/domain"

// SettingsService exposes the effective application settings.
type SettingsService interface {
	// Get returns current settings with defaults applied.
	Get() (*domain.AppSettings, error)

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}

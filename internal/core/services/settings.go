package services

import (
	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
	"github.com/custodia-labs/bloodbank-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bloodbank-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyShellTitle     = "shell.title"
	keySeparatorWidth = "shell.separator_width"
	keyVerbose        = "logging.verbose"
)

// SettingsService reads application settings from a config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns current settings. Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := s.GetDefaults()
	if s.configStore == nil {
		return &defaults, nil
	}

	settings := &domain.AppSettings{
		Shell: domain.ShellSettings{
			Title:          s.configStore.GetString(keyShellTitle),
			SeparatorWidth: s.configStore.GetInt(keySeparatorWidth),
		}.WithDefaults(),
		Logging: domain.LoggingSettings{
			Verbose: s.configStore.GetBool(keyVerbose),
		},
	}
	return settings, nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

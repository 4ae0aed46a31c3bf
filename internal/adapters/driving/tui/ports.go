// Package tui provides an interactive terminal user interface for the blood bank.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/bloodbank-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Registry adds and lists donors and patients.
	Registry driving.RegistryService

	// Query answers availability and compatibility queries.
	Query driving.QueryService

	// Settings supplies the title shown in the header. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(registry driving.RegistryService, query driving.QueryService) *Ports {
	return &Ports{
		Registry: registry,
		Query:    query,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Registry == nil {
		return ErrMissingRegistryService
	}
	if p.Query == nil {
		return ErrMissingQueryService
	}
	return nil
}

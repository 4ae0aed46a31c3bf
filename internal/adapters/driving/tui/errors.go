package tui

import "errors"

// ErrMissingRegistryService is returned when the registry service is not provided.
var ErrMissingRegistryService = errors.New("tui: registry service is required")

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("tui: query service is required")

// ErrInvalidPorts is returned when no ports are supplied at all.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")

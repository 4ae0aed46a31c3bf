// Package file provides file-based implementations of driven port interfaces.
//
// Adapters:
//   - ConfigStore: read-only TOML configuration
//
// Donor and patient records are never written to disk.
package file

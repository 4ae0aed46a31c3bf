// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - RecordStore: Donor and patient storage for the session
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - services skip them silently:
//
//   - MetricsRecorder: Session counters for additions, rejections and queries
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

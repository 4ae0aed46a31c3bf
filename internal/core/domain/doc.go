// Package domain defines the core business entities for the blood bank.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - BloodGroup: One of the eight ABO/Rh groups
//   - Donor: A registered blood donor (aged 18 to 65)
//   - Patient: A registered recipient
//   - CompatibilityRow: Donor availability for one compatible group
//
// It also holds the validation predicates and the static compatibility
// table, which are pure functions over these types.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

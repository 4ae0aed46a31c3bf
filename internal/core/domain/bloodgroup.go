package domain

import "strings"

// BloodGroup identifies an ABO group combined with its Rh factor.
type BloodGroup string

// Canonical blood groups.
const (
	BloodGroupAPos  BloodGroup = "A+"
	BloodGroupANeg  BloodGroup = "A-"
	BloodGroupBPos  BloodGroup = "B+"
	BloodGroupBNeg  BloodGroup = "B-"
	BloodGroupABPos BloodGroup = "AB+"
	BloodGroupABNeg BloodGroup = "AB-"
	BloodGroupOPos  BloodGroup = "O+"
	BloodGroupONeg  BloodGroup = "O-"
)

// AllBloodGroups returns the eight groups in canonical enumeration order.
func AllBloodGroups() []BloodGroup {
	return []BloodGroup{
		BloodGroupAPos,
		BloodGroupANeg,
		BloodGroupBPos,
		BloodGroupBNeg,
		BloodGroupABPos,
		BloodGroupABNeg,
		BloodGroupOPos,
		BloodGroupONeg,
	}
}

// BloodGroupList returns the canonical groups joined for display,
// e.g. "A+, A-, B+, B-, AB+, AB-, O+, O-".
func BloodGroupList() string {
	groups := AllBloodGroups()
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.String()
	}
	return strings.Join(names, ", ")
}

// NormaliseBloodGroup trims surrounding whitespace and uppercases the input.
// Validation and storage always operate on the normalised form.
func NormaliseBloodGroup(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// IsValidBloodGroup returns true if the normalised input is one of the
// eight canonical groups.
func IsValidBloodGroup(s string) bool {
	return BloodGroup(NormaliseBloodGroup(s)).IsValid()
}

// ParseBloodGroup normalises s and returns the matching group.
// Returns ErrInvalidBloodGroup if no group matches.
func ParseBloodGroup(s string) (BloodGroup, error) {
	g := BloodGroup(NormaliseBloodGroup(s))
	if !g.IsValid() {
		return "", ErrInvalidBloodGroup
	}
	return g, nil
}

// IsValid returns true if the group is one of the canonical values.
// The comparison is exact; callers normalise first.
func (g BloodGroup) IsValid() bool {
	switch g {
	case BloodGroupAPos, BloodGroupANeg,
		BloodGroupBPos, BloodGroupBNeg,
		BloodGroupABPos, BloodGroupABNeg,
		BloodGroupOPos, BloodGroupONeg:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (g BloodGroup) String() string {
	return string(g)
}

// Package format renders domain values and errors as the text shown to users.
// The shell and TUI share it so both front ends print identical messages.
package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
)

// Fixed user-facing messages.
const (
	NoDonors          = "No donors available."
	NoPatients        = "No patients available."
	DonorsHeader      = "List of Donors:"
	PatientsHeader    = "List of Patients:"
	MalformedAge      = "Invalid age! Please enter a whole number."
	InvalidMenuChoice = "Invalid choice! Please try again."
	Exiting           = "Exiting..."
)

// ErrorMessage returns the message shown to the user for err.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidBloodGroup):
		return "Invalid blood group! Must be one of: " + domain.BloodGroupList()
	case errors.Is(err, domain.ErrInvalidAge):
		return fmt.Sprintf("Invalid age! Donors must be between %d and %d years old.",
			domain.MinDonorAge, domain.MaxDonorAge)
	case errors.Is(err, domain.ErrInvalidMenuChoice):
		return InvalidMenuChoice
	case errors.Is(err, domain.ErrInvalidInput):
		return MalformedAge
	default:
		return "Error: " + err.Error()
	}
}

// ValidGroupsHint lists the accepted blood groups.
func ValidGroupsHint() string {
	return "Valid Blood Groups: " + domain.BloodGroupList()
}

// Separator returns a line of width dashes.
func Separator(width int) string {
	if width < 0 {
		width = 0
	}
	return strings.Repeat("-", width)
}

// DonorLine renders one donor row.
func DonorLine(d *domain.Donor) string {
	return recordLine(d.Name, d.BloodGroup, d.Age, d.Address)
}

// PatientLine renders one patient row.
func PatientLine(p *domain.Patient) string {
	return recordLine(p.Name, p.BloodGroup, p.Age, p.Address)
}

func recordLine(name string, group domain.BloodGroup, age int, address string) string {
	return fmt.Sprintf("Name: %s, Blood Group: %s, Age: %d, Address: %s", name, group, age, address)
}

// Availability renders the answer to an availability query.
func Availability(group string, count int) string {
	return fmt.Sprintf("Blood Group %s is available with %d donors.", group, count)
}

// CompatibilityHeader introduces a compatibility report.
func CompatibilityHeader(recipient string) string {
	return fmt.Sprintf("Compatible blood groups for %s:", recipient)
}

// CompatibilityRow renders one report row.
func CompatibilityRow(row domain.CompatibilityRow) string {
	return fmt.Sprintf("Blood Group %s: %d donors available", row.Group, row.Count)
}

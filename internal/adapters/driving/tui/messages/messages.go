// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewAddDonor is the donor entry form.
	ViewAddDonor
	// ViewAddPatient is the patient entry form.
	ViewAddPatient
	// ViewDonors lists donors.
	ViewDonors
	// ViewPatients lists patients.
	ViewPatients
	// ViewAvailability counts donors of one blood group.
	ViewAvailability
	// ViewCompatibility lists compatible donor groups for a recipient.
	ViewCompatibility
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewAddDonor:
		return "add_donor"
	case ViewAddPatient:
		return "add_patient"
	case ViewDonors:
		return "donors"
	case ViewPatients:
		return "patients"
	case ViewAvailability:
		return "availability"
	case ViewCompatibility:
		return "compatibility"
	default:
		return "unknown"
	}
}

// RecordAdded carries the outcome of adding a donor or patient.
type RecordAdded struct {
	Kind   domain.RecordKind
	Result *domain.Result
	Err    error
}

// DonorsLoaded carries the donor list from the service.
type DonorsLoaded struct {
	Donors []domain.Donor
	Err    error
}

// PatientsLoaded carries the patient list from the service.
type PatientsLoaded struct {
	Patients []domain.Patient
	Err      error
}

// AvailabilityChecked carries the donor count for one blood group.
type AvailabilityChecked struct {
	Group string
	Count int
	Err   error
}

// CompatibilityChecked carries a compatibility report.
type CompatibilityChecked struct {
	Recipient string
	Rows      []domain.CompatibilityRow
	Err       error
}

// Quit signals the application should exit.
type Quit struct{}

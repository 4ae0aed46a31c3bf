package domain

import "time"

// Donor age limits, both inclusive.
const (
	MinDonorAge = 18
	MaxDonorAge = 65
)

// IsValidDonorAge returns true if age lies within [MinDonorAge, MaxDonorAge].
func IsValidDonorAge(age int) bool {
	return age >= MinDonorAge && age <= MaxDonorAge
}

// RecordKind distinguishes donors from patients in logs and metrics.
type RecordKind string

const (
	// RecordKindDonor labels donor records.
	RecordKindDonor RecordKind = "donor"
	// RecordKindPatient labels patient records.
	RecordKindPatient RecordKind = "patient"
)

// String returns the string representation.
func (k RecordKind) String() string {
	return string(k)
}

// Donor represents a registered blood donor.
// Donors are never edited or removed once registered.
type Donor struct {
	// ID is the unique identifier for the donor.
	ID string

	// Name is the donor's full name. Embedded spaces are allowed.
	Name string

	// BloodGroup is the donor's normalised blood group.
	BloodGroup BloodGroup

	// Age is the donor's age in years.
	Age int

	// Address is the donor's postal address.
	Address string

	// CreatedAt is when the donor was registered.
	CreatedAt time.Time
}

// Validate checks the donor invariants.
// The blood group is checked before the age.
func (d *Donor) Validate() error {
	if !d.BloodGroup.IsValid() {
		return ErrInvalidBloodGroup
	}
	if !IsValidDonorAge(d.Age) {
		return ErrInvalidAge
	}
	return nil
}

// Patient represents a registered recipient.
// Patients have no age restriction.
type Patient struct {
	// ID is the unique identifier for the patient.
	ID string

	// Name is the patient's full name. Embedded spaces are allowed.
	Name string

	// BloodGroup is the patient's normalised blood group.
	BloodGroup BloodGroup

	// Age is the patient's age in years.
	Age int

	// Address is the patient's postal address.
	Address string

	// CreatedAt is when the patient was registered.
	CreatedAt time.Time
}

// Validate checks the patient invariants.
func (p *Patient) Validate() error {
	if !p.BloodGroup.IsValid() {
		return ErrInvalidBloodGroup
	}
	return nil
}

// Result is the outcome of a successful registration.
type Result struct {
	// ID is the identifier assigned to the new record.
	ID string

	// Message is a confirmation suitable for display; it contains the name.
	Message string
}

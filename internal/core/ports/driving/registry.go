package driving

import (
	"context"

	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
)

// RegistryService registers and lists donors and patients.
type RegistryService interface {
	// AddDonor validates and registers a donor.
	// The blood group is normalised before validation.
	// Returns domain.ErrInvalidBloodGroup or domain.ErrInvalidAge on rejection.
	AddDonor(ctx context.Context, name, bloodGroup string, age int, address string) (*domain.Result, error)

	// AddPatient validates and registers a patient. There is no age check.
	// Returns domain.ErrInvalidBloodGroup on rejection.
	AddPatient(ctx context.Context, name, bloodGroup string, age int, address string) (*domain.Result, error)

	// CheckBloodGroup normalises and validates a blood group entered for a
	// record of the given kind before the rest of the record is collected.
	// A rejection is counted the same way as a refused registration.
	// Returns domain.ErrInvalidBloodGroup on rejection.
	CheckBloodGroup(kind domain.RecordKind, bloodGroup string) (domain.BloodGroup, error)

	// ListDonors returns all donors in registration order.
	ListDonors(ctx context.Context) ([]domain.Donor, error)

	// ListPatients returns all patients in registration order.
	ListPatients(ctx context.Context) ([]domain.Patient, error)
}

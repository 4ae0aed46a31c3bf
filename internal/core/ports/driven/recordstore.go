package driven

import (
	"context"

	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
)

// RecordStore holds donor and patient records for the lifetime of a session.
// Records are only ever appended; list operations return them in insertion order.
type RecordStore interface {
	// AppendDonor adds a donor after any existing donors.
	AppendDonor(ctx context.Context, donor domain.Donor) error

	// AppendPatient adds a patient after any existing patients.
	AppendPatient(ctx context.Context, patient domain.Patient) error

	// ListDonors returns all donors in insertion order.
	// An empty store returns an empty slice, not an error.
	ListDonors(ctx context.Context) ([]domain.Donor, error)

	// ListPatients returns all patients in insertion order.
	ListPatients(ctx context.Context) ([]domain.Patient, error)
}

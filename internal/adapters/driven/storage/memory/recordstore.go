package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
	"github.com/custodia-labs/bloodbank-cli/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.RecordStore = (*RecordStore)(nil)

// RecordStore is an in-memory implementation of driven.RecordStore.
// Slices preserve insertion order.
type RecordStore struct {
	mu       sync.RWMutex
	donors   []domain.Donor
	patients []domain.Patient
}

// NewRecordStore creates a new empty record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		donors:   make([]domain.Donor, 0),
		patients: make([]domain.Patient, 0),
	}
}

// AppendDonor adds a donor after any existing donors.
func (s *RecordStore) AppendDonor(_ context.Context, donor domain.Donor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.donors = append(s.donors, donor)
	return nil
}

// AppendPatient adds a patient after any existing patients.
func (s *RecordStore) AppendPatient(_ context.Context, patient domain.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patients = append(s.patients, patient)
	return nil
}

// ListDonors returns a copy of all donors in insertion order.
func (s *RecordStore) ListDonors(_ context.Context) ([]domain.Donor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Donor, len(s.donors))
	copy(result, s.donors)
	return result, nil
}

// ListPatients returns a copy of all patients in insertion order.
func (s *RecordStore) ListPatients(_ context.Context) ([]domain.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Patient, len(s.patients))
	copy(result, s.patients)
	return result, nil
}

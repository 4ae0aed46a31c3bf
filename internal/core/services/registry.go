package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
	"github.com/custodia-labs/bloodbank-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bloodbank-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bloodbank-cli/internal/logger"
)

// Ensure RegistryService implements the interface.
var _ driving.RegistryService = (*RegistryService)(nil)

// RegistryService validates and registers donors and patients.
type RegistryService struct {
	store   driven.RecordStore
	metrics driven.MetricsRecorder
	now     func() time.Time
}

// NewRegistryService creates a new registry service.
func NewRegistryService(store driven.RecordStore) *RegistryService {
	return &RegistryService{
		store: store,
		now:   time.Now,
	}
}

// SetMetrics sets the optional metrics recorder.
func (s *RegistryService) SetMetrics(metrics driven.MetricsRecorder) {
	s.metrics = metrics
}

// AddDonor validates and registers a donor.
func (s *RegistryService) AddDonor(
	ctx context.Context, name, bloodGroup string, age int, address string,
) (*domain.Result, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}

	donor := domain.Donor{
		ID:         uuid.NewString(),
		Name:       name,
		BloodGroup: domain.BloodGroup(domain.NormaliseBloodGroup(bloodGroup)),
		Age:        age,
		Address:    address,
		CreatedAt:  s.now(),
	}
	if err := donor.Validate(); err != nil {
		s.rejected(domain.RecordKindDonor, err)
		logger.Debug("donor %q rejected: %v (group=%q age=%d)", name, err, bloodGroup, age)
		return nil, err
	}

	if err := s.store.AppendDonor(ctx, donor); err != nil {
		return nil, fmt.Errorf("store donor: %w", err)
	}
	s.added(domain.RecordKindDonor)
	logger.Debug("donor %q registered as %s (id=%s)", donor.Name, donor.BloodGroup, donor.ID)

	return &domain.Result{
		ID:      donor.ID,
		Message: fmt.Sprintf("Donor '%s' added successfully.", donor.Name),
	}, nil
}

// AddPatient validates and registers a patient. Patients have no age check.
func (s *RegistryService) AddPatient(
	ctx context.Context, name, bloodGroup string, age int, address string,
) (*domain.Result, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}

	patient := domain.Patient{
		ID:         uuid.NewString(),
		Name:       name,
		BloodGroup: domain.BloodGroup(domain.NormaliseBloodGroup(bloodGroup)),
		Age:        age,
		Address:    address,
		CreatedAt:  s.now(),
	}
	if err := patient.Validate(); err != nil {
		s.rejected(domain.RecordKindPatient, err)
		logger.Debug("patient %q rejected: %v (group=%q)", name, err, bloodGroup)
		return nil, err
	}

	if err := s.store.AppendPatient(ctx, patient); err != nil {
		return nil, fmt.Errorf("store patient: %w", err)
	}
	s.added(domain.RecordKindPatient)
	logger.Debug("patient %q registered as %s (id=%s)", patient.Name, patient.BloodGroup, patient.ID)

	return &domain.Result{
		ID:      patient.ID,
		Message: fmt.Sprintf("Patient '%s' added successfully.", patient.Name),
	}, nil
}

// CheckBloodGroup validates a blood group ahead of a registration.
func (s *RegistryService) CheckBloodGroup(kind domain.RecordKind, bloodGroup string) (domain.BloodGroup, error) {
	group, err := domain.ParseBloodGroup(bloodGroup)
	if err != nil {
		s.rejected(kind, err)
		logger.Debug("%s blood group %q rejected", kind, bloodGroup)
		return "", err
	}
	return group, nil
}

// ListDonors returns all donors in registration order.
func (s *RegistryService) ListDonors(ctx context.Context) ([]domain.Donor, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	donors, err := s.store.ListDonors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	return donors, nil
}

// ListPatients returns all patients in registration order.
func (s *RegistryService) ListPatients(ctx context.Context) ([]domain.Patient, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	patients, err := s.store.ListPatients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

func (s *RegistryService) added(kind domain.RecordKind) {
	if s.metrics != nil {
		s.metrics.RecordAdded(kind)
	}
}

func (s *RegistryService) rejected(kind domain.RecordKind, err error) {
	if s.metrics != nil {
		s.metrics.RecordRejected(kind, err)
	}
}

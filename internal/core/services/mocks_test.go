package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
)

var errStoreDown = errors.New("store down")

// failingStore returns errStoreDown from every operation.
type failingStore struct{}

func (failingStore) AppendDonor(context.Context, domain.Donor) error     { return errStoreDown }
func (failingStore) AppendPatient(context.Context, domain.Patient) error { return errStoreDown }
func (failingStore) ListDonors(context.Context) ([]domain.Donor, error)  { return nil, errStoreDown }
func (failingStore) ListPatients(context.Context) ([]domain.Patient, error) {
	return nil, errStoreDown
}

// recordingMetrics captures calls made to the MetricsRecorder port.
type recordingMetrics struct {
	added    []domain.RecordKind
	rejected []error
	queries  []string
}

func (m *recordingMetrics) RecordAdded(kind domain.RecordKind) {
	m.added = append(m.added, kind)
}

func (m *recordingMetrics) RecordRejected(_ domain.RecordKind, reason error) {
	m.rejected = append(m.rejected, reason)
}

func (m *recordingMetrics) QueryServed(query string) {
	m.queries = append(m.queries, query)
}

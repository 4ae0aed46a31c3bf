package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
	"github.com/custodia-labs/bloodbank-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bloodbank-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bloodbank-cli/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// QueryService answers availability and compatibility queries.
type QueryService struct {
	store   driven.RecordStore
	metrics driven.MetricsRecorder
}

// NewQueryService creates a new query service over the given store.
func NewQueryService(store driven.RecordStore) *QueryService {
	return &QueryService{store: store}
}

// SetMetrics sets the optional metrics recorder.
func (s *QueryService) SetMetrics(metrics driven.MetricsRecorder) {
	s.metrics = metrics
}

// CountByGroup returns the number of donors whose group equals bloodGroup.
func (s *QueryService) CountByGroup(ctx context.Context, bloodGroup string) (int, error) {
	if s.store == nil {
		return 0, domain.ErrNotImplemented
	}
	group, err := domain.ParseBloodGroup(bloodGroup)
	if err != nil {
		return 0, err
	}

	counts, err := s.countDonors(ctx)
	if err != nil {
		return 0, err
	}
	s.served(driven.QueryAvailability)
	logger.Debug("availability %s: %d donors", group, counts[group])
	return counts[group], nil
}

// CompatibilityReport returns donor counts for every group the recipient can
// receive from, in compatibility table order. Zero counts are included.
func (s *QueryService) CompatibilityReport(ctx context.Context, recipient string) ([]domain.CompatibilityRow, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	group, err := domain.ParseBloodGroup(recipient)
	if err != nil {
		return nil, err
	}
	compatible, err := domain.CompatibleDonorGroups(group)
	if err != nil {
		return nil, err
	}

	counts, err := s.countDonors(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.CompatibilityRow, 0, len(compatible))
	for _, g := range compatible {
		rows = append(rows, domain.CompatibilityRow{Group: g, Count: counts[g]})
	}
	s.served(driven.QueryCompatibility)
	logger.Debug("compatibility %s: %d donor groups", group, len(rows))
	return rows, nil
}

// countDonors tallies donors per blood group in a single pass.
func (s *QueryService) countDonors(ctx context.Context) (map[domain.BloodGroup]int, error) {
	donors, err := s.store.ListDonors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	counts := make(map[domain.BloodGroup]int, len(domain.AllBloodGroups()))
	for i := range donors {
		counts[donors[i].BloodGroup]++
	}
	return counts, nil
}

func (s *QueryService) served(query string) {
	if s.metrics != nil {
		s.metrics.QueryServed(query)
	}
}

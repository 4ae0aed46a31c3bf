package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
	"github.com/custodia-labs/bloodbank-cli/internal/core/ports/driven"
)

func TestNew(t *testing.T) {
	m := New()

	require.NotNil(t, m)
	assert.NotNil(t, m.registry)
	assert.NotNil(t, m.RecordsAdded)
	assert.NotNil(t, m.RecordsRejected)
	assert.NotNil(t, m.Queries)
}

func TestNew_IndependentRegistries(t *testing.T) {
	a := New()
	b := New()

	a.RecordAdded(domain.RecordKindDonor)

	assert.Equal(t, float64(1), testutil.ToFloat64(a.RecordsAdded.WithLabelValues("donor")))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.RecordsAdded.WithLabelValues("donor")))
}

func TestMetrics_RecordAdded(t *testing.T) {
	m := New()

	m.RecordAdded(domain.RecordKindDonor)
	m.RecordAdded(domain.RecordKindDonor)
	m.RecordAdded(domain.RecordKindPatient)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.RecordsAdded.WithLabelValues("donor")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RecordsAdded.WithLabelValues("patient")))
}

func TestMetrics_RecordRejected_Reasons(t *testing.T) {
	m := New()

	m.RecordRejected(domain.RecordKindDonor, domain.ErrInvalidAge)
	m.RecordRejected(domain.RecordKindDonor, fmt.Errorf("wrapped: %w", domain.ErrInvalidBloodGroup))
	m.RecordRejected(domain.RecordKindPatient, domain.ErrInvalidBloodGroup)
	m.RecordRejected(domain.RecordKindPatient, errors.New("boom"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.RecordsRejected.WithLabelValues("donor", "age")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RecordsRejected.WithLabelValues("donor", "blood_group")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RecordsRejected.WithLabelValues("patient", "blood_group")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RecordsRejected.WithLabelValues("patient", "other")))
}

func TestMetrics_QueryServed(t *testing.T) {
	m := New()

	m.QueryServed(driven.QueryAvailability)
	m.QueryServed(driven.QueryCompatibility)
	m.QueryServed(driven.QueryCompatibility)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.Queries.WithLabelValues("availability")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.Queries.WithLabelValues("compatibility")))
}

func TestMetrics_Summary_Empty(t *testing.T) {
	m := New()

	lines, err := m.Summary()

	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestMetrics_Summary(t *testing.T) {
	m := New()
	m.RecordAdded(domain.RecordKindDonor)
	m.RecordAdded(domain.RecordKindDonor)
	m.RecordRejected(domain.RecordKindDonor, domain.ErrInvalidAge)
	m.QueryServed(driven.QueryAvailability)

	lines, err := m.Summary()

	require.NoError(t, err)
	assert.Equal(t, []string{
		`bloodbank_queries_total{query="availability"} 1`,
		`bloodbank_records_added_total{kind="donor"} 2`,
		`bloodbank_records_rejected_total{kind="donor",reason="age"} 1`,
	}, lines)
}

// Package metrics records session counters in a private Prometheus registry.
// Nothing is exported over the network; the counters are summarised in the
// verbose log when the session ends.
package metrics

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
	"github.com/custodia-labs/bloodbank-cli/internal/core/ports/driven"
)

// Ensure Metrics implements the interface.
var _ driven.MetricsRecorder = (*Metrics)(nil)

// Rejection reasons used as label values.
const (
	reasonBloodGroup = "blood_group"
	reasonAge        = "age"
	reasonOther      = "other"
)

// Metrics tracks registrations, rejections and queries for one session.
type Metrics struct {
	registry *prometheus.Registry

	RecordsAdded    *prometheus.CounterVec
	RecordsRejected *prometheus.CounterVec
	Queries         *prometheus.CounterVec
}

// New creates a Metrics instance backed by its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RecordsAdded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodbank_records_added_total",
			Help: "Total number of donors and patients registered",
		}, []string{"kind"}),
		RecordsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodbank_records_rejected_total",
			Help: "Total number of registrations refused by validation",
		}, []string{"kind", "reason"}),
		Queries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodbank_queries_total",
			Help: "Total number of availability and compatibility queries answered",
		}, []string{"query"}),
	}
}

// RecordAdded counts a successful registration.
func (m *Metrics) RecordAdded(kind domain.RecordKind) {
	m.RecordsAdded.WithLabelValues(kind.String()).Inc()
}

// RecordRejected counts a registration refused by validation.
func (m *Metrics) RecordRejected(kind domain.RecordKind, reason error) {
	m.RecordsRejected.WithLabelValues(kind.String(), rejectionReason(reason)).Inc()
}

// QueryServed counts an answered query.
func (m *Metrics) QueryServed(query string) {
	m.Queries.WithLabelValues(query).Inc()
}

// Summary gathers all counters into sorted "name{label=value} count" lines.
// Series that were never touched do not appear.
func (m *Metrics) Summary() ([]string, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var lines []string
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			lines = append(lines, fmt.Sprintf("%s%s %g",
				family.GetName(), formatLabels(metric.GetLabel()), metric.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	return lines, nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("%s=%q", p.GetName(), p.GetValue())
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidBloodGroup):
		return reasonBloodGroup
	case errors.Is(err, domain.ErrInvalidAge):
		return reasonAge
	default:
		return reasonOther
	}
}

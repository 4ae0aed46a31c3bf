package driven

import "github.com/custodia-labs/bloodbank-cli/internal/core/domain"

// Query names reported to MetricsRecorder.
const (
	QueryAvailability  = "availability"
	QueryCompatibility = "compatibility"
)

// MetricsRecorder receives session counters from core services.
type MetricsRecorder interface {
	// RecordAdded counts a successful registration.
	RecordAdded(kind domain.RecordKind)

	// RecordRejected counts a registration refused by validation.
	// reason is the error that caused the rejection.
	RecordRejected(kind domain.RecordKind, reason error)

	// QueryServed counts a successfully answered query.
	QueryServed(query string)
}

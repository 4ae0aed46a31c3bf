package driving

import (
	"context"

	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
)

// QueryService answers availability and compatibility questions over
// the registered donors.
type QueryService interface {
	// CountByGroup returns the number of donors with exactly the given group.
	// Returns domain.ErrInvalidBloodGroup for an unknown group.
	CountByGroup(ctx context.Context, bloodGroup string) (int, error)

	// CompatibilityReport returns one row per donor group the recipient can
	// receive from, in table order, including groups with no donors.
	// Returns domain.ErrInvalidBloodGroup for an unknown group.
	CompatibilityReport(ctx context.Context, recipient string) ([]domain.CompatibilityRow, error)
}

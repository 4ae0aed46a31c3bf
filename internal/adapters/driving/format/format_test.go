package format

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Invalid blood group",
			err:      domain.ErrInvalidBloodGroup,
			expected: "Invalid blood group! Must be one of: A+, A-, B+, B-, AB+, AB-, O+, O-",
		},
		{
			name:     "Invalid age",
			err:      domain.ErrInvalidAge,
			expected: "Invalid age! Donors must be between 18 and 65 years old.",
		},
		{
			name:     "Invalid menu choice",
			err:      domain.ErrInvalidMenuChoice,
			expected: "Invalid choice! Please try again.",
		},
		{
			name:     "Malformed integer",
			err:      domain.ErrInvalidInput,
			expected: "Invalid age! Please enter a whole number.",
		},
		{
			name:     "Wrapped domain error",
			err:      fmt.Errorf("adding: %w", domain.ErrInvalidAge),
			expected: "Invalid age! Donors must be between 18 and 65 years old.",
		},
		{
			name:     "Other error",
			err:      errors.New("disk on fire"),
			expected: "Error: disk on fire",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorMessage(tt.err))
		})
	}
}

func TestSeparator(t *testing.T) {
	assert.Len(t, Separator(60), 60)
	assert.Equal(t, "---", Separator(3))
	assert.Equal(t, "", Separator(0))
	assert.Equal(t, "", Separator(-4))
}

func TestRecordLines(t *testing.T) {
	donor := &domain.Donor{Name: "Jane Doe", BloodGroup: domain.BloodGroupONeg, Age: 30, Address: "12 High St"}
	patient := &domain.Patient{Name: "John", BloodGroup: domain.BloodGroupABPos, Age: 70, Address: "Ward 4"}

	assert.Equal(t, "Name: Jane Doe, Blood Group: O-, Age: 30, Address: 12 High St", DonorLine(donor))
	assert.Equal(t, "Name: John, Blood Group: AB+, Age: 70, Address: Ward 4", PatientLine(patient))
}

func TestQueryLines(t *testing.T) {
	assert.Equal(t, "Blood Group O- is available with 2 donors.", Availability("O-", 2))
	assert.Equal(t, "Compatible blood groups for AB-:", CompatibilityHeader("AB-"))
	assert.Equal(t, "Blood Group A-: 0 donors available",
		CompatibilityRow(domain.CompatibilityRow{Group: domain.BloodGroupANeg}))
}

func TestValidGroupsHint(t *testing.T) {
	assert.Equal(t, "Valid Blood Groups: A+, A-, B+, B-, AB+, AB-, O+, O-", ValidGroupsHint())
}

package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
	"github.com/custodia-labs/bloodbank-cli/internal/core/services"
)

// newTestPorts wires real services over an in-memory store.
func newTestPorts() (*Ports, *memory.RecordStore) {
	store := memory.NewRecordStore()
	return NewPorts(services.NewRegistryService(store), services.NewQueryService(store)), store
}

// seedDonor adds a donor directly through the store.
func seedDonor(t *testing.T, store *memory.RecordStore, name string, group domain.BloodGroup) {
	t.Helper()
	require.NoError(t, store.AppendDonor(context.Background(), domain.Donor{
		ID: name, Name: name, BloodGroup: group, Age: 30, Address: "Main St",
	}))
}

func TestNewPorts(t *testing.T) {
	ports, _ := newTestPorts()

	require.NotNil(t, ports)
	assert.NotNil(t, ports.Registry)
	assert.NotNil(t, ports.Query)
	assert.Nil(t, ports.Settings)
}

func TestPorts_Validate(t *testing.T) {
	ports, _ := newTestPorts()
	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate_MissingRegistry(t *testing.T) {
	ports, _ := newTestPorts()
	ports.Registry = nil

	assert.ErrorIs(t, ports.Validate(), ErrMissingRegistryService)
}

func TestPorts_Validate_MissingQuery(t *testing.T) {
	ports, _ := newTestPorts()
	ports.Query = nil

	assert.ErrorIs(t, ports.Validate(), ErrMissingQueryService)
}

func TestPorts_Validate_Nil(t *testing.T) {
	var ports *Ports
	assert.ErrorIs(t, ports.Validate(), ErrInvalidPorts)
}

package shell

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driven/metrics"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
	"github.com/custodia-labs/bloodbank-cli/internal/core/services"
)

// session runs a shell over the given input lines and returns its output.
func session(t *testing.T, lines ...string) (string, *Shell, *services.RegistryService) {
	t.Helper()
	store := memory.NewRecordStore()
	registry := services.NewRegistryService(store)
	query := services.NewQueryService(store)

	var out bytes.Buffer
	input := strings.NewReader(strings.Join(lines, "\n") + "\n")
	sh, err := New(input, &out, registry, query, Options{})
	require.NoError(t, err)

	require.NoError(t, sh.Run(context.Background()))
	return out.String(), sh, registry
}

func TestNew_MissingServices(t *testing.T) {
	store := memory.NewRecordStore()

	_, err := New(strings.NewReader(""), &bytes.Buffer{}, nil, services.NewQueryService(store), Options{})
	assert.ErrorIs(t, err, ErrMissingRegistryService)

	_, err = New(strings.NewReader(""), &bytes.Buffer{}, services.NewRegistryService(store), nil, Options{})
	assert.ErrorIs(t, err, ErrMissingQueryService)
}

func TestShell_MenuAndExit(t *testing.T) {
	out, sh, _ := session(t, "7")

	assert.Equal(t, StateExit, sh.State())
	assert.Contains(t, out, "======= BLOOD BANK MANAGEMENT =======")
	assert.Contains(t, out, "1. Add Donor\n")
	assert.Contains(t, out, "5. Check Blood Availability\n")
	assert.Contains(t, out, "7. Exit\n")
	assert.Contains(t, out, "Enter your choice: ")
	assert.True(t, strings.HasSuffix(out, "Exiting...\n"))
}

func TestShell_CustomSettings(t *testing.T) {
	store := memory.NewRecordStore()
	var out bytes.Buffer
	sh, err := New(strings.NewReader("4\n7\n"), &out,
		services.NewRegistryService(store), services.NewQueryService(store),
		Options{Settings: domain.ShellSettings{Title: "CITY BANK", SeparatorWidth: 10}})
	require.NoError(t, err)

	require.NoError(t, sh.Run(context.Background()))

	assert.Contains(t, out.String(), "======= CITY BANK =======")
}

func TestShell_EOFExitsCleanly(t *testing.T) {
	store := memory.NewRecordStore()
	var out bytes.Buffer
	sh, err := New(strings.NewReader(""), &out,
		services.NewRegistryService(store), services.NewQueryService(store), Options{})
	require.NoError(t, err)

	err = sh.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StateExit, sh.State())
}

func TestShell_EOFMidFlowExitsCleanly(t *testing.T) {
	store := memory.NewRecordStore()
	registry := services.NewRegistryService(store)
	var out bytes.Buffer
	sh, err := New(strings.NewReader("1\nHalf Entered\n"), &out,
		registry, services.NewQueryService(store), Options{})
	require.NoError(t, err)

	require.NoError(t, sh.Run(context.Background()))

	donors, err := registry.ListDonors(context.Background())
	require.NoError(t, err)
	assert.Empty(t, donors)
}

func TestShell_FinalLineWithoutNewline(t *testing.T) {
	store := memory.NewRecordStore()
	var out bytes.Buffer
	sh, err := New(strings.NewReader("7"), &out,
		services.NewRegistryService(store), services.NewQueryService(store), Options{})
	require.NoError(t, err)

	require.NoError(t, sh.Run(context.Background()))
	assert.Contains(t, out.String(), "Exiting...")
}

func TestShell_InvalidMenuChoiceStaysInMenu(t *testing.T) {
	out, sh, _ := session(t, "9", "abc", "7")

	assert.Equal(t, 2, strings.Count(out, "Invalid choice! Please try again."))
	assert.Equal(t, 3, strings.Count(out, "Enter your choice: "))
	assert.Equal(t, StateExit, sh.State())
}

func TestShell_AddDonor(t *testing.T) {
	out, _, registry := session(t,
		"1", "Jane Mary Doe", "o-", "30", "12 High Street, Springfield",
		"7")

	assert.Contains(t, out, "Enter Donor Name: ")
	assert.Contains(t, out, "Valid Blood Groups: A+, A-, B+, B-, AB+, AB-, O+, O-")
	assert.Contains(t, out, "Donor 'Jane Mary Doe' added successfully.")

	donors, err := registry.ListDonors(context.Background())
	require.NoError(t, err)
	require.Len(t, donors, 1)
	assert.Equal(t, "Jane Mary Doe", donors[0].Name)
	assert.Equal(t, domain.BloodGroupONeg, donors[0].BloodGroup)
	assert.Equal(t, "12 High Street, Springfield", donors[0].Address)
}

func TestShell_AddDonor_InvalidBloodGroupRejectedEarly(t *testing.T) {
	out, _, registry := session(t, "1", "Jane", "X+", "7")

	assert.Contains(t, out, "Invalid blood group! Must be one of: A+, A-, B+, B-, AB+, AB-, O+, O-")
	assert.NotContains(t, out, "Enter Age: ")

	donors, err := registry.ListDonors(context.Background())
	require.NoError(t, err)
	assert.Empty(t, donors)
}

func TestShell_AddDonor_AgeOutOfRange(t *testing.T) {
	for _, age := range []string{"17", "66"} {
		t.Run(age, func(t *testing.T) {
			out, _, registry := session(t, "1", "Young", "A+", age, "Somewhere", "7")

			assert.Contains(t, out, "Invalid age! Donors must be between 18 and 65 years old.")
			donors, err := registry.ListDonors(context.Background())
			require.NoError(t, err)
			assert.Empty(t, donors)
		})
	}
}

func TestShell_AddDonor_MalformedAgeReprompts(t *testing.T) {
	out, _, registry := session(t, "1", "Sam", "B+", "thirty", "", "45", "Flat 2", "7")

	assert.Equal(t, 2, strings.Count(out, "Invalid age! Please enter a whole number."))
	assert.Equal(t, 3, strings.Count(out, "Enter Age: "))
	assert.Contains(t, out, "Donor 'Sam' added successfully.")

	donors, err := registry.ListDonors(context.Background())
	require.NoError(t, err)
	require.Len(t, donors, 1)
	assert.Equal(t, 45, donors[0].Age)
}

func TestShell_AddPatient_NoAgeLimit(t *testing.T) {
	out, _, registry := session(t, "2", "Old Timer", "ab+", "90", "Ward 7", "7")

	assert.Contains(t, out, "Enter Patient Name: ")
	assert.Contains(t, out, "Patient 'Old Timer' added successfully.")

	patients, err := registry.ListPatients(context.Background())
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, domain.BloodGroupABPos, patients[0].BloodGroup)
}

func TestShell_AddPatient_InvalidBloodGroup(t *testing.T) {
	out, _, _ := session(t, "2", "Pat", "AB", "7")

	assert.Contains(t, out, "Invalid blood group!")
	assert.NotContains(t, out, "added successfully")
}

func TestShell_RejectionsAreCounted(t *testing.T) {
	store := memory.NewRecordStore()
	registry := services.NewRegistryService(store)
	m := metrics.New()
	registry.SetMetrics(m)

	input := strings.NewReader(strings.Join([]string{
		"1", "Bob", "ZZ",
		"1", "Al", "O-", "17", "Addr",
		"2", "P", "xx",
		"1", "Eve", "a+", "30", "Lane 4",
		"7",
	}, "\n") + "\n")
	var out bytes.Buffer
	sh, err := New(input, &out, registry, services.NewQueryService(store), Options{})
	require.NoError(t, err)

	require.NoError(t, sh.Run(context.Background()))

	assert.Equal(t, 3, strings.Count(out.String(), "Invalid "))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RecordsRejected.WithLabelValues("donor", "blood_group")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RecordsRejected.WithLabelValues("donor", "age")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RecordsRejected.WithLabelValues("patient", "blood_group")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RecordsAdded.WithLabelValues("donor")))
}

func TestShell_DisplayEmptyLists(t *testing.T) {
	out, _, _ := session(t, "3", "4", "7")

	assert.Contains(t, out, "No donors available.")
	assert.Contains(t, out, "No patients available.")
}

func TestShell_DisplayDonors(t *testing.T) {
	out, _, _ := session(t,
		"1", "Ann", "A+", "20", "Road 1",
		"1", "Ben", "O-", "40", "Road 2",
		"3", "7")

	sep := strings.Repeat("-", 60)
	expected := "\nList of Donors:\n" + sep + "\n" +
		"Name: Ann, Blood Group: A+, Age: 20, Address: Road 1\n" +
		"Name: Ben, Blood Group: O-, Age: 40, Address: Road 2\n" +
		sep + "\n"
	assert.Contains(t, out, expected)
}

func TestShell_DisplayPatients(t *testing.T) {
	out, _, _ := session(t, "2", "Pat", "b-", "5", "Cot 3", "4", "7")

	assert.Contains(t, out, "List of Patients:")
	assert.Contains(t, out, "Name: Pat, Blood Group: B-, Age: 5, Address: Cot 3")
}

func TestShell_CheckAvailability(t *testing.T) {
	out, _, _ := session(t,
		"1", "A", "O-", "30", "x",
		"1", "B", "O-", "30", "x",
		"1", "C", "A+", "30", "x",
		"5", "o-",
		"7")

	assert.Contains(t, out, "Enter Blood Group to Check Availability: ")
	assert.Contains(t, out, "Blood Group O- is available with 2 donors.")
}

func TestShell_CheckAvailability_Invalid(t *testing.T) {
	out, sh, _ := session(t, "5", "Q", "7")

	assert.Contains(t, out, "Invalid blood group!")
	assert.Equal(t, StateExit, sh.State())
}

func TestShell_CheckCompatibility(t *testing.T) {
	out, _, _ := session(t,
		"1", "A", "O-", "30", "x",
		"6", "a-",
		"7")

	sep := strings.Repeat("-", 60)
	expected := "\nCompatible blood groups for A-:\n" + sep + "\n" +
		"Blood Group A-: 0 donors available\n" +
		"Blood Group O-: 1 donors available\n" +
		sep + "\n"
	assert.Contains(t, out, expected)
}

func TestShell_CheckCompatibility_ONegSingleRow(t *testing.T) {
	out, _, _ := session(t, "6", "O-", "7")

	assert.Equal(t, 1, strings.Count(out, "donors available"))
	assert.Contains(t, out, "Blood Group O-: 0 donors available")
}

func TestShell_CheckCompatibility_Invalid(t *testing.T) {
	out, _, _ := session(t, "6", "", "7")

	assert.Contains(t, out, "Invalid blood group!")
	assert.NotContains(t, out, "Compatible blood groups for")
}

func TestShell_Step_ReturnsToMenuWait(t *testing.T) {
	store := memory.NewRecordStore()
	var out bytes.Buffer
	sh, err := New(strings.NewReader("3\n"), &out,
		services.NewRegistryService(store), services.NewQueryService(store), Options{})
	require.NoError(t, err)

	require.NoError(t, sh.Step(context.Background()))
	assert.Equal(t, StateMenuWait, sh.State())
}

func TestShell_CancelledContext(t *testing.T) {
	store := memory.NewRecordStore()
	sh, err := New(strings.NewReader("3\n"), &bytes.Buffer{},
		services.NewRegistryService(store), services.NewQueryService(store), Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, sh.Run(ctx), context.Canceled)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestShell_WriteErrorAborts(t *testing.T) {
	store := memory.NewRecordStore()
	sh, err := New(strings.NewReader("3\n3\n7\n"), failingWriter{},
		services.NewRegistryService(store), services.NewQueryService(store), Options{})
	require.NoError(t, err)

	err = sh.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "write output")
}

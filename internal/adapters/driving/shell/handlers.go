package shell

import (
	"context"
	"strconv"
	"strings"

	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/format"
	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
)

// recordInput holds the fields collected by the add flows.
type recordInput struct {
	name       string
	bloodGroup string
	age        int
	address    string
}

// collectRecord prompts for the four record fields. The blood group is
// checked by the registry as soon as it is entered; ok is false when it
// was rejected and the flow should end.
func (s *Shell) collectRecord(kind domain.RecordKind, label string) (in recordInput, ok bool, err error) {
	if in.name, err = s.prompt("Enter " + label + " Name: "); err != nil {
		return in, false, err
	}

	s.printf("%s\n", format.ValidGroupsHint())
	group, err := s.prompt("Enter Blood Group: ")
	if err != nil {
		return in, false, err
	}
	checked, err := s.registry.CheckBloodGroup(kind, group)
	if err != nil {
		s.report(err)
		return in, false, nil
	}
	in.bloodGroup = checked.String()

	if in.age, err = s.readAge(); err != nil {
		return in, false, err
	}
	if in.address, err = s.prompt("Enter Address: "); err != nil {
		return in, false, err
	}
	return in, true, nil
}

// readAge prompts until a whole number is entered.
func (s *Shell) readAge() (int, error) {
	for {
		line, err := s.prompt("Enter Age: ")
		if err != nil {
			return 0, err
		}
		age, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil {
			return age, nil
		}
		s.report(domain.ErrInvalidInput)
		if s.writeErr != nil {
			return 0, s.writeErr
		}
	}
}

func (s *Shell) addDonor(ctx context.Context) error {
	in, ok, err := s.collectRecord(domain.RecordKindDonor, "Donor")
	if err != nil || !ok {
		return err
	}

	result, err := s.registry.AddDonor(ctx, in.name, in.bloodGroup, in.age, in.address)
	if err != nil {
		s.report(err)
		return nil
	}
	s.printf("%s\n", result.Message)
	return nil
}

func (s *Shell) addPatient(ctx context.Context) error {
	in, ok, err := s.collectRecord(domain.RecordKindPatient, "Patient")
	if err != nil || !ok {
		return err
	}

	result, err := s.registry.AddPatient(ctx, in.name, in.bloodGroup, in.age, in.address)
	if err != nil {
		s.report(err)
		return nil
	}
	s.printf("%s\n", result.Message)
	return nil
}

func (s *Shell) displayDonors(ctx context.Context) error {
	donors, err := s.registry.ListDonors(ctx)
	if err != nil {
		s.report(err)
		return nil
	}
	if len(donors) == 0 {
		s.printf("%s\n", format.NoDonors)
		return nil
	}

	s.printf("\n%s\n", format.DonorsHeader)
	s.separator()
	for i := range donors {
		s.printf("%s\n", format.DonorLine(&donors[i]))
	}
	s.separator()
	return nil
}

func (s *Shell) displayPatients(ctx context.Context) error {
	patients, err := s.registry.ListPatients(ctx)
	if err != nil {
		s.report(err)
		return nil
	}
	if len(patients) == 0 {
		s.printf("%s\n", format.NoPatients)
		return nil
	}

	s.printf("\n%s\n", format.PatientsHeader)
	s.separator()
	for i := range patients {
		s.printf("%s\n", format.PatientLine(&patients[i]))
	}
	s.separator()
	return nil
}

func (s *Shell) checkAvailability(ctx context.Context) error {
	line, err := s.prompt("Enter Blood Group to Check Availability: ")
	if err != nil {
		return err
	}
	group := domain.NormaliseBloodGroup(line)

	count, err := s.query.CountByGroup(ctx, group)
	if err != nil {
		s.report(err)
		return nil
	}
	s.printf("%s\n", format.Availability(group, count))
	return nil
}

func (s *Shell) checkCompatibility(ctx context.Context) error {
	line, err := s.prompt("Enter Blood Group to Check Compatibility: ")
	if err != nil {
		return err
	}
	group := domain.NormaliseBloodGroup(line)

	rows, err := s.query.CompatibilityReport(ctx, group)
	if err != nil {
		s.report(err)
		return nil
	}

	s.printf("\n%s\n", format.CompatibilityHeader(group))
	s.separator()
	for _, row := range rows {
		s.printf("%s\n", format.CompatibilityRow(row))
	}
	s.separator()
	return nil
}

func (s *Shell) exit(_ context.Context) error {
	s.printf("%s\n", format.Exiting)
	return nil
}

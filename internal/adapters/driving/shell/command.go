package shell

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
)

// Command is a menu selection.
type Command int

// Menu commands, numbered as shown to the user.
const (
	CommandAddDonor Command = iota + 1
	CommandAddPatient
	CommandDisplayDonors
	CommandDisplayPatients
	CommandCheckAvailability
	CommandCheckCompatibility
	CommandExit
)

// AllCommands returns the commands in menu order.
func AllCommands() []Command {
	return []Command{
		CommandAddDonor,
		CommandAddPatient,
		CommandDisplayDonors,
		CommandDisplayPatients,
		CommandCheckAvailability,
		CommandCheckCompatibility,
		CommandExit,
	}
}

// ParseCommand converts a menu selection into a Command.
// Returns domain.ErrInvalidMenuChoice for anything other than 1-7.
func ParseCommand(input string) (Command, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, domain.ErrInvalidMenuChoice
	}
	c := Command(n)
	if !c.IsValid() {
		return 0, domain.ErrInvalidMenuChoice
	}
	return c, nil
}

// IsValid returns true if the command is a known menu entry.
func (c Command) IsValid() bool {
	return c >= CommandAddDonor && c <= CommandExit
}

// String returns the menu label.
func (c Command) String() string {
	switch c {
	case CommandAddDonor:
		return "Add Donor"
	case CommandAddPatient:
		return "Add Patient"
	case CommandDisplayDonors:
		return "Display Donors"
	case CommandDisplayPatients:
		return "Display Patients"
	case CommandCheckAvailability:
		return "Check Blood Availability"
	case CommandCheckCompatibility:
		return "Check Blood Compatibility"
	case CommandExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// State returns the shell state entered when the command runs.
func (c Command) State() State {
	switch c {
	case CommandAddDonor:
		return StateAddDonorFlow
	case CommandAddPatient:
		return StateAddPatientFlow
	case CommandDisplayDonors:
		return StateDisplayDonors
	case CommandDisplayPatients:
		return StateDisplayPatients
	case CommandCheckAvailability:
		return StateCheckAvailability
	case CommandCheckCompatibility:
		return StateCheckCompatibility
	case CommandExit:
		return StateExit
	default:
		return StateMenuWait
	}
}

// State identifies where the shell is in its session.
type State int

const (
	// StateMenuWait is waiting for a menu selection.
	StateMenuWait State = iota
	// StateAddDonorFlow is collecting donor fields.
	StateAddDonorFlow
	// StateAddPatientFlow is collecting patient fields.
	StateAddPatientFlow
	// StateDisplayDonors is printing the donor list.
	StateDisplayDonors
	// StateDisplayPatients is printing the patient list.
	StateDisplayPatients
	// StateCheckAvailability is answering an availability query.
	StateCheckAvailability
	// StateCheckCompatibility is answering a compatibility query.
	StateCheckCompatibility
	// StateExit is terminal.
	StateExit
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateMenuWait:
		return "menu_wait"
	case StateAddDonorFlow:
		return "add_donor"
	case StateAddPatientFlow:
		return "add_patient"
	case StateDisplayDonors:
		return "display_donors"
	case StateDisplayPatients:
		return "display_patients"
	case StateCheckAvailability:
		return "check_availability"
	case StateCheckCompatibility:
		return "check_compatibility"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

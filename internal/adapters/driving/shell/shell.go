package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/format"
	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
	"github.com/custodia-labs/bloodbank-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bloodbank-cli/internal/logger"
)

// ErrMissingRegistryService is returned when the registry service is not provided.
var ErrMissingRegistryService = errors.New("shell: registry service is required")

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("shell: query service is required")

// errEndOfInput signals that the input stream closed mid-session.
var errEndOfInput = errors.New("end of input")

// handler runs one menu flow. Returned errors are input/output failures;
// domain errors are reported to the user inside the handler.
type handler func(ctx context.Context) error

// Options configures presentation.
type Options struct {
	// Settings controls the banner title and separator width.
	Settings domain.ShellSettings

	// Styled renders the banner with terminal colours.
	Styled bool
}

// Shell is the interactive menu loop.
type Shell struct {
	in       *bufio.Reader
	out      io.Writer
	registry driving.RegistryService
	query    driving.QueryService
	settings domain.ShellSettings
	banner   lipgloss.Style
	styled   bool

	state    State
	handlers map[Command]handler
	writeErr error
}

// New creates a shell reading from in and writing to out.
func New(
	in io.Reader, out io.Writer,
	registry driving.RegistryService, query driving.QueryService,
	opts Options,
) (*Shell, error) {
	if registry == nil {
		return nil, ErrMissingRegistryService
	}
	if query == nil {
		return nil, ErrMissingQueryService
	}

	s := &Shell{
		in:       bufio.NewReader(in),
		out:      out,
		registry: registry,
		query:    query,
		settings: opts.Settings.WithDefaults(),
		banner:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
		styled:   opts.Styled,
		state:    StateMenuWait,
	}
	s.handlers = map[Command]handler{
		CommandAddDonor:           s.addDonor,
		CommandAddPatient:         s.addPatient,
		CommandDisplayDonors:      s.displayDonors,
		CommandDisplayPatients:    s.displayPatients,
		CommandCheckAvailability:  s.checkAvailability,
		CommandCheckCompatibility: s.checkCompatibility,
		CommandExit:               s.exit,
	}
	return s, nil
}

// State returns the current state.
func (s *Shell) State() State {
	return s.state
}

// Run loops over the menu until Exit is chosen, input ends, or ctx is done.
// It returns nil on a normal exit.
func (s *Shell) Run(ctx context.Context) error {
	for s.state != StateExit {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Step(ctx); err != nil {
			if errors.Is(err, errEndOfInput) {
				logger.Debug("input closed in state %s", s.state)
				s.state = StateExit
				return nil
			}
			return err
		}
	}
	return nil
}

// Step shows the menu, reads one selection and runs its flow.
func (s *Shell) Step(ctx context.Context) error {
	s.state = StateMenuWait
	s.printMenu()

	line, err := s.readLine()
	if err != nil {
		return err
	}

	cmd, err := ParseCommand(line)
	if err != nil {
		logger.Debug("menu input %q rejected", line)
		s.report(err)
		return s.writeErr
	}

	s.state = cmd.State()
	logger.Debug("entering %s", s.state)
	if err := s.handlers[cmd](ctx); err != nil {
		return err
	}
	if s.state != StateExit {
		s.state = StateMenuWait
	}
	return s.writeErr
}

func (s *Shell) printMenu() {
	title := fmt.Sprintf("======= %s =======", s.settings.Title)
	if s.styled {
		title = s.banner.Render(title)
	}
	s.printf("\n%s\n\n", title)
	for _, c := range AllCommands() {
		s.printf("%d. %s\n", int(c), c)
	}
	s.printf("Enter your choice: ")
}

// readLine returns the next input line without its line terminator.
// A final line without a newline is still returned; errEndOfInput follows.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", errEndOfInput
			}
		} else {
			return "", fmt.Errorf("read input: %w", err)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// prompt prints label and reads the answer.
func (s *Shell) prompt(label string) (string, error) {
	s.printf("%s", label)
	return s.readLine()
}

func (s *Shell) printf(tmpl string, args ...any) {
	if s.writeErr != nil {
		return
	}
	if _, err := fmt.Fprintf(s.out, tmpl, args...); err != nil {
		s.writeErr = fmt.Errorf("write output: %w", err)
	}
}

// report prints the user-facing message for err.
func (s *Shell) report(err error) {
	s.printf("%s\n", format.ErrorMessage(err))
}

func (s *Shell) separator() {
	s.printf("%s\n", format.Separator(s.settings.SeparatorWidth))
}

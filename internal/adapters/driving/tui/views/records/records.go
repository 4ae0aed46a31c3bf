// Package records provides the donor and patient list views.
package records

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/format"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
	"github.com/custodia-labs/bloodbank-cli/internal/core/ports/driving"
)

// View lists every donor or every patient in registration order.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.LineList
	statusbar *status.Bar

	registry driving.RegistryService
	kind     domain.RecordKind
	ctx      context.Context

	width  int
	height int
	ready  bool
}

// NewView creates a list view for the given record kind.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	registry driving.RegistryService,
	kind domain.RecordKind,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	empty := format.NoPatients
	if kind == domain.RecordKindDonor {
		empty = format.NoDonors
	}

	return &View{
		styles:    s,
		keymap:    km,
		list:      list.NewLineList(s, empty),
		statusbar: status.NewBar(s, km.RecordsHelp()),
		registry:  registry,
		kind:      kind,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the records.
func (v *View) Init() tea.Cmd {
	if v.kind == domain.RecordKindDonor {
		return func() tea.Msg {
			donors, err := v.registry.ListDonors(v.ctx)
			return messages.DonorsLoaded{Donors: donors, Err: err}
		}
	}
	return func() tea.Msg {
		patients, err := v.registry.ListPatients(v.ctx)
		return messages.PatientsLoaded{Patients: patients, Err: err}
	}
}

// Update handles messages for the records view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if key.Matches(msg, v.keymap.Back) {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		v.list, _ = v.list.Update(msg)
		return v, nil

	case messages.DonorsLoaded:
		if v.kind != domain.RecordKindDonor {
			return v, nil
		}
		if msg.Err != nil {
			v.statusbar.Fail(format.ErrorMessage(msg.Err))
			return v, nil
		}
		lines := make([]string, 0, len(msg.Donors))
		for i := range msg.Donors {
			lines = append(lines, format.DonorLine(&msg.Donors[i]))
		}
		v.list.SetLines(lines)
		v.statusbar.Clear()

	case messages.PatientsLoaded:
		if v.kind != domain.RecordKindPatient {
			return v, nil
		}
		if msg.Err != nil {
			v.statusbar.Fail(format.ErrorMessage(msg.Err))
			return v, nil
		}
		lines := make([]string, 0, len(msg.Patients))
		for i := range msg.Patients {
			lines = append(lines, format.PatientLine(&msg.Patients[i]))
		}
		v.list.SetLines(lines)
		v.statusbar.Clear()
	}

	return v, nil
}

// View renders the list.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	heading := format.PatientsHeader
	if v.kind == domain.RecordKindDonor {
		heading = format.DonorsHeader
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Subtitle.Render(heading),
		"",
		v.list.View(),
		"",
		v.statusbar.View(),
	)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.list.SetDimensions(width, height-5) // Reserve space for heading and status
	v.statusbar.SetWidth(width)
}

// Kind returns the record kind listed.
func (v *View) Kind() domain.RecordKind {
	return v.kind
}

// Lines returns the rendered record lines.
func (v *View) Lines() []string {
	return v.list.Lines()
}

// Status returns the status bar.
func (v *View) Status() *status.Bar {
	return v.statusbar
}

// Package form provides the Add Donor and Add Patient entry form.
package form

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/format"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
	"github.com/custodia-labs/bloodbank-cli/internal/core/ports/driving"
)

// Field positions in focus order.
const (
	fieldName = iota
	fieldBloodGroup
	fieldAge
	fieldAddress
	fieldCount
)

// View collects one donor or patient record.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	fields    []*input.Field
	statusbar *status.Bar

	registry driving.RegistryService
	kind     domain.RecordKind
	ctx      context.Context

	focus  int
	width  int
	height int
	ready  bool
}

// NewView creates a form for the given record kind.
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

	fields := make([]*input.Field, fieldCount)
	fields[fieldName] = input.NewField(s, "Name", "Full name")
	fields[fieldBloodGroup] = input.NewField(s, "Blood Group", "e.g. O-")
	fields[fieldAge] = input.NewField(s, "Age", "Years")
	fields[fieldAddress] = input.NewField(s, "Address", "Street, town")

	return &View{
		styles:    s,
		keymap:    km,
		fields:    fields,
		statusbar: status.NewBar(s, km.FormHelp()),
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

// Init focuses the first field.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.focusField(fieldName), v.fields[fieldName].Init())
}

// Update handles messages for the form.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.RecordAdded:
		if msg.Kind != v.kind {
			return v, nil
		}
		if msg.Err != nil {
			v.statusbar.Fail(format.ErrorMessage(msg.Err))
			switch {
			case errors.Is(msg.Err, domain.ErrInvalidAge):
				return v, v.focusField(fieldAge)
			case errors.Is(msg.Err, domain.ErrInvalidBloodGroup):
				return v, v.focusField(fieldBloodGroup)
			}
			return v, nil
		}
		v.statusbar.Succeed(msg.Result.Message)
		v.clearFields()
		return v, v.focusField(fieldName)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case key.Matches(msg, v.keymap.Submit):
		if v.focus < fieldAddress {
			return v, v.focusField(v.focus + 1)
		}
		return v, v.submit()

	case key.Matches(msg, v.keymap.NextField):
		return v, v.focusField((v.focus + 1) % fieldCount)

	case key.Matches(msg, v.keymap.PrevField):
		return v, v.focusField((v.focus + fieldCount - 1) % fieldCount)
	}

	var cmd tea.Cmd
	v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)
	return v, cmd
}

// submit checks the fields the way the line shell does and sends the record
// to the registry. Rejected input moves focus to the offending field.
func (v *View) submit() tea.Cmd {
	group, err := v.registry.CheckBloodGroup(v.kind, v.fields[fieldBloodGroup].Value())
	if err != nil {
		v.statusbar.Fail(format.ErrorMessage(err))
		return v.focusField(fieldBloodGroup)
	}

	age, err := strconv.Atoi(strings.TrimSpace(v.fields[fieldAge].Value()))
	if err != nil {
		v.statusbar.Fail(format.MalformedAge)
		return v.focusField(fieldAge)
	}

	name := v.fields[fieldName].Value()
	address := v.fields[fieldAddress].Value()
	kind := v.kind
	v.statusbar.SetState(status.StateBusy)

	return func() tea.Msg {
		var (
			result *domain.Result
			err    error
		)
		if kind == domain.RecordKindDonor {
			result, err = v.registry.AddDonor(v.ctx, name, group.String(), age, address)
		} else {
			result, err = v.registry.AddPatient(v.ctx, name, group.String(), age, address)
		}
		return messages.RecordAdded{Kind: kind, Result: result, Err: err}
	}
}

func (v *View) focusField(index int) tea.Cmd {
	v.fields[v.focus].Blur()
	v.focus = index
	return v.fields[index].Focus()
}

func (v *View) clearFields() {
	for _, f := range v.fields {
		f.Reset()
	}
}

// View renders the form.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, fieldCount+6)
	sections = append(sections,
		v.styles.Subtitle.Render(v.heading()),
		v.styles.Muted.Render(format.ValidGroupsHint()),
		"",
	)
	for _, f := range v.fields {
		sections = append(sections, f.View())
	}
	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) heading() string {
	if v.kind == domain.RecordKindDonor {
		return "Add Donor"
	}
	return "Add Patient"
}

// Reset clears the form and its status.
func (v *View) Reset() {
	v.clearFields()
	v.statusbar.Clear()
	v.fields[v.focus].Blur()
	v.focus = fieldName
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	for _, f := range v.fields {
		f.SetWidth(width)
	}
	v.statusbar.SetWidth(width)
}

// Kind returns the record kind this form registers.
func (v *View) Kind() domain.RecordKind {
	return v.kind
}

// Focus returns the index of the focused field.
func (v *View) Focus() int {
	return v.focus
}

// Values returns the current field values in focus order.
func (v *View) Values() []string {
	values := make([]string, len(v.fields))
	for i, f := range v.fields {
		values[i] = f.Value()
	}
	return values
}

// Status returns the status bar.
func (v *View) Status() *status.Bar {
	return v.statusbar
}

// Package lookup provides the blood availability and compatibility views.
package lookup

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/format"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
	"github.com/custodia-labs/bloodbank-cli/internal/core/ports/driving"
)

// Mode selects which query the view runs.
type Mode int

const (
	// ModeAvailability counts donors of exactly one group.
	ModeAvailability Mode = iota
	// ModeCompatibility lists donor counts for every compatible group.
	ModeCompatibility
)

// View asks for a blood group and shows the query answer.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.Field
	results   *list.LineList
	statusbar *status.Bar

	query driving.QueryService
	mode  Mode
	ctx   context.Context

	header string
	width  int
	height int
	ready  bool
}

// NewView creates a lookup view in the given mode.
func NewView(s *styles.Styles, km *keymap.KeyMap, query driving.QueryService, mode Mode) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		input:     input.NewField(s, "Blood Group", "e.g. AB+"),
		results:   list.NewLineList(s, ""),
		statusbar: status.NewBar(s, km.LookupHelp()),
		query:     query,
		mode:      mode,
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

// Init focuses the input.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Focus(), v.input.Init())
}

// Update handles messages for the lookup view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case key.Matches(msg, v.keymap.Submit):
			return v, v.run()
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd

	case messages.AvailabilityChecked:
		if v.mode != ModeAvailability {
			return v, nil
		}
		if v.fail(msg.Err) {
			return v, nil
		}
		v.header = ""
		v.results.SetLines([]string{format.Availability(msg.Group, msg.Count)})
		v.statusbar.Clear()
		return v, nil

	case messages.CompatibilityChecked:
		if v.mode != ModeCompatibility {
			return v, nil
		}
		if v.fail(msg.Err) {
			return v, nil
		}
		v.header = format.CompatibilityHeader(msg.Recipient)
		lines := make([]string, 0, len(msg.Rows))
		for _, row := range msg.Rows {
			lines = append(lines, format.CompatibilityRow(row))
		}
		v.results.SetLines(lines)
		v.statusbar.Clear()
		return v, nil
	}

	return v, nil
}

// fail shows err, if any, and clears the previous answer.
func (v *View) fail(err error) bool {
	if err == nil {
		return false
	}
	v.header = ""
	v.results.SetLines(nil)
	v.statusbar.Fail(format.ErrorMessage(err))
	return true
}

func (v *View) run() tea.Cmd {
	group := domain.NormaliseBloodGroup(v.input.Value())
	v.statusbar.SetState(status.StateBusy)

	if v.mode == ModeAvailability {
		return func() tea.Msg {
			count, err := v.query.CountByGroup(v.ctx, group)
			return messages.AvailabilityChecked{Group: group, Count: count, Err: err}
		}
	}
	return func() tea.Msg {
		rows, err := v.query.CompatibilityReport(v.ctx, group)
		return messages.CompatibilityChecked{Recipient: group, Rows: rows, Err: err}
	}
}

// View renders the lookup view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{
		v.styles.Subtitle.Render(v.heading()),
		v.styles.Muted.Render(format.ValidGroupsHint()),
		"",
		v.input.View(),
		"",
	}
	if v.header != "" {
		sections = append(sections, v.styles.Subtitle.Render(v.header))
	}
	if v.results.Count() > 0 {
		sections = append(sections, v.results.View())
	}
	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) heading() string {
	if v.mode == ModeAvailability {
		return "Check Blood Availability"
	}
	return "Check Blood Compatibility"
}

// Reset clears the input and the last answer.
func (v *View) Reset() {
	v.input.Reset()
	v.header = ""
	v.results.SetLines(nil)
	v.statusbar.Clear()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.results.SetDimensions(width, height-12) // Reserve space for heading, input and status
	v.statusbar.SetWidth(width)
}

// Mode returns the query mode.
func (v *View) Mode() Mode {
	return v.mode
}

// Header returns the heading above the answer, if any.
func (v *View) Header() string {
	return v.header
}

// Lines returns the rendered answer lines.
func (v *View) Lines() []string {
	return v.results.Lines()
}

// Status returns the status bar.
func (v *View) Status() *status.Bar {
	return v.statusbar
}

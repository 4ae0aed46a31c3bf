// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
)

// Item represents a single menu option.
type Item struct {
	Label string
	View  messages.ViewType
	Quit  bool // If true, selecting this item quits the app
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	title    string
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view. An empty title uses the default banner.
func NewView(s *styles.Styles, km *keymap.KeyMap, title string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if title == "" {
		title = domain.DefaultShellTitle
	}

	return &View{
		styles: s,
		keymap: km,
		title:  title,
		items: []Item{
			{Label: "Add Donor", View: messages.ViewAddDonor},
			{Label: "Add Patient", View: messages.ViewAddPatient},
			{Label: "Display Donors", View: messages.ViewDonors},
			{Label: "Display Patients", View: messages.ViewPatients},
			{Label: "Check Blood Availability", View: messages.ViewAvailability},
			{Label: "Check Blood Compatibility", View: messages.ViewCompatibility},
			{Label: "Exit", Quit: true},
		},
		width:  80,
		height: 24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keymap.Up):
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case key.Matches(msg, v.keymap.Down):
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case key.Matches(msg, v.keymap.Select):
			return v, v.choose(v.selected)

		case key.Matches(msg, v.keymap.MenuQuit):
			return v, tea.Quit
		}

		// Digits jump straight to an entry, as in the line shell.
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && int(s[0]-'0') <= len(v.items) {
			v.selected = int(s[0] - '1')
			return v, v.choose(v.selected)
		}
	}

	return v, nil
}

func (v *View) choose(index int) tea.Cmd {
	item := v.items[index]
	if item.Quit {
		return tea.Quit
	}
	return func() tea.Msg {
		return messages.ViewChanged{View: item.View}
	}
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("======= %s =======", v.title)))
	b.WriteString("\n\n")

	for i, item := range v.items {
		label := fmt.Sprintf("%d. %s", i+1, item.Label)
		if i == v.selected {
			b.WriteString("> " + v.styles.Selected.Render(label))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [1-7/Enter] Select  [q] Quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Title returns the banner title.
func (v *View) Title() string {
	return v.title
}

package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/views/form"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/views/lookup"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/views/records"
	"github.com/custodia-labs/bloodbank-cli/internal/core/domain"
	"github.com/custodia-labs/bloodbank-cli/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView          *menu.View
	donorForm         *form.View
	patientForm       *form.View
	donorsView        *records.View
	patientsView      *records.View
	availabilityView  *lookup.View
	compatibilityView *lookup.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:             ports,
		ctx:               context.Background(),
		styles:            s,
		keymap:            km,
		menuView:          menu.NewView(s, km, title(ports)),
		donorForm:         form.NewView(s, km, ports.Registry, domain.RecordKindDonor),
		patientForm:       form.NewView(s, km, ports.Registry, domain.RecordKindPatient),
		donorsView:        records.NewView(s, km, ports.Registry, domain.RecordKindDonor),
		patientsView:      records.NewView(s, km, ports.Registry, domain.RecordKindPatient),
		availabilityView:  lookup.NewView(s, km, ports.Query, lookup.ModeAvailability),
		compatibilityView: lookup.NewView(s, km, ports.Query, lookup.ModeCompatibility),
		currentView:       messages.ViewMenu, // Start with menu
	}, nil
}

// title reads the banner title from settings, falling back to the default.
func title(ports *Ports) string {
	if ports.Settings == nil {
		return domain.DefaultShellTitle
	}
	settings, err := ports.Settings.Get()
	if err != nil {
		logger.Warn("settings unavailable, using default title: %v", err)
		return domain.DefaultShellTitle
	}
	return settings.Shell.Title
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.donorForm.WithContext(ctx)
	a.patientForm.WithContext(ctx)
	a.donorsView.WithContext(ctx)
	a.patientsView.WithContext(ctx)
	a.availabilityView.WithContext(ctx)
	a.compatibilityView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("bloodbank"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if key.Matches(msg, a.keymap.Quit) {
			return a, tea.Quit
		}
		return a, a.forward(msg)

	case messages.ViewChanged:
		logger.Debug("tui: %s -> %s", a.currentView, msg.View)
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewAddDonor:
			a.donorForm.Reset()
			return a, a.donorForm.Init()
		case messages.ViewAddPatient:
			a.patientForm.Reset()
			return a, a.patientForm.Init()
		case messages.ViewDonors:
			return a, a.donorsView.Init()
		case messages.ViewPatients:
			return a, a.patientsView.Init()
		case messages.ViewAvailability:
			a.availabilityView.Reset()
			return a, a.availabilityView.Init()
		case messages.ViewCompatibility:
			a.compatibilityView.Reset()
			return a, a.compatibilityView.Init()
		case messages.ViewMenu:
			// Menu has no state to refresh
		}
		return a, nil

	case messages.RecordAdded:
		if msg.Kind == domain.RecordKindDonor {
			a.donorForm, cmd = a.donorForm.Update(msg)
		} else {
			a.patientForm, cmd = a.patientForm.Update(msg)
		}
		return a, cmd

	case messages.DonorsLoaded:
		a.donorsView, cmd = a.donorsView.Update(msg)
		return a, cmd

	case messages.PatientsLoaded:
		a.patientsView, cmd = a.patientsView.Update(msg)
		return a, cmd

	case messages.AvailabilityChecked:
		a.availabilityView, cmd = a.availabilityView.Update(msg)
		return a, cmd

	case messages.CompatibilityChecked:
		a.compatibilityView, cmd = a.compatibilityView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blinks) to the active view
	return a, a.forward(msg)
}

// forward passes msg to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewAddDonor:
		a.donorForm, cmd = a.donorForm.Update(msg)
	case messages.ViewAddPatient:
		a.patientForm, cmd = a.patientForm.Update(msg)
	case messages.ViewDonors:
		a.donorsView, cmd = a.donorsView.Update(msg)
	case messages.ViewPatients:
		a.patientsView, cmd = a.patientsView.Update(msg)
	case messages.ViewAvailability:
		a.availabilityView, cmd = a.availabilityView.Update(msg)
	case messages.ViewCompatibility:
		a.compatibilityView, cmd = a.compatibilityView.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewAddDonor:
		return a.donorForm.View()
	case messages.ViewAddPatient:
		return a.patientForm.View()
	case messages.ViewDonors:
		return a.donorsView.View()
	case messages.ViewPatients:
		return a.patientsView.View()
	case messages.ViewAvailability:
		return a.availabilityView.View()
	case messages.ViewCompatibility:
		return a.compatibilityView.View()
	default:
		return a.menuView.View()
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// Title returns the banner title shown on the menu.
func (a *App) Title() string {
	return a.menuView.Title()
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.donorForm.SetDimensions(width, height)
	a.patientForm.SetDimensions(width, height)
	a.donorsView.SetDimensions(width, height)
	a.patientsView.SetDimensions(width, height)
	a.availabilityView.SetDimensions(width, height)
	a.compatibilityView.SetDimensions(width, height)
}

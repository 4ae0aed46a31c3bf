// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/styles"
)

// State represents the outcome shown on the left of the bar.
type State string

const (
	StateReady   State = "ready"
	StateBusy    State = "busy"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Bar displays the last outcome and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	hints   []key.Binding
	state   State
	message string
	width   int
}

// NewBar creates a new status bar showing the given hints.
func NewBar(s *styles.Styles, hints []key.Binding) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Bar{
		styles: s,
		hints:  hints,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (b *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (b *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return b, nil
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	style := b.styles.StatusBar
	padding := b.width - style.GetHorizontalFrameSize() - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return style.Width(b.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (b *Bar) renderLeft() string {
	switch b.state {
	case StateBusy:
		return b.styles.Muted.Render("Working...")
	case StateSuccess:
		return b.styles.Success.Render(b.message)
	case StateError:
		if b.message != "" {
			return b.styles.Error.Render(b.message)
		}
		return b.styles.Error.Render("Error")
	case StateReady:
	}
	return b.styles.Muted.Render("Ready")
}

func (b *Bar) renderRight() string {
	hints := make([]string, 0, len(b.hints))
	for _, binding := range b.hints {
		h := binding.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

// Succeed shows a confirmation message.
func (b *Bar) Succeed(message string) {
	b.state = StateSuccess
	b.message = message
}

// Fail shows a rejection message.
func (b *Bar) Fail(message string) {
	b.state = StateError
	b.message = message
}

// SetState sets the current state.
func (b *Bar) SetState(state State) {
	b.state = state
}

// State returns the current state.
func (b *Bar) State() State {
	return b.state
}

// Message returns the current message.
func (b *Bar) Message() string {
	return b.message
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Width returns the current width.
func (b *Bar) Width() int {
	return b.width
}

// Clear resets the status bar to its ready state.
func (b *Bar) Clear() {
	b.state = StateReady
	b.message = ""
}

package status

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap().FormHelp())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
}

func TestBar_InitAndUpdate(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestBar_Succeed(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.Succeed("Donor 'Jane' added successfully.")

	assert.Equal(t, StateSuccess, bar.State())
	assert.Contains(t, bar.View(), "Donor 'Jane' added successfully.")
}

func TestBar_Fail(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.Fail("Invalid age! Please enter a whole number.")

	assert.Equal(t, StateError, bar.State())
	assert.Contains(t, bar.View(), "Invalid age! Please enter a whole number.")
}

func TestBar_ErrorWithoutMessage(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetState(StateError)

	assert.Contains(t, bar.View(), "Error")
}

func TestBar_BusyAndReady(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Contains(t, bar.View(), "Ready")

	bar.SetState(StateBusy)
	assert.Contains(t, bar.View(), "Working...")
}

func TestBar_Hints(t *testing.T) {
	bar := NewBar(nil, keymap.DefaultKeyMap().LookupHelp())
	bar.SetWidth(120)

	view := bar.View()

	assert.Contains(t, view, "enter: submit")
	assert.Contains(t, view, "esc: back")
	assert.Contains(t, view, "ctrl+c: quit")
}

func TestBar_FitsOnOneLine(t *testing.T) {
	for _, width := range []int{60, 80, 120} {
		bar := NewBar(nil, keymap.DefaultKeyMap().LookupHelp())
		bar.SetWidth(width)

		view := bar.View()

		assert.NotContains(t, view, "\n", "width %d", width)
		assert.Equal(t, width, lipgloss.Width(view), "width %d", width)
	}
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.Fail("boom")

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
}

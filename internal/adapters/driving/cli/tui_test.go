package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUICmd_Exists(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "tui" {
			found = true
			break
		}
	}
	assert.True(t, found, "tui command should be registered")
}

func TestTUICmd_ShortDescription(t *testing.T) {
	assert.Equal(t, "Launch the interactive terminal UI", tuiCmd.Short)
}

func TestTUICmd_LongDescription(t *testing.T) {
	assert.Contains(t, tuiCmd.Long, "terminal user interface")
	assert.Contains(t, tuiCmd.Long, "Controls:")
}

func TestTUICmd_RefusesWithoutTerminal(t *testing.T) {
	_, _, err := execute(t, "", "tui", "--config", t.TempDir())

	assert.ErrorIs(t, err, ErrNotTerminal)
}

func TestTUICmd_HelpOutput(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"tui", "--help"})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "terminal user interface")
	assert.Contains(t, output, "Controls:")
}

func TestRunTUI_PanicBecomesError(t *testing.T) {
	// A nil command panics on its first use.
	err := runTUI(nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTUIPanic)
}

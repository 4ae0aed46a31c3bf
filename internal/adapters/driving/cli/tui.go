package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui"
)

// ErrNotTerminal is returned when the TUI is started without a terminal on stdin.
var ErrNotTerminal = errors.New("tui requires an interactive terminal; run bloodbank without arguments for the line shell")

// ErrTUIPanic is returned when the terminal UI panics.
var ErrTUIPanic = errors.New("tui panicked")

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the full-screen terminal user interface for the blood bank.

The TUI offers the same seven actions as the menu shell, with forms for
donors and patients and live lookups for availability and compatibility.

Controls:
  ↑/k, ↓/j   - Navigate menu / scroll lists
  1-7        - Jump to a menu entry
  Tab        - Next form field
  Enter      - Select / Submit
  Esc        - Back to menu
  q          - Quit from the menu
  Ctrl+C     - Quit from anywhere`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("%w: %v", ErrTUIPanic, r)
		}
	}()

	if !isTerminal(cmd.InOrStdin()) {
		return ErrNotTerminal
	}

	ports := tui.NewPorts(app.registry, app.query)
	ports.Settings = app.settings

	model, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	model.WithContext(cmd.Context())

	if err := model.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	logSessionMetrics()
	return nil
}

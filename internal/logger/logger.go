// Package logger provides verbose diagnostic logging for the bloodbank CLI.
// When verbose mode is enabled via the --verbose flag or the logging.verbose
// config key, messages are written to stderr so they never mix with the
// shell's menu output on stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf("DEBUG", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf("INFO", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	logf("WARN", format, args...)
}

// Section prints a section header followed by one indented line per entry.
// Nothing is printed when lines is empty.
func Section(name string, lines []string) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose || len(lines) == 0 {
		return
	}
	fmt.Fprintf(output, "=== %s ===\n", name)
	for _, line := range lines {
		fmt.Fprintf(output, "  %s\n", line)
	}
}

func logf(level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "["+level+"] "+format+"\n", args...)
	}
}

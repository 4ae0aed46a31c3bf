package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	assert.Equal(t, "BLOOD BANK MANAGEMENT", settings.Shell.Title)
	assert.Equal(t, 60, settings.Shell.SeparatorWidth)
	assert.False(t, settings.Logging.Verbose)
}

func TestShellSettings_WithDefaults(t *testing.T) {
	tests := []struct {
		name     string
		input    ShellSettings
		expected ShellSettings
	}{
		{
			name:     "Empty settings take defaults",
			input:    ShellSettings{},
			expected: ShellSettings{Title: DefaultShellTitle, SeparatorWidth: DefaultSeparatorWidth},
		},
		{
			name:     "Custom values kept",
			input:    ShellSettings{Title: "CITY HOSPITAL", SeparatorWidth: 40},
			expected: ShellSettings{Title: "CITY HOSPITAL", SeparatorWidth: 40},
		},
		{
			name:     "Negative width replaced",
			input:    ShellSettings{Title: "X", SeparatorWidth: -5},
			expected: ShellSettings{Title: "X", SeparatorWidth: DefaultSeparatorWidth},
		},
		{
			name:     "Oversized width replaced",
			input:    ShellSettings{Title: "X", SeparatorWidth: 1000},
			expected: ShellSettings{Title: "X", SeparatorWidth: DefaultSeparatorWidth},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.WithDefaults())
		})
	}
}

package domain

// Default shell presentation values.
const (
	DefaultShellTitle     = "BLOOD BANK MANAGEMENT"
	DefaultSeparatorWidth = 60

	// maxSeparatorWidth bounds configured widths to something a terminal can show.
	maxSeparatorWidth = 200
)

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Shell   ShellSettings
	Logging LoggingSettings
}

// ShellSettings controls how the interactive shell renders its output.
type ShellSettings struct {
	// Title is shown in the menu banner.
	Title string

	// SeparatorWidth is the number of dashes framing lists and reports.
	SeparatorWidth int
}

// LoggingSettings controls diagnostic output.
type LoggingSettings struct {
	// Verbose enables debug output on stderr.
	Verbose bool
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Shell: ShellSettings{
			Title:          DefaultShellTitle,
			SeparatorWidth: DefaultSeparatorWidth,
		},
	}
}

// WithDefaults returns a copy where empty or out-of-range fields are
// replaced by their defaults.
func (s ShellSettings) WithDefaults() ShellSettings {
	if s.Title == "" {
		s.Title = DefaultShellTitle
	}
	if s.SeparatorWidth <= 0 || s.SeparatorWidth > maxSeparatorWidth {
		s.SeparatorWidth = DefaultSeparatorWidth
	}
	return s
}

// Package list provides list display components for the TUI.
package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/bloodbank-cli/internal/adapters/driving/tui/styles"
)

// LineList displays pre-rendered record lines in a scrollable window.
type LineList struct {
	lines  []string
	empty  string
	offset int
	styles *styles.Styles
	width  int
	height int
}

// NewLineList creates a list that shows empty when it has no lines.
func NewLineList(s *styles.Styles, empty string) *LineList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &LineList{
		empty:  empty,
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (l *LineList) Init() tea.Cmd {
	return nil
}

// Update handles scrolling keys.
func (l *LineList) Update(msg tea.Msg) (*LineList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.ScrollUp()
		case "down", "j":
			l.ScrollDown()
		}
	}
	return l, nil
}

// View renders the visible lines.
func (l *LineList) View() string {
	if len(l.lines) == 0 {
		return l.styles.Muted.Render(l.empty)
	}

	end := l.offset + l.visible()
	if end > len(l.lines) {
		end = len(l.lines)
	}

	rendered := make([]string, 0, end-l.offset)
	for _, line := range l.lines[l.offset:end] {
		rendered = append(rendered, l.styles.Normal.Render(line))
	}
	return strings.Join(rendered, "\n")
}

// visible returns how many lines fit.
func (l *LineList) visible() int {
	if l.height < 1 {
		return 1
	}
	return l.height
}

// SetLines replaces the content and scrolls to the top.
func (l *LineList) SetLines(lines []string) {
	l.lines = lines
	l.offset = 0
}

// Lines returns the current content.
func (l *LineList) Lines() []string {
	return l.lines
}

// Offset returns the index of the first visible line.
func (l *LineList) Offset() int {
	return l.offset
}

// ScrollUp moves the window up one line.
func (l *LineList) ScrollUp() {
	if l.offset > 0 {
		l.offset--
	}
}

// ScrollDown moves the window down one line.
func (l *LineList) ScrollDown() {
	if l.offset+l.visible() < len(l.lines) {
		l.offset++
	}
}

// SetDimensions sets the component dimensions.
func (l *LineList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of lines.
func (l *LineList) Count() int {
	return len(l.lines)
}

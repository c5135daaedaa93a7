package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/muurk/formulary/internal/theme"
)

// Layout constants
const (
	MinTerminalWidth = 40  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
	DefaultHeight    = 24  // Height used when the terminal cannot be queried
)

// BoxStyles are the styles used by the printer, derived from a theme.
type BoxStyles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Key       lipgloss.Style
	Value     lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Primary   lipgloss.Color
	SuccessFg lipgloss.Color
	ErrorFg   lipgloss.Color
	MutedFg   lipgloss.Color
}

// NewBoxStyles builds printer styles from the theme palette.
func NewBoxStyles(t *theme.Theme) BoxStyles {
	p := t.Colors
	return BoxStyles{
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)).Bold(true).PaddingLeft(2),
		Subtitle:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)).PaddingLeft(2),
		Key:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Width(16),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Success)).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error)).Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)),
		Primary:   lipgloss.Color(p.Primary),
		SuccessFg: lipgloss.Color(p.Success),
		ErrorFg:   lipgloss.Color(p.Error),
		MutedFg:   lipgloss.Color(p.Muted),
	}
}

// Result markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
)

// GetTerminalWidth returns the width of the terminal on f, with fallback
func GetTerminalWidth(f *os.File) int {
	width, _ := GetTerminalSize(f)
	return width
}

// GetTerminalSize returns the current terminal width and height, clamped
// to the supported range
func GetTerminalSize(f *os.File) (int, int) {
	if f == nil {
		return MinTerminalWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return MinTerminalWidth, DefaultHeight
	}
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if width > MaxContentWidth {
		width = MaxContentWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from a Theme. Widgets and layouts
// only ever render through a Styles value.
type Styles struct {
	Symbols Symbols

	Question    lipgloss.Style
	Description lipgloss.Style
	Answer      lipgloss.Style
	Error       lipgloss.Style
	Muted       lipgloss.Style

	// Selection lists
	Cursor    lipgloss.Style
	Checked   lipgloss.Style
	Unchecked lipgloss.Style

	// Masked input
	Segment      lipgloss.Style
	SegmentFocus lipgloss.Style
	Literal      lipgloss.Style

	// Buttons
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	// Wizard frame
	Title        lipgloss.Style
	Frame        lipgloss.Style
	Sidebar      lipgloss.Style
	StepCurrent  lipgloss.Style
	StepNormal   lipgloss.Style
	StepDisabled lipgloss.Style
	Status       lipgloss.Style
}

// NewStyles builds the style set for t.
func NewStyles(t *Theme) *Styles {
	c := t.Colors
	primary := lipgloss.Color(c.Primary)
	text := lipgloss.Color(c.Text)
	muted := lipgloss.Color(c.Muted)

	return &Styles{
		Symbols: t.Symbols,

		Question:    lipgloss.NewStyle().Foreground(primary).Bold(true),
		Description: lipgloss.NewStyle().Foreground(muted).Italic(true),
		Answer:      lipgloss.NewStyle().Foreground(text),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color(c.Error)),
		Muted:       lipgloss.NewStyle().Foreground(muted),

		Cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Selected)).Bold(true),
		Checked:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Success)),
		Unchecked: lipgloss.NewStyle().Foreground(text),

		Segment:      lipgloss.NewStyle().Foreground(text).Underline(true),
		SegmentFocus: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Accent)).Underline(true),
		Literal:      lipgloss.NewStyle().Foreground(muted),

		Button: lipgloss.NewStyle().
			Foreground(text).
			Padding(0, 1),
		ButtonFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(primary).
			Bold(true).
			Padding(0, 1),

		Title: lipgloss.NewStyle().Foreground(primary).Bold(true).PaddingLeft(1),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),
		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(muted).
			PaddingRight(1).
			MarginRight(1),
		StepCurrent:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Accent)).Bold(true),
		StepNormal:   lipgloss.NewStyle().Foreground(text),
		StepDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Disabled)).Strikethrough(true),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color(c.Error)).Bold(true),
	}
}

// Plain returns styles without colors or decoration, using the default
// symbols. Tests render through it.
func Plain() *Styles {
	n := lipgloss.NewStyle
	return &Styles{
		Symbols:       Default().Symbols,
		Question:      n(),
		Description:   n(),
		Answer:        n(),
		Error:         n(),
		Muted:         n(),
		Cursor:        n(),
		Checked:       n(),
		Unchecked:     n(),
		Segment:       n(),
		SegmentFocus:  n(),
		Literal:       n(),
		Button:        n(),
		ButtonFocused: n(),
		Title:         n(),
		Frame:         n(),
		Sidebar:       n(),
		StepCurrent:   n(),
		StepNormal:    n(),
		StepDisabled:  n(),
		Status:        n(),
	}
}

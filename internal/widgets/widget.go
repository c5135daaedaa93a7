package widgets

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Widget is an interactive component owned by one question handler.
// Widgets are mutated in place; Update returns only a command.
type Widget interface {
	Update(msg tea.Msg) tea.Cmd
	View() string

	// Focus gives focus to the first focusable part, FocusLast to the last
	// one. Blur removes focus.
	Focus() tea.Cmd
	FocusLast() tea.Cmd
	Blur()
	Focused() bool

	// FocusNext and FocusPrev move focus between the widget's own parts
	// (segments, buttons). They return false, leaving focus unchanged,
	// when there is no further part in that direction.
	FocusNext() bool
	FocusPrev() bool

	// Accepts reports whether msg submits the widget's value rather than
	// being handled by the widget itself.
	Accepts(msg tea.KeyMsg) bool

	// Value is the raw value: string, []string, map[string]any or nil.
	Value() any
}

// Clickable widgets react to a mouse click on one of their rendered rows.
type Clickable interface {
	Click(row int)
}

// Committer widgets settle their value when the form accepts them.
type Committer interface {
	Commit()
}

// Sizer widgets adapt to the space available to them.
type Sizer interface {
	SetSize(width, height int)
}

var (
	// ErrMaskLength is returned when a value does not fill a mask exactly.
	ErrMaskLength = errors.New("value length does not match the mask")
	// ErrMaskChars is returned when a value contains characters the mask
	// does not allow.
	ErrMaskChars = errors.New("value contains characters not allowed by the mask")
)

// runes extracts typed characters from a key message. Space counts.
func runes(msg tea.KeyMsg) []rune {
	switch msg.Type {
	case tea.KeyRunes:
		return msg.Runes
	case tea.KeySpace:
		return []rune{' '}
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package widgets

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/formulary/internal/question"
	"github.com/muurk/formulary/internal/theme"
)

// focus targets inside SelectMany, in tab order.
const (
	focusList = iota
	focusAll
	focusNone
)

// SelectMany lets the user check any number of choices. Space toggles the
// item under the cursor. The All and None buttons follow the list in tab
// order.
type SelectMany struct {
	list
	checked map[string]bool
	focus   int
	focused bool
	styles  *theme.Styles
}

// NewSelectMany creates the widget with the given values checked.
func NewSelectMany(choices []question.Choice, checked []string, styles *theme.Styles) *SelectMany {
	s := &SelectMany{styles: styles}
	s.SetChoices(choices, checked)
	return s
}

// SetChoices replaces the choices and the checked set. Checked values that
// are not among the choices are dropped.
func (s *SelectMany) SetChoices(choices []question.Choice, checked []string) {
	s.choices = choices
	s.cursor, s.offset = 0, 0
	s.SetValue(checked)
}

// SetValue replaces the checked set.
func (s *SelectMany) SetValue(checked []string) {
	s.checked = make(map[string]bool, len(checked))
	for _, v := range checked {
		for _, c := range s.choices {
			if c.Value == v {
				s.checked[v] = true
			}
		}
	}
}

func (s *SelectMany) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused {
		return nil
	}

	if s.focus != focusList {
		switch {
		case key.Matches(km, Keys.Toggle), key.Matches(km, Keys.Accept):
			s.press()
		case key.Matches(km, Keys.Left):
			s.FocusPrev()
		case key.Matches(km, Keys.Right):
			s.FocusNext()
		}
		return nil
	}

	if len(s.choices) == 0 || s.navigate(km) {
		return nil
	}
	if key.Matches(km, Keys.Toggle) {
		s.toggle(s.cursor)
		return nil
	}
	for _, r := range runes(km) {
		s.typeAhead(r)
	}
	return nil
}

func (s *SelectMany) press() {
	switch s.focus {
	case focusAll:
		s.SelectAll()
	case focusNone:
		s.SelectNone()
	}
}

func (s *SelectMany) toggle(i int) {
	v := s.choices[i].Value
	if s.checked[v] {
		delete(s.checked, v)
	} else {
		s.checked[v] = true
	}
}

// SelectAll checks every choice.
func (s *SelectMany) SelectAll() {
	for _, c := range s.choices {
		s.checked[c.Value] = true
	}
}

// SelectNone clears the checked set.
func (s *SelectMany) SelectNone() {
	s.checked = map[string]bool{}
}

// Click moves the cursor to row and toggles it.
func (s *SelectMany) Click(row int) {
	if idx, ok := s.rowIndex(row); ok {
		s.cursor = idx
		s.toggle(idx)
	}
}

func (s *SelectMany) View() string {
	sym := s.styles.Symbols
	items := s.render(s.styles, s.focused && s.focus == focusList, func(i int) string {
		if s.checked[s.choices[i].Value] {
			return s.styles.Checked.Render(sym.SelectManyChecked)
		}
		return s.styles.Unchecked.Render(sym.SelectManyUnchecked)
	})
	return items + "\n\n" + s.button("All", focusAll) + " " + s.button("None", focusNone)
}

func (s *SelectMany) button(label string, target int) string {
	if s.focused && s.focus == target {
		return s.styles.ButtonFocused.Render("<" + label + ">")
	}
	return s.styles.Button.Render("<" + label + ">")
}

func (s *SelectMany) Focus() tea.Cmd {
	s.focused = true
	s.focus = focusList
	return nil
}

func (s *SelectMany) FocusLast() tea.Cmd {
	s.focused = true
	s.focus = focusNone
	return nil
}

func (s *SelectMany) Blur() { s.focused = false }
func (s *SelectMany) Focused() bool { return s.focused }

func (s *SelectMany) FocusNext() bool {
	if s.focus == focusNone {
		return false
	}
	s.focus++
	return true
}

func (s *SelectMany) FocusPrev() bool {
	if s.focus == focusList {
		return false
	}
	s.focus--
	return true
}

// SetSize implements Sizer; height is the number of visible rows.
func (s *SelectMany) SetSize(width, height int) { s.setSize(width, height) }

// Accepts submits on enter while the list has focus; on a button enter
// presses the button instead.
func (s *SelectMany) Accepts(msg tea.KeyMsg) bool {
	return s.focus == focusList && key.Matches(msg, Keys.Accept)
}

// Value returns the checked values in choice order.
func (s *SelectMany) Value() any {
	return s.Checked()
}

// Checked returns the checked values in choice order.
func (s *SelectMany) Checked() []string {
	out := make([]string, 0, len(s.checked))
	for _, c := range s.choices {
		if s.checked[c.Value] {
			out = append(out, c.Value)
		}
	}
	return out
}

// Cursor returns the highlighted index.
func (s *SelectMany) Cursor() int { return s.cursor }

// Choices returns the current choices.
func (s *SelectMany) Choices() []question.Choice { return s.choices }

// FocusedButton returns "All", "None" or "" when the list has focus.
func (s *SelectMany) FocusedButton() string {
	switch s.focus {
	case focusAll:
		return "All"
	case focusNone:
		return "None"
	}
	return ""
}

package widgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/muurk/formulary/internal/question"
	"github.com/muurk/formulary/internal/theme"
)

// list is the cursor and viewport logic shared by SelectOne and SelectMany.
type list struct {
	choices []question.Choice
	cursor  int
	offset  int
	height  int // visible rows, 0 shows everything
	width   int
}

// displayed is the number of rows currently on screen.
func (l *list) displayed() int {
	if l.height <= 0 || l.height > len(l.choices) {
		return len(l.choices)
	}
	return l.height
}

func (l *list) move(delta int) {
	if len(l.choices) == 0 {
		l.cursor = 0
		return
	}
	l.cursor = clamp(l.cursor+delta, 0, len(l.choices)-1)
	l.scroll()
}

func (l *list) scroll() {
	rows := l.displayed()
	if rows == 0 {
		l.offset = 0
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
	l.offset = clamp(l.offset, 0, len(l.choices)-rows)
}

// navigate handles the movement keys and reports whether msg was one.
func (l *list) navigate(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, Keys.Up):
		l.move(-1)
	case key.Matches(msg, Keys.Down):
		l.move(1)
	case key.Matches(msg, Keys.PageUp):
		l.move(-l.displayed())
	case key.Matches(msg, Keys.PageDown):
		l.move(l.displayed())
	default:
		return false
	}
	return true
}

// typeAhead jumps to the next label starting with r, scanning from the
// item after the cursor and wrapping around. Matching ignores case.
func (l *list) typeAhead(r rune) bool {
	n := len(l.choices)
	prefix := strings.ToLower(string(r))
	for i := 1; i <= n; i++ {
		idx := (l.cursor + i) % n
		if strings.HasPrefix(strings.ToLower(l.choices[idx].Label), prefix) {
			l.cursor = idx
			l.scroll()
			return true
		}
	}
	return false
}

// rowIndex maps a rendered row to a choice index.
func (l *list) rowIndex(row int) (int, bool) {
	if row < 0 || row >= l.displayed() {
		return 0, false
	}
	idx := l.offset + row
	return idx, idx < len(l.choices)
}

func (l *list) setSize(width, height int) {
	l.width = width
	l.height = height
	l.scroll()
}

func (l *list) render(styles *theme.Styles, focused bool, mark func(int) string) string {
	rows := l.displayed()
	lines := make([]string, 0, rows)
	pointerWidth := runewidth.StringWidth(styles.Symbols.Pointer)
	for i := l.offset; i < l.offset+rows; i++ {
		pointer := strings.Repeat(" ", pointerWidth)
		label := l.choices[i].Label
		if avail := l.width - pointerWidth - lipgloss.Width(mark(i)) - 2; l.width > 0 && avail > 1 {
			label = runewidth.Truncate(label, avail, "…")
		}
		line := mark(i) + " " + label
		if i == l.cursor && focused {
			pointer = styles.Symbols.Pointer
			line = styles.Cursor.Render(line)
		}
		lines = append(lines, pointer+" "+line)
	}
	return strings.Join(lines, "\n")
}

// SelectOne lets the user pick a single choice. Space selects the item under
// the cursor; enter accepts the current selection.
type SelectOne struct {
	list
	current    string
	hasCurrent bool
	focused    bool
	styles     *theme.Styles
}

// NewSelectOne creates the widget. The first choice is selected unless def
// names another one. With no choices there is no selection.
func NewSelectOne(choices []question.Choice, def string, styles *theme.Styles) *SelectOne {
	s := &SelectOne{styles: styles}
	s.SetChoices(choices, def)
	return s
}

// SetChoices replaces the choices and resets the selection.
func (s *SelectOne) SetChoices(choices []question.Choice, def string) {
	s.choices = choices
	s.cursor, s.offset = 0, 0
	s.hasCurrent = false
	if len(choices) == 0 {
		return
	}
	s.current, s.hasCurrent = choices[0].Value, true
	s.SetValue(def)
}

// SetValue selects the choice with value v, if present.
func (s *SelectOne) SetValue(v string) bool {
	for i, c := range s.choices {
		if c.Value == v {
			s.cursor = i
			s.current, s.hasCurrent = c.Value, true
			s.scroll()
			return true
		}
	}
	return false
}

func (s *SelectOne) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused || len(s.choices) == 0 {
		return nil
	}
	if s.navigate(km) {
		return nil
	}
	if key.Matches(km, Keys.Toggle) {
		s.selectCursor()
		return nil
	}
	for _, r := range runes(km) {
		s.typeAhead(r)
	}
	return nil
}

func (s *SelectOne) selectCursor() {
	s.current, s.hasCurrent = s.choices[s.cursor].Value, true
}

// Click moves the cursor to row and selects it.
func (s *SelectOne) Click(row int) {
	if idx, ok := s.rowIndex(row); ok {
		s.cursor = idx
		s.selectCursor()
	}
}

// Commit selects the item under the cursor, so enter picks the
// highlighted choice.
func (s *SelectOne) Commit() {
	if len(s.choices) > 0 {
		s.selectCursor()
	}
}

func (s *SelectOne) View() string {
	sym := s.styles.Symbols
	return s.render(s.styles, s.focused, func(i int) string {
		if s.hasCurrent && s.choices[i].Value == s.current {
			return s.styles.Checked.Render(sym.SelectOneChecked)
		}
		return s.styles.Unchecked.Render(sym.SelectOneUnchecked)
	})
}

func (s *SelectOne) Focus() tea.Cmd {
	s.focused = true
	return nil
}

func (s *SelectOne) FocusLast() tea.Cmd { return s.Focus() }
func (s *SelectOne) Blur() { s.focused = false }
func (s *SelectOne) Focused() bool { return s.focused }
func (s *SelectOne) FocusNext() bool { return false }
func (s *SelectOne) FocusPrev() bool { return false }

// SetSize implements Sizer; height is the number of visible rows.
func (s *SelectOne) SetSize(width, height int) { s.setSize(width, height) }

func (s *SelectOne) Accepts(msg tea.KeyMsg) bool {
	return key.Matches(msg, Keys.Accept)
}

// Value returns the selected value, or nil when nothing is selected.
func (s *SelectOne) Value() any {
	if !s.hasCurrent {
		return nil
	}
	return s.current
}

// Cursor returns the highlighted index.
func (s *SelectOne) Cursor() int { return s.cursor }

// Choices returns the current choices.
func (s *SelectOne) Choices() []question.Choice { return s.choices }

package uitest

import tea "github.com/charmbracelet/bubbletea"

// Type turns text into key messages. '\n' is enter, '\t' tab, 0x7f
// backspace and ' ' space; everything else is a typed rune.
func Type(text string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(text))
	for _, r := range text {
		msgs = append(msgs, Rune(r))
	}
	return msgs
}

// Rune returns the key message for a single character.
func Rune(r rune) tea.KeyMsg {
	switch r {
	case '\n':
		return Key(tea.KeyEnter)
	case '\t':
		return Key(tea.KeyTab)
	case 0x7f:
		return Key(tea.KeyBackspace)
	case ' ':
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// Key returns a key message of type t.
func Key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// Keys repeats Key(t) n times.
func Keys(t tea.KeyType, n int) []tea.Msg {
	msgs := make([]tea.Msg, n)
	for i := range msgs {
		msgs[i] = Key(t)
	}
	return msgs
}

// Seq flattens messages and message slices into one slice.
func Seq(parts ...any) []tea.Msg {
	var out []tea.Msg
	for _, p := range parts {
		switch v := p.(type) {
		case []tea.Msg:
			out = append(out, v...)
		case tea.Msg:
			out = append(out, v)
		}
	}
	return out
}

// Click returns a left click at x, y.
func Click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

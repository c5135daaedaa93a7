package widgets

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/formulary/internal/theme"
)

// TextOptions configures a single line text input.
type TextOptions struct {
	Value       string
	Placeholder string
	Password    bool
	CharLimit   int
	Width       int
}

func newTextInput(opts TextOptions, styles *theme.Styles) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = opts.Placeholder
	ti.CharLimit = opts.CharLimit
	ti.Width = opts.Width
	ti.TextStyle = styles.Answer
	ti.PlaceholderStyle = styles.Muted
	if opts.Password {
		ti.EchoMode = textinput.EchoPassword
		mask := []rune(styles.Symbols.PasswordMask)
		if len(mask) > 0 {
			ti.EchoCharacter = mask[0]
		}
	}
	// A static cursor keeps rendering deterministic.
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(opts.Value)
	ti.CursorEnd()
	return ti
}

// TextInput is a single line input, optionally masking its content.
type TextInput struct {
	input textinput.Model
}

// NewTextInput creates a text input.
func NewTextInput(opts TextOptions, styles *theme.Styles) *TextInput {
	return &TextInput{input: newTextInput(opts, styles)}
}

func (t *TextInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd
}

func (t *TextInput) View() string { return t.input.View() }
func (t *TextInput) Focus() tea.Cmd { return t.input.Focus() }
func (t *TextInput) FocusLast() tea.Cmd { return t.input.Focus() }
func (t *TextInput) Blur() { t.input.Blur() }
func (t *TextInput) Focused() bool { return t.input.Focused() }
func (t *TextInput) FocusNext() bool { return false }
func (t *TextInput) FocusPrev() bool { return false }
func (t *TextInput) Accepts(msg tea.KeyMsg) bool {
	return key.Matches(msg, Keys.Accept)
}

// Value returns the current text.
func (t *TextInput) Value() any { return t.input.Value() }

// Text returns the current text.
func (t *TextInput) Text() string { return t.input.Value() }

// SetText replaces the content and moves the cursor to the end.
func (t *TextInput) SetText(s string) {
	t.input.SetValue(s)
	t.input.CursorEnd()
}

// TextArea is a multiline input. Enter inserts a newline; ctrl+d submits.
type TextArea struct {
	area textarea.Model
}

// NewTextArea creates a text area with the given number of visible rows.
func NewTextArea(value string, rows int, styles *theme.Styles) *TextArea {
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.Placeholder = ""
	if rows <= 0 {
		rows = 4
	}
	ta.SetHeight(rows)
	ta.FocusedStyle.Text = styles.Answer
	ta.BlurredStyle.Text = styles.Answer
	ta.FocusedStyle.CursorLine = styles.Answer
	ta.Cursor.SetMode(cursor.CursorStatic)
	ta.SetValue(value)
	return &TextArea{area: ta}
}

func (t *TextArea) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	t.area, cmd = t.area.Update(msg)
	return cmd
}

func (t *TextArea) View() string { return t.area.View() }
func (t *TextArea) Focus() tea.Cmd { return t.area.Focus() }
func (t *TextArea) FocusLast() tea.Cmd { return t.area.Focus() }
func (t *TextArea) Blur() { t.area.Blur() }
func (t *TextArea) Focused() bool { return t.area.Focused() }
func (t *TextArea) FocusNext() bool { return false }
func (t *TextArea) FocusPrev() bool { return false }
func (t *TextArea) Accepts(msg tea.KeyMsg) bool {
	return key.Matches(msg, Keys.Submit)
}

// Value returns the current text.
func (t *TextArea) Value() any { return t.area.Value() }

// SetText replaces the content.
func (t *TextArea) SetText(s string) { t.area.SetValue(s) }

// SetSize implements Sizer.
func (t *TextArea) SetSize(width, _ int) {
	if width > 0 {
		t.area.SetWidth(width)
	}
}

// RePassword asks for a password twice. Enter on the first input moves to
// the confirmation input; enter there submits.
type RePassword struct {
	inputs  [2]textinput.Model
	labels  [2]string
	focus   int
	focused bool
	styles  *theme.Styles
}

// NewRePassword creates the pair of masked inputs.
func NewRePassword(value, confirmLabel string, styles *theme.Styles) *RePassword {
	opts := TextOptions{Value: value, Password: true}
	r := &RePassword{styles: styles}
	r.inputs[0] = newTextInput(opts, styles)
	r.inputs[1] = newTextInput(opts, styles)
	r.labels[1] = confirmLabel
	return r
}

func (r *RePassword) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok && r.focus == 0 && key.Matches(km, Keys.Accept) {
		r.FocusNext()
		return nil
	}
	var cmd tea.Cmd
	r.inputs[r.focus], cmd = r.inputs[r.focus].Update(msg)
	return cmd
}

func (r *RePassword) View() string {
	confirm := r.inputs[1].View()
	if r.labels[1] != "" {
		confirm = r.styles.Question.Render(r.labels[1]) + " " + confirm
	}
	return r.inputs[0].View() + "\n" + confirm
}

func (r *RePassword) Focus() tea.Cmd {
	return r.focusAt(0)
}

func (r *RePassword) FocusLast() tea.Cmd {
	return r.focusAt(1)
}

func (r *RePassword) focusAt(i int) tea.Cmd {
	r.inputs[1-i].Blur()
	r.focus = i
	r.focused = true
	return r.inputs[i].Focus()
}

func (r *RePassword) Blur() {
	r.focused = false
	r.inputs[0].Blur()
	r.inputs[1].Blur()
}

func (r *RePassword) Focused() bool { return r.focused }

func (r *RePassword) FocusNext() bool {
	if r.focus == 1 {
		return false
	}
	r.focusAt(1)
	return true
}

func (r *RePassword) FocusPrev() bool {
	if r.focus == 0 {
		return false
	}
	r.focusAt(0)
	return true
}

func (r *RePassword) Accepts(msg tea.KeyMsg) bool {
	return r.focus == 1 && key.Matches(msg, Keys.Accept)
}

// Value returns the first password.
func (r *RePassword) Value() any { return r.inputs[0].Value() }

// Confirmation returns the repeated password.
func (r *RePassword) Confirmation() string { return r.inputs[1].Value() }

// Matches reports whether both entries are equal.
func (r *RePassword) Matches() bool {
	return r.inputs[0].Value() == r.inputs[1].Value()
}

package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/formulary/internal/theme"
	"github.com/muurk/formulary/internal/widgets"
)

// keyMap defines key bindings for the wizard
type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Left   key.Binding
	Right  key.Binding
	Press  key.Binding
	Cancel key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Press, k.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Left, k.Right, k.Press, k.Cancel},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Next:  widgets.Keys.Next,
		Prev:  widgets.Keys.Prev,
		Left:  widgets.Keys.Left,
		Right: widgets.Keys.Right,
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// Layout constants
const (
	sidebarWidth  = 24
	minFrameWidth = 60
	// rows below the body: blank, status, divider, buttons, bottom border, help
	chromeBelow = 6
)

// Model is the Bubble Tea model of a wizard. It routes input to the
// current step's widget and to the buttons, and drives the Dialog.
type Model struct {
	d      *Dialog
	styles *theme.Styles
	keys   keyMap
	help   help.Model

	// onButtons is true while a button, rather than the widget, has focus.
	onButtons bool
	button    int
	err       error

	Width  int
	Height int
}

// NewModel creates the model for d.
func NewModel(d *Dialog, styles *theme.Styles) *Model {
	h := help.New()
	h.Styles.ShortKey = styles.Muted
	h.Styles.ShortDesc = styles.Muted
	h.Styles.ShortSeparator = styles.Muted
	return &Model{d: d, styles: styles, keys: newKeyMap(), help: h}
}

// Dialog returns the state machine behind the model.
func (m *Model) Dialog() *Dialog { return m.d }

// Err returns an error raised while moving between steps.
func (m *Model) Err() error { return m.err }

// FocusedButton returns the focused button, if a button has focus.
func (m *Model) FocusedButton() (Button, bool) {
	if !m.onButtons {
		return 0, false
	}
	return m.d.Buttons()[m.button], true
}

func (m *Model) widget() widgets.Widget {
	h := m.d.CurrentStep().Handler
	if h == nil {
		return nil
	}
	return h.Widget()
}

// Init focuses the first step
func (m *Model) Init() tea.Cmd {
	return m.focusStep()
}

// focusStep gives focus to the current step's widget, or to the first
// button on pages without one.
func (m *Model) focusStep() tea.Cmd {
	m.button = 0
	w := m.widget()
	if w == nil {
		m.onButtons = true
		return nil
	}
	m.onButtons = false
	m.resize()
	return w.Focus()
}

// Update handles all messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.MouseMsg:
		return m, m.click(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	if w := m.widget(); w != nil && !m.onButtons {
		return m, w.Update(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Cancel) {
		return m.press(ButtonCancel)
	}

	w := m.widget()
	if m.onButtons {
		buttons := m.d.Buttons()
		switch {
		case key.Matches(msg, m.keys.Press):
			return m.press(buttons[m.button])
		case key.Matches(msg, m.keys.Left):
			m.button = max(m.button-1, 0)
		case key.Matches(msg, m.keys.Right):
			m.button = min(m.button+1, len(buttons)-1)
		case key.Matches(msg, m.keys.Next):
			if m.button < len(buttons)-1 {
				m.button++
			} else if w != nil {
				m.onButtons = false
				return w.Focus()
			} else {
				m.button = 0
			}
		case key.Matches(msg, m.keys.Prev):
			if m.button > 0 {
				m.button--
			} else if w != nil {
				m.onButtons = false
				return w.FocusLast()
			} else {
				m.button = len(buttons) - 1
			}
		}
		return nil
	}

	switch {
	case w.Accepts(msg):
		if c, ok := w.(widgets.Committer); ok {
			c.Commit()
		}
		return m.press(ButtonNext)
	case key.Matches(msg, m.keys.Next):
		if !w.FocusNext() {
			w.Blur()
			m.onButtons = true
			m.button = 0
		}
		return nil
	case key.Matches(msg, m.keys.Prev):
		if !w.FocusPrev() {
			w.Blur()
			m.onButtons = true
			m.button = len(m.d.Buttons()) - 1
		}
		return nil
	}
	return w.Update(msg)
}

// press runs the action of b and refocuses after a step change.
func (m *Model) press(b Button) tea.Cmd {
	before := m.d.Current()
	switch b {
	case ButtonCancel:
		m.d.Cancel()
	case ButtonPrevious:
		m.d.Previous()
	case ButtonNext:
		if err := m.d.Next(); err != nil {
			m.err = err
			m.d.Cancel()
		}
	}

	if m.d.Outcome() != Running {
		if w := m.widget(); w != nil {
			w.Blur()
		}
		return tea.Quit
	}
	if m.d.Current() == before {
		return nil
	}
	if w := m.d.Steps()[before].Handler; w != nil {
		w.Widget().Blur()
	}
	return m.focusStep()
}

func (m *Model) click(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	c, ok := m.widget().(widgets.Clickable)
	if !ok {
		return nil
	}
	row := msg.Y - m.bodyTop() - lipgloss.Height(m.stepHeader())
	if row < 0 {
		return nil
	}
	var cmd tea.Cmd
	if m.onButtons {
		m.onButtons = false
		cmd = m.widget().Focus()
	}
	c.Click(row)
	return cmd
}

func (m *Model) resize() {
	s, ok := m.widget().(widgets.Sizer)
	if !ok || m.Height == 0 {
		return
	}
	rows := m.Height - m.bodyTop() - chromeBelow - lipgloss.Height(m.stepHeader())
	s.SetSize(m.bodyWidth(), max(rows, 1))
}

// bodyTop is the first screen row of the step body: the frame's top
// border and padding, the title and a blank line.
func (m *Model) bodyTop() int {
	return m.styles.Frame.GetBorderTopSize() + m.styles.Frame.GetPaddingTop() + 2
}

func (m *Model) frameWidth() int {
	return max(m.Width, minFrameWidth)
}

func (m *Model) bodyWidth() int {
	// border, padding and the sidebar with its separator
	return m.frameWidth() - 4 - sidebarWidth - 2
}

func (m *Model) stepHeader() string {
	step := m.d.CurrentStep()
	if step.Handler == nil {
		return ""
	}
	q := step.Handler.Question()
	text := q.Message
	if text == "" {
		text = step.Label
	}
	header := m.styles.Question.Render(strings.TrimSpace(m.styles.Symbols.DialogQuestionMark + " " + text))
	if q.Description != "" {
		header += "\n" + m.styles.Description.Render(q.Description)
	}
	return header
}

func (m *Model) stepList() string {
	lines := make([]string, len(m.d.Steps()))
	for i, s := range m.d.Steps() {
		label := fmt.Sprintf("%d. %s", i+1, s.Label)
		switch m.d.StepState(i) {
		case StepCurrent:
			lines[i] = m.styles.StepCurrent.Render(label)
		case StepDisabled:
			lines[i] = m.styles.StepDisabled.Render(label)
		default:
			lines[i] = m.styles.StepNormal.Render(label)
		}
	}
	return m.styles.Sidebar.Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

func (m *Model) body() string {
	step := m.d.CurrentStep()
	switch step.Kind {
	case StepIntro:
		return lipgloss.NewStyle().Width(m.bodyWidth()).Render(m.d.Intro())
	case StepSummary:
		return lipgloss.NewStyle().Width(m.bodyWidth()).Render(m.d.Summary())
	}
	return m.stepHeader() + "\n" + step.Handler.Widget().View()
}

func (m *Model) buttons() string {
	parts := make([]string, 0, 3)
	for i, b := range m.d.Buttons() {
		text := "< " + m.d.ButtonText(b) + " >"
		if m.onButtons && i == m.button {
			parts = append(parts, m.styles.ButtonFocused.Render(text))
		} else {
			parts = append(parts, m.styles.Button.Render(text))
		}
	}
	return strings.Join(parts, " ")
}

// View renders the frame: title, step list, current step, status line and
// buttons.
func (m *Model) View() string {
	top := lipgloss.JoinHorizontal(lipgloss.Top, m.stepList(), m.body())
	status := ""
	if e := m.d.Error(); e != "" {
		status = m.styles.Status.Render(e)
	}
	inner := m.frameWidth() - 4
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(m.d.Title()),
		"",
		top,
		"",
		status,
		m.styles.Muted.Render(strings.Repeat("─", inner)),
		m.buttons(),
	)
	return m.styles.Frame.Width(m.frameWidth()-2).Render(content) + "\n" + m.help.View(m.keys)
}

package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/formulary/internal/handlers"
	"github.com/muurk/formulary/internal/theme"
	"github.com/muurk/formulary/internal/widgets"
)

type keyMap struct {
	Accept key.Binding
	Next   key.Binding
	Prev   key.Binding
	Cancel key.Binding
}

func newKeyMap(w widgets.Widget) keyMap {
	accept := widgets.Keys.Accept
	if _, ok := w.(*widgets.TextArea); ok {
		accept = widgets.Keys.Submit
	}
	return keyMap{
		Accept: accept,
		Next:   widgets.Keys.Next,
		Prev:   widgets.Keys.Prev,
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Cancel}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Accept, k.Next, k.Prev, k.Cancel}}
}

// model shows a single question until it is accepted or cancelled.
type model struct {
	h      handlers.Handler
	styles *theme.Styles
	keys   keyMap
	help   help.Model
	err    string

	accepted  bool
	cancelled bool
	width     int
}

func newModel(h handlers.Handler, styles *theme.Styles, errMsg string) *model {
	hm := help.New()
	hm.Styles.ShortKey = styles.Muted
	hm.Styles.ShortDesc = styles.Muted
	hm.Styles.ShortSeparator = styles.Muted
	return &model{
		h:      h,
		styles: styles,
		keys:   newKeyMap(h.Widget()),
		help:   hm,
		err:    errMsg,
	}
}

func (m *model) Init() tea.Cmd {
	return m.h.Widget().Focus()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	w := m.h.Widget()
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case w.Accepts(msg):
			if c, ok := w.(widgets.Committer); ok {
				c.Commit()
			}
			m.accepted = true
			w.Blur()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			w.FocusNext()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			w.FocusPrev()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		if s, ok := w.(widgets.Sizer); ok {
			s.SetSize(msg.Width, max(msg.Height-lipgloss.Height(m.header())-3, 1))
		}
		return m, nil
	}
	return m, w.Update(msg)
}

func (m *model) header() string {
	q := m.h.Question()
	text := q.Message
	if text == "" {
		text = m.h.Label()
	}
	line := m.styles.Question.Render(strings.TrimSpace(m.styles.Symbols.QuestionMark + " " + text))
	if q.Description != "" {
		line += "\n" + m.styles.Description.Render(q.Description)
	}
	return line
}

func (m *model) View() string {
	if m.accepted {
		return m.header() + " " + m.styles.Answer.Render(m.h.Formatted()) + "\n"
	}
	if m.cancelled {
		return m.header() + "\n"
	}

	var b strings.Builder
	b.WriteString(m.header())
	if _, inline := m.h.Widget().(*widgets.TextInput); inline {
		b.WriteString(" ")
	} else {
		b.WriteString("\n")
	}
	b.WriteString(m.h.Widget().View())
	b.WriteString("\n")
	if m.err != "" {
		b.WriteString(m.styles.Error.Render(m.err))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

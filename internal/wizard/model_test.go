package wizard

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/muurk/formulary/internal/question"
	"github.com/muurk/formulary/internal/theme"
	"github.com/muurk/formulary/internal/ui/uitest"
)

func run(t *testing.T, s *uitest.Script, opts Options, qs ...*question.Question) (question.Answers, bool, error) {
	t.Helper()
	return Run(context.Background(), qs, opts, Config{Styles: theme.Plain(), Loop: s})
}

func colors() *question.Question {
	return &question.Question{
		Name:   "color",
		Type:   "selectone",
		Values: question.Literal([]question.Choice{{Value: "r", Label: "Red"}, {Value: "b", Label: "Blue"}}),
	}
}

func TestWizardEndToEnd(t *testing.T) {
	name := input("name", nil)
	name.Validators = required
	s := uitest.New(uitest.Seq(uitest.Type("Jo\n"), uitest.Key(tea.KeyDown), uitest.Key(tea.KeyEnter))...)

	answers, ok, err := run(t, s, Options{Title: "Profile"}, name, colors())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, question.Answers{"name": "Jo", "color": "b"}, answers)
	require.Equal(t, 1, s.Runs)
}

func TestWizardShowsValidationError(t *testing.T) {
	name := input("name", nil)
	name.Validators = required
	s := uitest.New(uitest.Type("\n")...)

	_, ok, err := run(t, s, Options{Title: "Profile"}, name)
	require.ErrorIs(t, err, uitest.ErrExhausted)
	require.False(t, ok)
	require.Contains(t, s.Views[0], "this field is required")
	require.Contains(t, s.Views[0], "Profile - 1 of 1")
}

func TestWizardCancel(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		s := uitest.New(uitest.Seq(uitest.Type("x\n"), uitest.Key(k))...)
		answers, ok, err := run(t, s, Options{Title: "t"}, input("a", nil), input("b", nil))
		require.NoError(t, err)
		require.False(t, ok)
		require.Nil(t, answers)
	}
}

func TestWizardCancelButton(t *testing.T) {
	// tab leaves the text input for the buttons: Next, then Cancel.
	s := uitest.New(uitest.Seq(uitest.Key(tea.KeyTab), uitest.Key(tea.KeyRight), uitest.Key(tea.KeyEnter))...)
	_, ok, err := run(t, s, Options{Title: "t"}, input("a", "x"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestWizardPreviousButton(t *testing.T) {
	s := uitest.New(uitest.Seq(
		uitest.Key(tea.KeyEnter),
		uitest.Key(tea.KeyTab), uitest.Key(tea.KeyRight), uitest.Key(tea.KeyEnter),
		uitest.Type("y\n"),
		uitest.Key(tea.KeyEnter),
	)...)
	answers, ok, err := run(t, s, Options{Title: "t"}, input("a", "x"), input("b", "z"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, question.Answers{"a": "xy", "b": "z"}, answers)
}

func TestWizardIntroAndSummary(t *testing.T) {
	s := uitest.New(uitest.Type("\nJo\n\n")...)
	answers, ok, err := run(t, s, Options{Title: "t", Intro: "Welcome", Summary: true}, input("name", nil))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, question.Answers{"name": "Jo"}, answers)
	require.Contains(t, s.Views[0], "Name: Jo")
}

func TestModelView(t *testing.T) {
	d := newDialog(t, Options{Title: "Setup", Intro: "Welcome aboard"}, input("name", nil), colors())
	m := NewModel(d, theme.Plain())
	m.Init()

	view := m.View()
	require.Contains(t, view, "Setup - 1 of 3")
	require.Contains(t, view, "Welcome aboard")
	require.Contains(t, view, "1. Introduction")
	require.Contains(t, view, "3. Color")
	require.Contains(t, view, "< Next >")
	require.Contains(t, view, "< Cancel >")
	require.NotContains(t, view, "< Previous >")

	b, ok := m.FocusedButton()
	require.True(t, ok)
	require.Equal(t, ButtonNext, b)
}

func TestModelTabCycle(t *testing.T) {
	d := newDialog(t, Options{Title: "t"}, input("a", "x"), input("b", "y"))
	m := NewModel(d, theme.Plain())
	m.Init()
	m.Update(uitest.Key(tea.KeyEnter))
	require.Equal(t, 1, d.Current())

	_, focused := m.FocusedButton()
	require.False(t, focused)
	require.True(t, d.CurrentStep().Handler.Widget().Focused())

	want := []Button{ButtonNext, ButtonPrevious, ButtonCancel}
	for _, b := range want {
		m.Update(uitest.Key(tea.KeyTab))
		got, ok := m.FocusedButton()
		require.True(t, ok)
		require.Equal(t, b, got)
	}
	m.Update(uitest.Key(tea.KeyTab))
	_, focused = m.FocusedButton()
	require.False(t, focused, "focus wraps to the widget")

	m.Update(uitest.Key(tea.KeyShiftTab))
	got, _ := m.FocusedButton()
	require.Equal(t, ButtonCancel, got)
}

func TestModelClick(t *testing.T) {
	d := newDialog(t, Options{Title: "t"}, colors())
	m := NewModel(d, theme.Plain())
	m.Init()

	// title, blank, then the "Color" header: choices start on row 3
	m.Update(uitest.Click(30, 4))
	require.Equal(t, "b", d.CurrentStep().Handler.Value())

	m.Update(uitest.Click(30, 0))
	require.Equal(t, "b", d.CurrentStep().Handler.Value())
}

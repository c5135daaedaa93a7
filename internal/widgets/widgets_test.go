package widgets

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/muurk/formulary/internal/question"
	"github.com/muurk/formulary/internal/theme"
)

func keyType(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func typeText(w Widget, s string) {
	for _, r := range s {
		if r == ' ' {
			w.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(w Widget, t tea.KeyType, n int) {
	for i := 0; i < n; i++ {
		w.Update(keyType(t))
	}
}

func fruits() []question.Choice {
	return []question.Choice{
		{Value: "apple", Label: "Apple"},
		{Value: "banana", Label: "Banana"},
		{Value: "avocado", Label: "Avocado"},
		{Value: "cherry", Label: "Cherry"},
		{Value: "date", Label: "Date"},
	}
}

func TestSelectOneBoundaries(t *testing.T) {
	s := NewSelectOne(fruits(), "", theme.Plain())
	s.Focus()

	press(s, tea.KeyUp, 1)
	require.Equal(t, 0, s.Cursor())

	press(s, tea.KeyDown, 10)
	require.Equal(t, 4, s.Cursor())

	press(s, tea.KeyDown, 1)
	require.Equal(t, 4, s.Cursor())
}

func TestSelectOnePaging(t *testing.T) {
	s := NewSelectOne(fruits(), "", theme.Plain())
	s.SetSize(40, 2)
	s.Focus()

	press(s, tea.KeyPgDown, 1)
	require.Equal(t, 2, s.Cursor())
	press(s, tea.KeyPgDown, 1)
	require.Equal(t, 4, s.Cursor())
	press(s, tea.KeyPgDown, 1)
	require.Equal(t, 4, s.Cursor())
	press(s, tea.KeyPgUp, 1)
	require.Equal(t, 2, s.Cursor())
}

func TestSelectOneTypeAhead(t *testing.T) {
	s := NewSelectOne(fruits(), "", theme.Plain())
	s.Focus()

	typeText(s, "a")
	require.Equal(t, 2, s.Cursor(), "scan starts after the cursor")

	typeText(s, "A")
	require.Equal(t, 0, s.Cursor(), "scan wraps around")

	press(s, tea.KeyDown, 4)
	typeText(s, "a")
	require.Equal(t, 0, s.Cursor(), "from the last item")

	typeText(s, "z")
	require.Equal(t, 0, s.Cursor(), "no match leaves the cursor")
}

func TestSelectOneSelection(t *testing.T) {
	s := NewSelectOne(fruits(), "cherry", theme.Plain())
	require.Equal(t, "cherry", s.Value())
	require.Equal(t, 3, s.Cursor())

	// keys are ignored without focus
	press(s, tea.KeyUp, 1)
	require.Equal(t, 3, s.Cursor())

	s.Focus()
	press(s, tea.KeyUp, 2)
	require.Equal(t, "cherry", s.Value(), "moving does not select")
	typeText(s, " ")
	require.Equal(t, "banana", s.Value())

	s.Click(4)
	require.Equal(t, "date", s.Value())
	require.Equal(t, 4, s.Cursor())

	require.True(t, s.Accepts(keyType(tea.KeyEnter)))
	require.False(t, s.Accepts(keyType(tea.KeySpace)))

	press(s, tea.KeyUp, 1)
	s.Commit()
	require.Equal(t, "cherry", s.Value())
}

func TestSelectOneDefaultsToFirst(t *testing.T) {
	s := NewSelectOne(fruits(), "missing", theme.Plain())
	require.Equal(t, "apple", s.Value())
}

func TestSelectOneEmpty(t *testing.T) {
	s := NewSelectOne(nil, "", theme.Plain())
	s.Focus()
	press(s, tea.KeyDown, 1)
	typeText(s, "a ")
	s.Click(0)
	s.Commit()
	require.Nil(t, s.Value())
	require.NotPanics(t, func() { _ = s.View() })

	s.SetChoices(fruits(), "banana")
	require.Equal(t, "banana", s.Value())
}

func TestSelectOneView(t *testing.T) {
	s := NewSelectOne(fruits()[:2], "banana", theme.Plain())
	require.Equal(t, "  ( ) Apple\n  (✓) Banana", s.View())
}

func TestSelectManyToggle(t *testing.T) {
	s := NewSelectMany(fruits(), []string{"date", "unknown"}, theme.Plain())
	require.Equal(t, []string{"date"}, s.Value())

	s.Focus()
	typeText(s, " ")
	press(s, tea.KeyDown, 2)
	typeText(s, " ")
	require.Equal(t, []string{"apple", "avocado", "date"}, s.Value())

	typeText(s, " ")
	require.Equal(t, []string{"apple", "date"}, s.Value())

	s.Click(1)
	require.Equal(t, 1, s.Cursor())
	require.Equal(t, []string{"apple", "banana", "date"}, s.Value())
}

func TestSelectManyTypeAheadAndSpace(t *testing.T) {
	s := NewSelectMany([]question.Choice{
		{Value: "r", Label: "Red"},
		{Value: "s", Label: "Silver"},
		{Value: "t", Label: "Teal"},
	}, nil, theme.Plain())
	s.Focus()

	typeText(s, "S T ")
	require.Equal(t, 2, s.Cursor())
	require.Equal(t, []string{"s", "t"}, s.Value())
}

func TestSelectManyButtons(t *testing.T) {
	s := NewSelectMany(fruits(), nil, theme.Plain())
	s.Focus()
	require.Equal(t, "", s.FocusedButton())

	require.True(t, s.FocusNext())
	require.Equal(t, "All", s.FocusedButton())
	require.False(t, s.Accepts(keyType(tea.KeyEnter)), "enter presses the button")
	s.Update(keyType(tea.KeyEnter))
	require.Len(t, s.Value(), 5)

	s.Update(keyType(tea.KeyRight))
	require.Equal(t, "None", s.FocusedButton())
	typeText(s, " ")
	require.Empty(t, s.Value())

	require.False(t, s.FocusNext())
	require.True(t, s.FocusPrev())
	require.True(t, s.FocusPrev())
	require.False(t, s.FocusPrev())
	require.True(t, s.Accepts(keyType(tea.KeyEnter)))

	s.FocusLast()
	require.Equal(t, "None", s.FocusedButton())
}

func TestSelectManyBulk(t *testing.T) {
	s := NewSelectMany(fruits(), nil, theme.Plain())
	s.SelectAll()
	require.Equal(t, []string{"apple", "banana", "avocado", "cherry", "date"}, s.Checked())
	s.SelectNone()
	require.Equal(t, []string{}, s.Checked())
}

func newDateMask(t *testing.T) *MaskedInput {
	t.Helper()
	m, err := NewMaskedInput(DateMask, "", Digits, theme.Plain())
	require.NoError(t, err)
	m.Focus()
	return m
}

func TestMaskedInputRoundTrip(t *testing.T) {
	m := newDateMask(t)
	require.Nil(t, m.Value())
	require.Equal(t, "____-__-__", m.View())

	typeText(m, "20200101")
	require.Equal(t, "2020-01-01", m.Value())
	require.True(t, m.Complete())
	require.Equal(t, 2, m.FocusedSegment())
}

func TestMaskedInputFiltering(t *testing.T) {
	m := newDateMask(t)
	typeText(m, "2a0b2c0")
	require.Equal(t, "2020--", m.Value())
	require.Equal(t, 1, m.FocusedSegment(), "full segment advances focus")

	typeText(m, "0101999")
	require.Equal(t, "2020-01-01", m.Value(), "a full last segment rejects input")
}

func TestMaskedInputPartial(t *testing.T) {
	m := newDateMask(t)
	typeText(m, "20")
	require.Equal(t, "20--", m.Value())
	require.False(t, m.Complete())
	require.Equal(t, "20__-__-__", m.View())
}

func TestMaskedInputBackspace(t *testing.T) {
	tests := []struct {
		name       string
		backspaces int
		retype     string
		want       string
	}{
		{"into previous segment", 3, "201", "2020-02-01"},
		{"through every segment", 9, "20220706", "2022-07-06"},
		{"more than needed", 20, "19991231", "1999-12-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newDateMask(t)
			typeText(m, "20200101")
			press(m, tea.KeyBackspace, tt.backspaces)
			typeText(m, tt.retype)
			require.Equal(t, tt.want, m.Value())
		})
	}
}

func TestMaskedInputBackspaceToEmpty(t *testing.T) {
	m := newDateMask(t)
	typeText(m, "2020")
	press(m, tea.KeyBackspace, 4)
	require.Nil(t, m.Value())
}

func TestMaskedInputSegmentFocus(t *testing.T) {
	m := newDateMask(t)
	require.True(t, m.FocusNext())
	require.True(t, m.FocusNext())
	require.False(t, m.FocusNext())
	typeText(m, "31")
	require.Equal(t, "--31", m.Value())

	m.Update(keyType(tea.KeyLeft))
	require.Equal(t, 1, m.FocusedSegment())
	m.Update(keyType(tea.KeyRight))
	require.Equal(t, 2, m.FocusedSegment())
	m.Focus()
	require.False(t, m.FocusPrev())
}

func TestMaskedInputSetValue(t *testing.T) {
	m := newDateMask(t)

	require.NoError(t, m.SetValue("2021-03-04"))
	require.Equal(t, "2021-03-04", m.Value())

	require.NoError(t, m.SetValue("20211231"))
	require.Equal(t, "2021-12-31", m.Value())

	err := m.SetValue("2021-03")
	require.True(t, errors.Is(err, ErrMaskLength))

	err = m.SetValue("abcd-ef-gh")
	require.True(t, errors.Is(err, ErrMaskChars))
	require.Equal(t, "2021-12-31", m.Value(), "failed set keeps the value")

	require.NoError(t, m.SetValue(""))
	require.Nil(t, m.Value())
}

func TestMaskedInputCustomPlaceholder(t *testing.T) {
	m, err := NewMaskedInput("(###) ###", "#", "", theme.Plain())
	require.NoError(t, err)
	m.Focus()
	typeText(m, "55512")
	require.Equal(t, "(555) 12", m.Value())
	require.Equal(t, "(555) 12#", m.View())
}

func TestMaskedInputInvalidMask(t *testing.T) {
	_, err := NewMaskedInput("----", "", "", theme.Plain())
	require.Error(t, err)

	_, err = NewMaskedInput("__", "ab", "", theme.Plain())
	require.Error(t, err)
}

func TestDateRange(t *testing.T) {
	d := NewDateRange("", "", theme.Plain())
	require.Equal(t, map[string]any{"from": nil, "to": nil}, d.Value())

	d.Focus()
	typeText(d, "20200101")
	require.True(t, d.FocusNext(), "tab moves from the last from segment to to")
	typeText(d, "2020x1231")
	require.Equal(t, map[string]any{"from": "2020-01-01", "to": "2020-12-31"}, d.Value())
	require.False(t, d.FocusNext())

	require.True(t, d.FocusPrev())
	require.True(t, d.FocusPrev())
	require.True(t, d.FocusPrev(), "back into from")
	require.Equal(t, 2, d.From().FocusedSegment())

	require.Equal(t, "From: 2020-01-01  To: 2020-12-31", d.View())
}

func TestDateRangeSetValue(t *testing.T) {
	d := NewDateRange("Start", "End", theme.Plain())
	require.NoError(t, d.SetValue("2020-01-01", ""))
	require.Equal(t, map[string]any{"from": "2020-01-01", "to": nil}, d.Value())

	err := d.SetValue("2020-01-01", "2020")
	require.ErrorIs(t, err, ErrMaskLength)
}

func TestTextInput(t *testing.T) {
	ti := NewTextInput(TextOptions{Value: "ab"}, theme.Plain())
	ti.Focus()
	typeText(ti, "c d")
	require.Equal(t, "abc d", ti.Value())
	press(ti, tea.KeyBackspace, 1)
	require.Equal(t, "abc ", ti.Text())

	require.True(t, ti.Accepts(keyType(tea.KeyEnter)))
	ti.SetText("x")
	require.Equal(t, "x", ti.Value())
}

func TestTextArea(t *testing.T) {
	ta := NewTextArea("", 0, theme.Plain())
	ta.Focus()
	typeText(ta, "one")
	ta.Update(keyType(tea.KeyEnter))
	typeText(ta, "two")
	require.Equal(t, "one\ntwo", ta.Value())
	require.False(t, ta.Accepts(keyType(tea.KeyEnter)))
	require.True(t, ta.Accepts(keyType(tea.KeyCtrlD)))
}

func TestRePassword(t *testing.T) {
	r := NewRePassword("", "Confirm", theme.Plain())
	r.Focus()
	typeText(r, "secret")
	require.False(t, r.Accepts(keyType(tea.KeyEnter)))
	r.Update(keyType(tea.KeyEnter))
	typeText(r, "secreT")
	require.True(t, r.Accepts(keyType(tea.KeyEnter)))
	require.False(t, r.Matches())

	press(r, tea.KeyBackspace, 1)
	typeText(r, "t")
	require.True(t, r.Matches())
	require.Equal(t, "secret", r.Value())
	require.NotContains(t, r.View(), "secret")
}

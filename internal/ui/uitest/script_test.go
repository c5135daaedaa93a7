package uitest

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type echoMsg string

// recorder collects typed runes and quits on enter.
type recorder struct {
	typed string
}

func (r *recorder) Init() tea.Cmd { return nil }

func (r *recorder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			return r, tea.Quit
		case tea.KeyTab:
			return r, func() tea.Msg { return echoMsg("<tab>") }
		}
		r.typed += msg.String()
	case echoMsg:
		r.typed += string(msg)
	}
	return r, nil
}

func (r *recorder) View() string { return r.typed }

func TestScriptAcrossRuns(t *testing.T) {
	s := New(Type("ab\n c\td\n")...)

	m, err := s.Run(context.Background(), &recorder{})
	if err != nil {
		t.Fatal(err)
	}
	if got := m.(*recorder).typed; got != "ab" {
		t.Errorf("first run typed %q, want %q", got, "ab")
	}

	m, err = s.Run(context.Background(), &recorder{})
	if err != nil {
		t.Fatal(err)
	}
	if got := m.(*recorder).typed; got != " c<tab>d" {
		t.Errorf("second run typed %q, want %q", got, " c<tab>d")
	}
	if s.Runs != 2 || s.Remaining() != 0 {
		t.Errorf("Runs = %d, Remaining = %d", s.Runs, s.Remaining())
	}
	if len(s.Views) != 2 || s.Views[1] != " c<tab>d" {
		t.Errorf("Views = %q", s.Views)
	}
}

func TestScriptExhausted(t *testing.T) {
	s := New(Type("x")...)
	_, err := s.Run(context.Background(), &recorder{})
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("err = %v, want ErrExhausted", err)
	}
}

func TestScriptCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := New(Type("x\n")...)
	_, err := s.Run(ctx, &recorder{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestSeq(t *testing.T) {
	msgs := Seq(Type("ab"), Key(tea.KeyDown), Keys(tea.KeyUp, 2))
	if len(msgs) != 5 {
		t.Fatalf("len = %d, want 5", len(msgs))
	}
}

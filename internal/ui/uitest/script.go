// Package uitest drives Bubble Tea models with scripted input.
package uitest

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrExhausted is returned when a model is still running after the script
// ran out of messages.
var ErrExhausted = errors.New("uitest: script exhausted before the model quit")

// Script is a ui.Loop fed from a queue of messages. The queue is shared
// across Run calls, so a session that runs several models in turn can be
// scripted in one go.
type Script struct {
	msgs []tea.Msg
	// Runs counts the Run calls.
	Runs int
	// Views holds the last view of every run.
	Views []string
}

// New creates a script.
func New(msgs ...tea.Msg) *Script {
	return &Script{msgs: msgs}
}

// Push appends messages to the queue.
func (s *Script) Push(msgs ...tea.Msg) {
	s.msgs = append(s.msgs, msgs...)
}

// Remaining returns the number of queued messages.
func (s *Script) Remaining() int { return len(s.msgs) }

// Run feeds queued messages to model until a command resolves to
// tea.Quit. Commands are executed synchronously and the messages they
// produce are delivered before the rest of the script.
func (s *Script) Run(ctx context.Context, model tea.Model) (tea.Model, error) {
	s.Runs++
	pending := []tea.Msg{}
	quit := s.exec(model.Init(), &pending)

	for !quit {
		if err := ctx.Err(); err != nil {
			return model, err
		}
		var msg tea.Msg
		switch {
		case len(pending) > 0:
			msg, pending = pending[0], pending[1:]
		case len(s.msgs) > 0:
			msg, s.msgs = s.msgs[0], s.msgs[1:]
		default:
			s.Views = append(s.Views, model.View())
			return model, ErrExhausted
		}
		var cmd tea.Cmd
		model, cmd = model.Update(msg)
		quit = s.exec(cmd, &pending)
	}
	s.Views = append(s.Views, model.View())
	return model, nil
}

// exec runs cmd and reports whether it asked to quit. Other messages are
// queued in pending.
func (s *Script) exec(cmd tea.Cmd, pending *[]tea.Msg) bool {
	if cmd == nil {
		return false
	}
	switch msg := cmd().(type) {
	case nil:
		return false
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		quit := false
		for _, c := range msg {
			if s.exec(c, pending) {
				quit = true
			}
		}
		return quit
	default:
		*pending = append(*pending, msg)
		return false
	}
}

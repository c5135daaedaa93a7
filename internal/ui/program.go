package ui

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Loop runs a Bubble Tea model until it quits and returns the final model.
// Forms depend on Loop rather than on tea.Program so tests can feed
// scripted input.
type Loop interface {
	Run(ctx context.Context, model tea.Model) (tea.Model, error)
}

// ProgramLoop runs models with a real tea.Program.
type ProgramLoop struct {
	In  io.Reader
	Out io.Writer
	// AltScreen renders full screen, as the wizard does.
	AltScreen bool
	// Mouse enables click events.
	Mouse bool
}

// NewProgramLoop creates a loop on stdin and stderr. Stdout stays free for
// the answers.
func NewProgramLoop() *ProgramLoop {
	return &ProgramLoop{In: os.Stdin, Out: os.Stderr}
}

// Run implements Loop. Cancelling ctx stops the program and returns
// ctx.Err().
func (l *ProgramLoop) Run(ctx context.Context, model tea.Model) (tea.Model, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if l.In != nil {
		opts = append(opts, tea.WithInput(l.In))
	}
	if l.Out != nil {
		opts = append(opts, tea.WithOutput(l.Out))
	}
	if l.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if l.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	final, err := tea.NewProgram(model, opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return final, ctx.Err()
	}
	return final, err
}

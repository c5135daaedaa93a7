package wizard

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/muurk/formulary/internal/handlers"
	"github.com/muurk/formulary/internal/logging"
	"github.com/muurk/formulary/internal/question"
	"github.com/muurk/formulary/internal/theme"
	"github.com/muurk/formulary/internal/ui"
	"github.com/muurk/formulary/internal/validators"
)

// Config holds the collaborators of a wizard run. Zero fields get the
// built-in registries, the default theme and a full screen terminal loop.
type Config struct {
	Types      *handlers.Registry
	Validators question.ValidatorResolver
	Styles     *theme.Styles
	Loop       ui.Loop
}

func (c Config) withDefaults() Config {
	if c.Types == nil {
		c.Types = handlers.Builtins()
	}
	if c.Validators == nil {
		c.Validators = validators.Builtins()
	}
	if c.Styles == nil {
		c.Styles = theme.NewStyles(theme.Default())
	}
	if c.Loop == nil {
		l := ui.NewProgramLoop()
		l.AltScreen = true
		l.Mouse = true
		c.Loop = l
	}
	return c
}

// Run checks qs and shows them as a wizard. ok is false when the user
// cancels; answers is nil then.
func Run(ctx context.Context, qs []*question.Question, opts Options, cfg Config) (answers question.Answers, ok bool, err error) {
	cfg = cfg.withDefaults()

	hs, err := cfg.Types.BuildAll(qs, cfg.Validators, cfg.Styles)
	if err != nil {
		return nil, false, err
	}
	d, err := New(hs, opts)
	if err != nil {
		return nil, false, err
	}

	logging.Info("Starting wizard",
		zap.String("title", opts.Title),
		zap.Int("steps", len(d.Steps())),
	)

	m := NewModel(d, cfg.Styles)
	if d.Outcome() == Running {
		final, err := cfg.Loop.Run(ctx, m)
		if err != nil {
			return nil, false, fmt.Errorf("wizard: %w", err)
		}
		if fm, ok := final.(*Model); ok {
			m = fm
		}
	}
	if err := m.Err(); err != nil {
		return nil, false, err
	}

	answers, ok = m.Dialog().Result()
	logging.Info("Wizard finished",
		zap.Stringer("outcome", m.Dialog().Outcome()),
		zap.Int("answers", len(answers)),
	)
	return answers, ok, nil
}

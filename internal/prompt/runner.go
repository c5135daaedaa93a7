package prompt

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"github.com/muurk/formulary/internal/handlers"
	"github.com/muurk/formulary/internal/logging"
	"github.com/muurk/formulary/internal/question"
	"github.com/muurk/formulary/internal/theme"
	"github.com/muurk/formulary/internal/ui"
	"github.com/muurk/formulary/internal/validators"
	"go.uber.org/zap"
)

// Config holds the collaborators of a Runner. Zero fields get the
// built-in registries, the default theme and a terminal loop.
type Config struct {
	Types      *handlers.Registry
	Validators question.ValidatorResolver
	Styles     *theme.Styles
	Loop       ui.Loop
}

// Runner asks questions one at a time.
type Runner struct {
	types      *handlers.Registry
	validators question.ValidatorResolver
	styles     *theme.Styles
	loop       ui.Loop
}

// NewRunner creates a Runner.
func NewRunner(cfg Config) *Runner {
	r := &Runner{
		types:      cfg.Types,
		validators: cfg.Validators,
		styles:     cfg.Styles,
		loop:       cfg.Loop,
	}
	if r.types == nil {
		r.types = handlers.Builtins()
	}
	if r.validators == nil {
		r.validators = validators.Builtins()
	}
	if r.styles == nil {
		r.styles = theme.NewStyles(theme.Default())
	}
	if r.loop == nil {
		r.loop = ui.NewProgramLoop()
	}
	return r
}

// Run checks qs, then asks each enabled question until its answer is
// valid. ok is false when the user cancels; answers is nil then.
func (r *Runner) Run(ctx context.Context, qs []*question.Question) (answers question.Answers, ok bool, err error) {
	hs, err := r.types.BuildAll(qs, r.validators, r.styles)
	if err != nil {
		return nil, false, err
	}

	answers = question.Answers{}
	for _, h := range hs {
		if h.IsDisabled(answers) {
			logging.LogQuestion(h.Name(), h.Question().Type, "skipped")
			continue
		}
		if err := h.SetContext(answers); err != nil {
			return nil, false, err
		}

		accepted, err := r.ask(ctx, h, answers)
		if err != nil || !accepted {
			return nil, false, err
		}
		maps.Copy(answers, h.Answer())
	}

	logging.Info("Prompt completed", zap.Int("answers", len(answers)))
	return answers, true, nil
}

// ask runs the loop for h until the value validates or the user cancels.
func (r *Runner) ask(ctx context.Context, h handlers.Handler, answers question.Answers) (bool, error) {
	errMsg := ""
	for {
		logging.LogQuestion(h.Name(), h.Question().Type, "asked")
		final, err := r.loop.Run(ctx, newModel(h, r.styles, errMsg))
		if err != nil {
			return false, fmt.Errorf("question %q: %w", h.Name(), err)
		}
		m, ok := final.(*model)
		if !ok || m.cancelled || !m.accepted {
			logging.LogQuestion(h.Name(), h.Question().Type, "cancelled")
			return false, nil
		}
		if h.IsValid(answers) {
			logging.LogQuestion(h.Name(), h.Question().Type, "accepted")
			return true, nil
		}
		errMsg = strings.Join(h.Errors(), ", ")
	}
}

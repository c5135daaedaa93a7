package handlers

import (
	"github.com/muurk/formulary/internal/logging"
	"github.com/muurk/formulary/internal/question"
	"github.com/muurk/formulary/internal/theme"
	"github.com/muurk/formulary/internal/validators"
	"github.com/muurk/formulary/internal/widgets"
)

// Handler binds one question to its widget. It extracts the answer and
// runs the question's validators.
type Handler interface {
	Question() *question.Question
	Name() string
	Label() string

	// Widget returns the widget, building it on first use. Later calls
	// return the same instance.
	Widget() widgets.Widget

	// Value is the widget's raw value.
	Value() any
	// Typed converts Value to the answer type, e.g. a date string to a
	// time.Time.
	Typed() any
	// Answer returns {Name(): Typed()}.
	Answer() question.Answers
	// Formatted renders the value for summaries. It never fails.
	Formatted() string

	IsDisabled(answers question.Answers) bool
	// IsValid runs every validator and records the failures, replacing
	// those of the previous call.
	IsValid(answers question.Answers) bool
	Errors() []string

	// SetContext re-evaluates computed defaults and choices against
	// answers and pushes them into the widget.
	SetContext(answers question.Answers) error
}

// base holds what every handler shares.
type base struct {
	q       *question.Question
	styles  *theme.Styles
	answers question.Answers
	errors  []string
}

func newBase(q *question.Question, styles *theme.Styles) base {
	if styles == nil {
		styles = theme.Plain()
	}
	return base{q: q, styles: styles}
}

func (b *base) Question() *question.Question { return b.q }

func (b *base) Name() string { return b.q.Name }

func (b *base) Label() string { return b.q.DisplayLabel() }

func (b *base) IsDisabled(answers question.Answers) bool {
	return b.q.IsDisabled(answers)
}

func (b *base) Errors() []string { return b.errors }

// validate runs the validators over value and appends extra messages from
// the handler's own checks.
func (b *base) validate(value any, answers question.Answers, extra ...string) bool {
	b.errors = nil
	err := validators.Run(b.q.Validators, value, answers)
	b.errors = append(validators.Messages(err), extra...)
	logging.LogValidation(b.q.Name, b.errors)
	return len(b.errors) == 0
}

// defaultValue resolves the default against the last known answers.
func (b *base) defaultValue() any {
	return b.q.Default.Resolve(b.answers)
}

// setAnswers records answers and reports whether any computed field needs
// to be pushed into the widget.
func (b *base) setAnswers(answers question.Answers) (defaults, values bool) {
	b.answers = answers
	return b.q.Default.IsComputed(), b.q.Values.IsComputed()
}

func answer(h Handler) question.Answers {
	return question.Answers{h.Name(): h.Typed()}
}

package formulary

import (
	"context"

	"github.com/muurk/formulary/internal/codec"
	"github.com/muurk/formulary/internal/handlers"
	"github.com/muurk/formulary/internal/prompt"
	"github.com/muurk/formulary/internal/question"
	"github.com/muurk/formulary/internal/theme"
	"github.com/muurk/formulary/internal/ui"
	"github.com/muurk/formulary/internal/validators"
	"github.com/muurk/formulary/internal/wizard"
)

// Question describes one form field.
type Question = question.Question

// Choice is a (value, label) pair of a selection question.
type Choice = question.Choice

// Answers maps question names to answer values.
type Answers = question.Answers

// DefinitionError reports a malformed question list.
type DefinitionError = question.DefinitionError

// Validator checks a single answer value.
type Validator = validators.Validator

// ValidatorFunc adapts a function to a Validator.
type ValidatorFunc = validators.Func

// ValidatorArgs are the arguments of a validator descriptor.
type ValidatorArgs = validators.Args

// ValidatorFactory builds a validator from descriptor arguments.
type ValidatorFactory = validators.Factory

// ValidatorRegistry resolves validators by name.
type ValidatorRegistry = validators.Registry

// ValidationError is a user-facing validation failure.
type ValidationError = validators.ValidationError

// Handler adapts a question to its widget.
type Handler = handlers.Handler

// QuestionType describes a registered question type.
type QuestionType = handlers.Type

// TypeRegistry holds the question types.
type TypeRegistry = handlers.Registry

// Theme holds the colors and symbols of the forms.
type Theme = theme.Theme

// Loop runs a Bubble Tea model until it quits.
type Loop = ui.Loop

// WizardOptions configure a wizard run.
type WizardOptions = wizard.Options

// SummaryEntry is passed to a wizard summary function for each question.
type SummaryEntry = wizard.SummaryEntry

// Literal wraps a fixed value for a default, disabled or values field.
func Literal[T any](v T) question.Dynamic[T] { return question.Literal(v) }

// Computed wraps a function of the answers collected so far.
func Computed[T any](fn func(Answers) T) question.Dynamic[T] { return question.Computed(fn) }

// Validators returns a registry with the built-in validators. Custom
// validators are registered on it and passed with WithValidators.
func Validators() *ValidatorRegistry { return validators.Builtins() }

// Types returns a registry with the built-in question types.
func Types() *TypeRegistry { return handlers.Builtins() }

// Themes lists the built-in theme names.
func Themes() []string { return theme.Builtins().Names() }

// ThemeByName returns a copy of a built-in theme.
func ThemeByName(name string) (*Theme, error) { return theme.Builtins().Get(name) }

// QuestionsFromMaps decodes serialized question records.
func QuestionsFromMaps(records []map[string]any) ([]*Question, error) {
	return question.FromMaps(records)
}

// LoadQuestions reads a JSON, YAML or TOML questions file. The format is
// taken from the file extension.
func LoadQuestions(path string) ([]*Question, error) {
	return codec.LoadQuestions(path, "")
}

// Check validates a question list without showing anything. Validator
// descriptors are resolved in place.
func Check(qs []*Question, opts ...Option) error {
	s := newSettings(opts)
	return question.Check(qs, s.types, s.validators)
}

// Prompt asks the questions one after the other. ok is false when the user
// cancels.
func Prompt(ctx context.Context, qs []*Question, opts ...Option) (answers Answers, ok bool, err error) {
	s := newSettings(opts)
	r := prompt.NewRunner(prompt.Config{
		Types:      s.types,
		Validators: s.validators,
		Styles:     s.styles(),
		Loop:       s.loop,
	})
	return r.Run(ctx, qs)
}

// Wizard shows the questions as a full screen multi step dialog. ok is
// false when the user cancels.
func Wizard(ctx context.Context, qs []*Question, wo WizardOptions, opts ...Option) (answers Answers, ok bool, err error) {
	s := newSettings(opts)
	return wizard.Run(ctx, qs, wo, wizard.Config{
		Types:      s.types,
		Validators: s.validators,
		Styles:     s.styles(),
		Loop:       s.loop,
	})
}

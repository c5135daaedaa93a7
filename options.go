package formulary

import (
	"github.com/muurk/formulary/internal/handlers"
	"github.com/muurk/formulary/internal/theme"
	"github.com/muurk/formulary/internal/validators"
)

// Option configures Prompt, Wizard and Check.
type Option func(*settings)

type settings struct {
	types      *handlers.Registry
	validators *validators.Registry
	theme      *theme.Theme
	loop       Loop
}

func newSettings(opts []Option) *settings {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	if s.types == nil {
		s.types = handlers.Builtins()
	}
	if s.validators == nil {
		s.validators = validators.Builtins()
	}
	if s.theme == nil {
		s.theme = theme.Default()
	}
	return s
}

func (s *settings) styles() *theme.Styles {
	return theme.NewStyles(s.theme)
}

// WithTheme renders with t.
func WithTheme(t *Theme) Option {
	return func(s *settings) { s.theme = t }
}

// WithTypes uses r to look up question types.
func WithTypes(r *TypeRegistry) Option {
	return func(s *settings) { s.types = r }
}

// WithValidators uses r to resolve validator descriptors.
func WithValidators(r *ValidatorRegistry) Option {
	return func(s *settings) { s.validators = r }
}

// WithLoop runs the forms on l instead of the terminal.
func WithLoop(l Loop) Option {
	return func(s *settings) { s.loop = l }
}

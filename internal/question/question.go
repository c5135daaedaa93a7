package question

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/muurk/formulary/internal/validators"
)

// Choice is one selectable (value, label) pair.
type Choice struct {
	Value string `json:"value" yaml:"value" toml:"value"`
	Label string `json:"label" yaml:"label" toml:"label"`
}

// Question describes one form field. Name doubles as the answer key.
type Question struct {
	Name        string
	Type        string
	Message     string
	Description string
	// Label is the short step title shown by the wizard. Defaults to the
	// capitalized name.
	Label string

	Default  Dynamic[any]
	Disabled Dynamic[bool]
	Values   Dynamic[[]Choice]

	// Validators may hold unresolved Descriptors until Check replaces them
	// with instances.
	Validators []validators.Validator

	// Masked input.
	Mask         string
	Placeholder  string
	AllowedChars string

	// Date range labels.
	FromLabel string
	ToLabel   string

	// Multiline switches text input to a text area.
	Multiline bool

	// Extra carries handler specific settings not covered above.
	Extra map[string]any
}

// Capitalize upper-cases the first letter of s and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}

// DisplayLabel returns Label, or the capitalized name.
func (q *Question) DisplayLabel() string {
	if q.Label != "" {
		return q.Label
	}
	return Capitalize(q.Name)
}

// IsDisabled evaluates the disabled flag against answers.
func (q *Question) IsDisabled(answers Answers) bool {
	return q.Disabled.Resolve(answers)
}

// ExtraString returns a string entry from Extra.
func (q *Question) ExtraString(key, def string) string {
	if s, ok := q.Extra[key].(string); ok {
		return s
	}
	return def
}

package handlers

import (
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/muurk/formulary/internal/question"
	"github.com/muurk/formulary/internal/registry"
	"github.com/muurk/formulary/internal/theme"
)

// Factory builds a handler for a checked question.
type Factory func(q *question.Question, styles *theme.Styles) (Handler, error)

// Type describes a registered question type.
type Type struct {
	New Factory
	// Check reports type specific definition problems. It may be nil.
	Check       func(q *question.Question) error
	Description string
}

// Registry maps question type names to handler factories.
type Registry struct {
	types *registry.Registry[Type]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: registry.New[Type]("question type")}
}

// Builtins returns a registry holding the built-in question types.
func Builtins() *Registry {
	r := NewRegistry()
	r.types.MustRegister("input", Type{New: NewInput, Description: "single line text, multiline when requested"})
	r.types.MustRegister("password", Type{New: NewPassword, Description: "single line text shown masked"})
	r.types.MustRegister("repassword", Type{New: NewRePassword, Description: "password typed twice"})
	r.types.MustRegister("text", Type{New: NewText, Description: "multiline text, ctrl+d to accept"})
	r.types.MustRegister("selectone", Type{New: NewSelectOne, Check: checkChoices, Description: "pick one of the values"})
	r.types.MustRegister("selectmany", Type{New: NewSelectMany, Check: checkChoices, Description: "pick any of the values"})
	r.types.MustRegister("maskedinput", Type{New: NewMaskedInput, Check: checkMasked, Description: "text entered into a mask"})
	r.types.MustRegister("date", Type{New: NewDate, Check: checkDate, Description: "a YYYY-MM-DD date"})
	r.types.MustRegister("daterange", Type{New: NewDateRange, Check: checkDateRange, Description: "a pair of dates"})
	return r
}

// Register adds a question type. Registering a name twice fails.
func (r *Registry) Register(name string, t Type) error {
	if t.New == nil {
		return fmt.Errorf("question type %q has no factory", name)
	}
	return r.types.Register(name, t)
}

// Names returns the registered type names, sorted.
func (r *Registry) Names() []string {
	return r.types.Names()
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (Type, error) {
	return r.types.Lookup(name)
}

// CheckQuestion rejects unknown types and runs the type's own checks.
func (r *Registry) CheckQuestion(q *question.Question) error {
	t, err := r.types.Lookup(q.Type)
	if err != nil {
		msg := fmt.Sprintf("Unsupported question type: %s", q.Type)
		if s := r.suggest(q.Type); s != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", s)
		}
		return question.Errorf(question.ErrTypeUnknownType, q, "%s", msg)
	}
	if t.Check != nil {
		return t.Check(q)
	}
	return nil
}

// suggest returns the registered name closest to typ, if any.
func (r *Registry) suggest(typ string) string {
	if typ == "" {
		return ""
	}
	matches := fuzzy.Find(typ, r.types.Names())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// Build creates the handler for q. q must have passed question.Check.
func (r *Registry) Build(q *question.Question, styles *theme.Styles) (Handler, error) {
	t, err := r.types.Lookup(q.Type)
	if err != nil {
		return nil, err
	}
	return t.New(q, styles)
}

// BuildAll checks qs and creates one handler per question.
func (r *Registry) BuildAll(qs []*question.Question, resolver question.ValidatorResolver, styles *theme.Styles) ([]Handler, error) {
	if err := question.Check(qs, r, resolver); err != nil {
		return nil, err
	}
	hs := make([]Handler, 0, len(qs))
	for _, q := range qs {
		h, err := r.Build(q, styles)
		if err != nil {
			return nil, err
		}
		hs = append(hs, h)
	}
	return hs, nil
}

func checkChoices(q *question.Question) error {
	if q.Values.IsComputed() {
		return nil
	}
	if len(q.Values.Resolve(nil)) == 0 {
		return question.Errorf(question.ErrTypeInvalidValues, q, "You must specify at least one choice for type choice")
	}
	return nil
}

// literalDefault returns the default when it is set and fixed.
func literalDefault(q *question.Question) (any, bool) {
	if !q.Default.IsSet() || q.Default.IsComputed() {
		return nil, false
	}
	return q.Default.Resolve(nil), true
}

func checkMasked(q *question.Question) error {
	if q.Mask == "" {
		return question.Errorf(question.ErrTypeMissingField, q, "You must specify a mask for type maskedinput")
	}
	w, err := newMaskWidget(q, theme.Plain())
	if err != nil {
		return question.Errorf(question.ErrTypeInvalidMask, q, "%v", err)
	}
	if def, ok := literalDefault(q); ok {
		if err := w.SetValue(stringOf(def)); err != nil {
			return question.Errorf(question.ErrTypeInvalidDefault, q, "%v", err)
		}
	}
	return nil
}

func checkDateString(q *question.Question, s string) error {
	if s == "" {
		return nil
	}
	if err := newDateWidget(theme.Plain()).SetValue(s); err != nil {
		return question.Errorf(question.ErrTypeInvalidDefault, q, "%v", err)
	}
	if _, ok := parseDate(s); !ok {
		return question.Errorf(question.ErrTypeInvalidDefault, q, "%q is not a valid date", s)
	}
	return nil
}

func checkDate(q *question.Question) error {
	if def, ok := literalDefault(q); ok {
		return checkDateString(q, dateString(def))
	}
	return nil
}

func checkDateRange(q *question.Question) error {
	def, ok := literalDefault(q)
	if !ok || def == nil {
		return nil
	}
	switch def.(type) {
	case map[string]any, map[string]string:
	default:
		return question.Errorf(question.ErrTypeInvalidDefault, q, "default must be a mapping with from and to")
	}
	from, to := rangeDefault(def)
	if err := checkDateString(q, from); err != nil {
		return err
	}
	return checkDateString(q, to)
}

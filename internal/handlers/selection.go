package handlers

import (
	"strings"

	"github.com/muurk/formulary/internal/logging"
	"github.com/muurk/formulary/internal/question"
	"github.com/muurk/formulary/internal/theme"
	"github.com/muurk/formulary/internal/widgets"
)

// SelectOne handles "selectone" questions.
type SelectOne struct {
	base
	w *widgets.SelectOne
}

// NewSelectOne creates a single choice handler.
func NewSelectOne(q *question.Question, styles *theme.Styles) (Handler, error) {
	return &SelectOne{base: newBase(q, styles)}, nil
}

func (h *SelectOne) Widget() widgets.Widget {
	if h.w == nil {
		h.w = widgets.NewSelectOne(h.q.Values.Resolve(h.answers), stringOf(h.defaultValue()), h.styles)
		logging.LogQuestion(h.q.Name, h.q.Type, "widget built")
	}
	return h.w
}

func (h *SelectOne) Value() any { return h.Widget().Value() }

func (h *SelectOne) Typed() any { return h.Value() }

func (h *SelectOne) Answer() question.Answers { return answer(h) }

// Formatted returns "Label (value)", or "" without a selection.
func (h *SelectOne) Formatted() string {
	v, ok := h.Value().(string)
	if !ok {
		return ""
	}
	return formatChoice(h.w.Choices(), v)
}

func (h *SelectOne) IsValid(answers question.Answers) bool {
	return h.validate(h.Value(), answers)
}

func (h *SelectOne) SetContext(answers question.Answers) error {
	defaults, values := h.setAnswers(answers)
	if !defaults && !values {
		return nil
	}
	h.Widget()
	choices := h.w.Choices()
	if values {
		choices = h.q.Values.Resolve(answers)
	}
	def := stringOf(h.defaultValue())
	if !defaults {
		def, _ = h.w.Value().(string)
	}
	h.w.SetChoices(choices, def)
	return nil
}

// SelectMany handles "selectmany" questions. The default is a list of
// checked values.
type SelectMany struct {
	base
	w *widgets.SelectMany
}

// NewSelectMany creates a multiple choice handler.
func NewSelectMany(q *question.Question, styles *theme.Styles) (Handler, error) {
	return &SelectMany{base: newBase(q, styles)}, nil
}

func (h *SelectMany) Widget() widgets.Widget {
	if h.w == nil {
		h.w = widgets.NewSelectMany(h.q.Values.Resolve(h.answers), stringsOf(h.defaultValue()), h.styles)
		logging.LogQuestion(h.q.Name, h.q.Type, "widget built")
	}
	return h.w
}

func (h *SelectMany) Value() any { return h.Widget().Value() }

func (h *SelectMany) Typed() any { return h.Value() }

func (h *SelectMany) Answer() question.Answers { return answer(h) }

// Formatted joins "Label (value)" for every checked choice.
func (h *SelectMany) Formatted() string {
	h.Widget()
	checked := h.w.Checked()
	parts := make([]string, 0, len(checked))
	for _, v := range checked {
		parts = append(parts, formatChoice(h.w.Choices(), v))
	}
	return strings.Join(parts, ", ")
}

func (h *SelectMany) IsValid(answers question.Answers) bool {
	return h.validate(h.Value(), answers)
}

func (h *SelectMany) SetContext(answers question.Answers) error {
	defaults, values := h.setAnswers(answers)
	if !defaults && !values {
		return nil
	}
	h.Widget()
	choices := h.w.Choices()
	if values {
		choices = h.q.Values.Resolve(answers)
	}
	checked := h.w.Checked()
	if defaults {
		checked = stringsOf(h.defaultValue())
	}
	h.w.SetChoices(choices, checked)
	return nil
}

func formatChoice(choices []question.Choice, value string) string {
	for _, c := range choices {
		if c.Value == value {
			return c.Label + " (" + c.Value + ")"
		}
	}
	return value
}

// stringsOf turns a default into a list of values. A single value is a
// list of one.
func stringsOf(v any) []string {
	switch v := v.(type) {
	case nil:
		return nil
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			out = append(out, stringOf(e))
		}
		return out
	}
	return []string{stringOf(v)}
}

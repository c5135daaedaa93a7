package handlers

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/muurk/formulary/internal/logging"
	"github.com/muurk/formulary/internal/question"
	"github.com/muurk/formulary/internal/theme"
	"github.com/muurk/formulary/internal/widgets"
)

// textWidget is implemented by TextInput and TextArea.
type textWidget interface {
	widgets.Widget
	SetText(s string)
}

// Input handles "input", "password" and "text" questions. Text questions,
// and input questions with Multiline set, use a text area.
type Input struct {
	base
	password  bool
	multiline bool
	w         textWidget
}

// NewInput creates a single or multiline text handler.
func NewInput(q *question.Question, styles *theme.Styles) (Handler, error) {
	return &Input{base: newBase(q, styles), multiline: q.Multiline}, nil
}

// NewPassword creates a text handler that masks its input.
func NewPassword(q *question.Question, styles *theme.Styles) (Handler, error) {
	return &Input{base: newBase(q, styles), password: true}, nil
}

// NewText creates a multiline text handler.
func NewText(q *question.Question, styles *theme.Styles) (Handler, error) {
	return &Input{base: newBase(q, styles), multiline: true}, nil
}

func (h *Input) Widget() widgets.Widget {
	if h.w == nil {
		def := stringOf(h.defaultValue())
		if h.multiline {
			h.w = widgets.NewTextArea(def, 0, h.styles)
		} else {
			h.w = widgets.NewTextInput(widgets.TextOptions{
				Value:       def,
				Placeholder: h.q.Placeholder,
				Password:    h.password,
			}, h.styles)
		}
		logging.LogQuestion(h.q.Name, h.q.Type, "widget built")
	}
	return h.w
}

func (h *Input) Value() any { return h.Widget().Value() }

func (h *Input) Typed() any { return h.Value() }

func (h *Input) Answer() question.Answers { return answer(h) }

func (h *Input) Formatted() string {
	s, _ := h.Value().(string)
	if h.password {
		return maskText(s, h.styles)
	}
	return s
}

func (h *Input) IsValid(answers question.Answers) bool {
	return h.validate(h.Value(), answers)
}

func (h *Input) SetContext(answers question.Answers) error {
	if defaults, _ := h.setAnswers(answers); defaults {
		h.Widget()
		h.w.SetText(stringOf(h.defaultValue()))
	}
	return nil
}

// RePassword asks for a password twice and fails validation when the two
// entries differ.
type RePassword struct {
	base
	w *widgets.RePassword
}

// NewRePassword creates a confirmed password handler. The confirmation
// label comes from the "confirm_label" extra field.
func NewRePassword(q *question.Question, styles *theme.Styles) (Handler, error) {
	return &RePassword{base: newBase(q, styles)}, nil
}

func (h *RePassword) Widget() widgets.Widget {
	if h.w == nil {
		h.w = widgets.NewRePassword(stringOf(h.defaultValue()), h.q.ExtraString("confirm_label", "Confirm"), h.styles)
		logging.LogQuestion(h.q.Name, h.q.Type, "widget built")
	}
	return h.w
}

func (h *RePassword) Value() any { return h.Widget().Value() }

func (h *RePassword) Typed() any { return h.Value() }

func (h *RePassword) Answer() question.Answers { return answer(h) }

func (h *RePassword) Formatted() string {
	s, _ := h.Value().(string)
	return maskText(s, h.styles)
}

func (h *RePassword) IsValid(answers question.Answers) bool {
	h.Widget()
	var extra []string
	if !h.w.Matches() {
		extra = append(extra, "passwords do not match")
	}
	return h.validate(h.Value(), answers, extra...)
}

func (h *RePassword) SetContext(answers question.Answers) error {
	h.setAnswers(answers)
	return nil
}

func maskText(s string, styles *theme.Styles) string {
	return strings.Repeat(styles.Symbols.PasswordMask, utf8.RuneCountInString(s))
}

// stringOf renders a default as text; nil becomes "".
func stringOf(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}

package handlers

import (
	"fmt"
	"time"

	"github.com/muurk/formulary/internal/logging"
	"github.com/muurk/formulary/internal/question"
	"github.com/muurk/formulary/internal/theme"
	"github.com/muurk/formulary/internal/widgets"
)

// DateLayout is the layout of date values typed into a date mask.
const DateLayout = "2006-01-02"

const invalidDate = "this field is not a valid date"

// MaskedInput handles "maskedinput" questions.
type MaskedInput struct {
	base
	w *widgets.MaskedInput
}

// NewMaskedInput creates a masked input handler. The mask and a literal
// default are checked here so that building the widget cannot fail later.
func NewMaskedInput(q *question.Question, styles *theme.Styles) (Handler, error) {
	h := &MaskedInput{base: newBase(q, styles)}
	if err := checkMasked(q); err != nil {
		return nil, err
	}
	return h, nil
}

func newMaskWidget(q *question.Question, styles *theme.Styles) (*widgets.MaskedInput, error) {
	return widgets.NewMaskedInput(q.Mask, q.Placeholder, q.AllowedChars, styles)
}

func (h *MaskedInput) Widget() widgets.Widget {
	if h.w == nil {
		w, err := newMaskWidget(h.q, h.styles)
		if err != nil {
			// NewMaskedInput has already rejected the mask.
			panic(err)
		}
		if err := w.SetValue(stringOf(h.defaultValue())); err != nil {
			logging.Warn(fmt.Sprintf("Ignoring default of %q: %v", h.q.Name, err))
		}
		h.w = w
		logging.LogQuestion(h.q.Name, h.q.Type, "widget built")
	}
	return h.w
}

func (h *MaskedInput) Value() any { return h.Widget().Value() }

func (h *MaskedInput) Typed() any { return h.Value() }

func (h *MaskedInput) Answer() question.Answers { return answer(h) }

func (h *MaskedInput) Formatted() string { return stringOf(h.Value()) }

func (h *MaskedInput) IsValid(answers question.Answers) bool {
	return h.validate(h.Value(), answers)
}

func (h *MaskedInput) SetContext(answers question.Answers) error {
	if defaults, _ := h.setAnswers(answers); defaults {
		h.Widget()
		if err := h.w.SetValue(stringOf(h.defaultValue())); err != nil {
			return fmt.Errorf("default of %q: %w", h.q.Name, err)
		}
	}
	return nil
}

// Date handles "date" questions. The answer is a UTC time.Time, or nil
// when nothing or an incomplete date was typed.
type Date struct {
	base
	w *widgets.MaskedInput
}

// NewDate creates a date handler.
func NewDate(q *question.Question, styles *theme.Styles) (Handler, error) {
	return &Date{base: newBase(q, styles)}, nil
}

func newDateWidget(styles *theme.Styles) *widgets.MaskedInput {
	w, _ := widgets.NewMaskedInput(widgets.DateMask, "", widgets.Digits, styles)
	return w
}

func (h *Date) Widget() widgets.Widget {
	if h.w == nil {
		h.w = newDateWidget(h.styles)
		if err := h.w.SetValue(dateString(h.defaultValue())); err != nil {
			logging.Warn(fmt.Sprintf("Ignoring default of %q: %v", h.q.Name, err))
		}
		logging.LogQuestion(h.q.Name, h.q.Type, "widget built")
	}
	return h.w
}

func (h *Date) Value() any { return h.Widget().Value() }

func (h *Date) Typed() any {
	t, ok := parseDate(h.Value())
	if !ok {
		return nil
	}
	return t
}

func (h *Date) Answer() question.Answers { return answer(h) }

func (h *Date) Formatted() string { return stringOf(h.Value()) }

func (h *Date) IsValid(answers question.Answers) bool {
	var extra []string
	if v := h.Value(); v != nil {
		if _, ok := parseDate(v); !ok {
			extra = append(extra, invalidDate)
		}
	}
	return h.validate(h.Value(), answers, extra...)
}

func (h *Date) SetContext(answers question.Answers) error {
	if defaults, _ := h.setAnswers(answers); defaults {
		h.Widget()
		if err := h.w.SetValue(dateString(h.defaultValue())); err != nil {
			return fmt.Errorf("default of %q: %w", h.q.Name, err)
		}
	}
	return nil
}

// DateRange handles "daterange" questions. Its answer is a map with
// "from" and "to" keys.
type DateRange struct {
	base
	w *widgets.DateRange
}

// NewDateRange creates a date range handler.
func NewDateRange(q *question.Question, styles *theme.Styles) (Handler, error) {
	return &DateRange{base: newBase(q, styles)}, nil
}

func (h *DateRange) Widget() widgets.Widget {
	if h.w == nil {
		h.w = widgets.NewDateRange(h.q.FromLabel, h.q.ToLabel, h.styles)
		if err := h.setDefault(); err != nil {
			logging.Warn(fmt.Sprintf("Ignoring default of %q: %v", h.q.Name, err))
		}
		logging.LogQuestion(h.q.Name, h.q.Type, "widget built")
	}
	return h.w
}

func (h *DateRange) setDefault() error {
	from, to := rangeDefault(h.defaultValue())
	return h.w.SetValue(from, to)
}

func (h *DateRange) Value() any { return h.Widget().Value() }

func (h *DateRange) sides() (from, to any) {
	m, _ := h.Value().(map[string]any)
	return m["from"], m["to"]
}

func (h *DateRange) Typed() any {
	from, to := h.sides()
	out := map[string]any{"from": nil, "to": nil}
	if t, ok := parseDate(from); ok {
		out["from"] = t
	}
	if t, ok := parseDate(to); ok {
		out["to"] = t
	}
	return out
}

func (h *DateRange) Answer() question.Answers { return answer(h) }

// Formatted returns "from X - to Y", or "" when both sides are empty.
func (h *DateRange) Formatted() string {
	from, to := h.sides()
	if from == nil && to == nil {
		return ""
	}
	return fmt.Sprintf("from %s - to %s", stringOf(from), stringOf(to))
}

func (h *DateRange) IsValid(answers question.Answers) bool {
	var extra []string
	from, to := h.sides()
	for _, v := range []any{from, to} {
		if v == nil {
			continue
		}
		if _, ok := parseDate(v); !ok {
			extra = append(extra, invalidDate)
			break
		}
	}
	return h.validate(h.Value(), answers, extra...)
}

func (h *DateRange) SetContext(answers question.Answers) error {
	if defaults, _ := h.setAnswers(answers); defaults {
		h.Widget()
		if err := h.setDefault(); err != nil {
			return fmt.Errorf("default of %q: %w", h.q.Name, err)
		}
	}
	return nil
}

// parseDate parses a complete "YYYY-MM-DD" value as UTC midnight.
func parseDate(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// dateString accepts a time.Time or a date string as a default.
func dateString(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.Format(DateLayout)
	}
	return stringOf(v)
}

func rangeDefault(v any) (from, to string) {
	switch m := v.(type) {
	case map[string]any:
		return dateString(m["from"]), dateString(m["to"])
	case map[string]string:
		return m["from"], m["to"]
	}
	return "", ""
}

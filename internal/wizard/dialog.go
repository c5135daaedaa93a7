package wizard

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"strings"

	"github.com/muurk/formulary/internal/handlers"
	"github.com/muurk/formulary/internal/logging"
	"github.com/muurk/formulary/internal/question"
)

// StepKind tells question steps from the introduction and summary pages.
type StepKind int

const (
	StepQuestion StepKind = iota
	StepIntro
	StepSummary
)

// Step is one page of the wizard. Intro and summary steps have no handler.
type Step struct {
	Kind    StepKind
	Label   string
	Handler handlers.Handler
}

// Outcome is the state of a dialog run.
type Outcome int

const (
	Running Outcome = iota
	Completed
	Cancelled
)

// String returns a human-readable name for the outcome
func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Outcome(%d)", o)
	}
}

// Button identifies a dialog button.
type Button int

const (
	ButtonNext Button = iota
	ButtonPrevious
	ButtonCancel
)

// StepState is how a step is drawn in the step list.
type StepState int

const (
	StepNormal StepState = iota
	StepCurrent
	StepDisabled
)

// SummaryEntry is what a summary function receives for each question.
type SummaryEntry struct {
	Question  *question.Question
	Value     any
	Formatted string
}

// SummaryFunc renders the summary page.
type SummaryFunc func(entries map[string]SummaryEntry) string

// Options configure a Dialog.
type Options struct {
	Title string
	// Intro, when set, adds an introduction page before the questions.
	Intro string

	// Summary adds a summary page listing every answer. SummaryTemplate
	// and SummaryFunc imply Summary and replace the default rendering.
	// A template refers to formatted values as $name or ${name}.
	Summary         bool
	SummaryTemplate string
	SummaryFunc     SummaryFunc

	// FastForward skips, before the first render, every step whose
	// current value already validates.
	FastForward bool

	NextText     string
	PreviousText string
	CancelText   string
	FinishText   string
}

func (o Options) hasSummary() bool {
	return o.Summary || o.SummaryTemplate != "" || o.SummaryFunc != nil
}

// ErrNoSteps is returned by New when there is nothing to show.
var ErrNoSteps = errors.New("wizard has no steps")

// Dialog is the wizard state machine. It knows nothing about rendering:
// the model calls Next, Previous and Cancel and draws the current step.
type Dialog struct {
	opts    Options
	steps   []Step
	current int
	answers question.Answers
	err     string
	outcome Outcome
}

// New derives the steps from handlers and options and moves to the first
// enabled step.
func New(hs []handlers.Handler, opts Options) (*Dialog, error) {
	if opts.NextText == "" {
		opts.NextText = "Next"
	}
	if opts.PreviousText == "" {
		opts.PreviousText = "Previous"
	}
	if opts.CancelText == "" {
		opts.CancelText = "Cancel"
	}
	if opts.FinishText == "" {
		opts.FinishText = "Finish"
	}

	d := &Dialog{opts: opts, answers: question.Answers{}}
	if opts.Intro != "" {
		d.steps = append(d.steps, Step{Kind: StepIntro, Label: "Introduction"})
	}
	for _, h := range hs {
		d.steps = append(d.steps, Step{Kind: StepQuestion, Label: h.Label(), Handler: h})
	}
	if opts.hasSummary() {
		d.steps = append(d.steps, Step{Kind: StepSummary, Label: "Summary"})
	}
	if len(d.steps) == 0 {
		return nil, ErrNoSteps
	}

	for d.disabled(d.current) && d.current < len(d.steps)-1 {
		d.current++
	}
	if err := d.enter(); err != nil {
		return nil, err
	}
	if opts.FastForward {
		if err := d.FastForward(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Steps returns every step, including disabled ones.
func (d *Dialog) Steps() []Step { return d.steps }

// Current returns the index of the current step.
func (d *Dialog) Current() int { return d.current }

// CurrentStep returns the current step.
func (d *Dialog) CurrentStep() Step { return d.steps[d.current] }

// Answers returns the answers committed so far.
func (d *Dialog) Answers() question.Answers { return d.answers }

// Error returns the joined validation messages of the last failed Next.
func (d *Dialog) Error() string { return d.err }

// Outcome reports whether the dialog is still running.
func (d *Dialog) Outcome() Outcome { return d.outcome }

// Intro returns the introduction text.
func (d *Dialog) Intro() string { return d.opts.Intro }

// Title returns "<title> - <n> of <total>".
func (d *Dialog) Title() string {
	return fmt.Sprintf("%s - %d of %d", d.opts.Title, d.current+1, len(d.steps))
}

func (d *Dialog) last() int { return len(d.steps) - 1 }

func (d *Dialog) disabled(i int) bool {
	h := d.steps[i].Handler
	return h != nil && h.IsDisabled(d.answers)
}

// enter prepares the current step for display.
func (d *Dialog) enter() error {
	step := d.steps[d.current]
	logging.LogStep("entered", d.current, step.Label)
	if step.Handler == nil {
		return nil
	}
	return step.Handler.SetContext(d.answers)
}

// commit adds the answer of step i, unless it has no handler or is
// disabled.
func (d *Dialog) commit(i int) {
	h := d.steps[i].Handler
	if h == nil || h.IsDisabled(d.answers) {
		return
	}
	maps.Copy(d.answers, h.Answer())
}

// Validate checks the current step. Pseudo steps and disabled steps are
// always valid. On failure Error holds every message joined by ", ".
func (d *Dialog) Validate() bool {
	h := d.steps[d.current].Handler
	if h == nil || h.IsDisabled(d.answers) {
		d.err = ""
		return true
	}
	if !h.IsValid(d.answers) {
		d.err = strings.Join(h.Errors(), ", ")
		logging.LogStep("invalid", d.current, d.steps[d.current].Label)
		return false
	}
	d.err = ""
	return true
}

// Next validates the current step and moves to the next enabled one,
// committing the current answer. On the last step it completes the
// dialog. An invalid step stays current.
func (d *Dialog) Next() error {
	if d.outcome != Running || !d.Validate() {
		return nil
	}
	d.commit(d.current)
	for {
		if d.current == d.last() {
			d.finish(Completed)
			return nil
		}
		d.current++
		if !d.disabled(d.current) {
			break
		}
		logging.LogStep("skipped", d.current, d.steps[d.current].Label)
	}
	return d.enter()
}

// Previous moves back to the closest enabled step. Answers are kept. It
// does nothing when every earlier step is disabled.
func (d *Dialog) Previous() {
	if d.outcome != Running || d.current == 0 {
		return
	}
	prev, ok := d.enabledBefore(d.current)
	if !ok {
		return
	}
	d.err = ""
	d.current = prev
	logging.LogStep("back", d.current, d.steps[d.current].Label)
}

// enabledBefore returns the closest enabled step before i.
func (d *Dialog) enabledBefore(i int) (int, bool) {
	for j := i - 1; j >= 0; j-- {
		if !d.disabled(j) {
			return j, true
		}
	}
	return 0, false
}

// enabledAfter returns the closest enabled step after i.
func (d *Dialog) enabledAfter(i int) (int, bool) {
	for j := i + 1; j < len(d.steps); j++ {
		if !d.disabled(j) {
			return j, true
		}
	}
	return 0, false
}

// Cancel ends the dialog without answers.
func (d *Dialog) Cancel() {
	if d.outcome == Running {
		d.finish(Cancelled)
	}
}

// FastForward advances over steps that already validate, stopping at the
// first invalid step or at the last enabled step.
func (d *Dialog) FastForward() error {
	for d.outcome == Running {
		next, ok := d.enabledAfter(d.current)
		if !ok || !d.Validate() {
			break
		}
		d.commit(d.current)
		d.current = next
		if err := d.enter(); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dialog) finish(o Outcome) {
	d.outcome = o
	logging.LogStep(o.String(), d.current, d.steps[d.current].Label)
}

// Result returns the answers, with ok false unless the dialog completed.
func (d *Dialog) Result() (question.Answers, bool) {
	if d.outcome != Completed {
		return nil, false
	}
	return d.answers, true
}

// Buttons returns the active buttons in display order. Previous is shown
// on every step but the first.
func (d *Dialog) Buttons() []Button {
	if len(d.steps) == 1 || d.current == 0 {
		return []Button{ButtonNext, ButtonCancel}
	}
	return []Button{ButtonNext, ButtonPrevious, ButtonCancel}
}

// ButtonText returns the label of b. The primary button reads Finish on
// the last step, or when every following step is disabled and there is
// no summary.
func (d *Dialog) ButtonText(b Button) string {
	switch b {
	case ButtonPrevious:
		return d.opts.PreviousText
	case ButtonCancel:
		return d.opts.CancelText
	}
	if d.current == d.last() || (!d.opts.hasSummary() && d.noNextSteps()) {
		return d.opts.FinishText
	}
	return d.opts.NextText
}

func (d *Dialog) noNextSteps() bool {
	for i := d.current + 1; i < len(d.steps); i++ {
		if d.steps[i].Handler != nil && !d.disabled(i) {
			return false
		}
	}
	return true
}

// StepState returns how step i is drawn.
func (d *Dialog) StepState(i int) StepState {
	switch {
	case i == d.current:
		return StepCurrent
	case d.disabled(i):
		return StepDisabled
	default:
		return StepNormal
	}
}

var templateVar = regexp.MustCompile(`\$(?:(\$)|([_a-zA-Z][_a-zA-Z0-9]*)|\{([_a-zA-Z][_a-zA-Z0-9]*)\})`)

// Summary renders the summary page: a "Label: value" line per question,
// the summary template, or the summary function's output.
func (d *Dialog) Summary() string {
	var hs []handlers.Handler
	for _, s := range d.steps {
		if s.Handler != nil {
			hs = append(hs, s.Handler)
		}
	}

	switch {
	case d.opts.SummaryFunc != nil:
		entries := make(map[string]SummaryEntry, len(hs))
		for _, h := range hs {
			entries[h.Name()] = SummaryEntry{Question: h.Question(), Value: h.Value(), Formatted: h.Formatted()}
		}
		return d.opts.SummaryFunc(entries)

	case d.opts.SummaryTemplate != "":
		values := make(map[string]string, len(hs))
		for _, h := range hs {
			values[h.Name()] = h.Formatted()
		}
		return substitute(d.opts.SummaryTemplate, values)
	}

	lines := make([]string, 0, len(hs))
	for _, h := range hs {
		lines = append(lines, question.Capitalize(h.Name())+": "+h.Formatted())
	}
	return strings.Join(lines, "\n")
}

// substitute replaces $name and ${name} with values. Unknown names are
// left as they are and "$$" becomes "$".
func substitute(tmpl string, values map[string]string) string {
	return templateVar.ReplaceAllStringFunc(tmpl, func(m string) string {
		sub := templateVar.FindStringSubmatch(m)
		if sub[1] != "" {
			return "$"
		}
		name := sub[2]
		if name == "" {
			name = sub[3]
		}
		if v, ok := values[name]; ok {
			return v
		}
		return m
	})
}

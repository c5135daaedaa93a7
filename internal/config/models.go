package config

import (
	"fmt"
	"sort"

	"github.com/muurk/formulary/internal/theme"
)

// CurrentVersion is the preferences file format version.
const CurrentVersion = 1

// Preferences are the user's persistent defaults for the CLI and library.
type Preferences struct {
	Version int `yaml:"version"`

	// Theme is a registered theme name; ThemeFile, when set, wins over it.
	Theme     string `yaml:"theme,omitempty"`
	ThemeFile string `yaml:"theme_file,omitempty"`

	QuestionMark       string `yaml:"question_mark,omitempty"`
	DialogQuestionMark string `yaml:"dialog_question_mark,omitempty"`
	SelectOneSymbol    string `yaml:"selectone_symbol,omitempty"`
	SelectManySymbol   string `yaml:"selectmany_symbol,omitempty"`

	Wizard *WizardPrefs `yaml:"wizard,omitempty"`
}

// WizardPrefs are default wizard button texts.
type WizardPrefs struct {
	NextText     string `yaml:"next_text,omitempty"`
	PreviousText string `yaml:"previous_text,omitempty"`
	CancelText   string `yaml:"cancel_text,omitempty"`
	FinishText   string `yaml:"finish_text,omitempty"`
}

// NewPreferences creates preferences with default values.
func NewPreferences() *Preferences {
	return &Preferences{
		Version:          CurrentVersion,
		Theme:            "default",
		QuestionMark:     "?",
		SelectOneSymbol:  "(✓)",
		SelectManySymbol: "[✓]",
		Wizard:           &WizardPrefs{},
	}
}

// Apply returns a copy of t with the symbol preferences applied.
func (p *Preferences) Apply(t *theme.Theme) *theme.Theme {
	out := t.Clone()
	if p.QuestionMark != "" {
		out.Symbols.QuestionMark = p.QuestionMark
	}
	if p.DialogQuestionMark != "" {
		out.Symbols.DialogQuestionMark = p.DialogQuestionMark
	}
	if p.SelectOneSymbol != "" {
		out.Symbols.SelectOneChecked = p.SelectOneSymbol
	}
	if p.SelectManySymbol != "" {
		out.Symbols.SelectManyChecked = p.SelectManySymbol
	}
	return out
}

// settable maps `formulary config set` keys to preference fields.
func (p *Preferences) settable() map[string]*string {
	if p.Wizard == nil {
		p.Wizard = &WizardPrefs{}
	}
	return map[string]*string{
		"theme":                &p.Theme,
		"theme_file":           &p.ThemeFile,
		"question_mark":        &p.QuestionMark,
		"dialog_question_mark": &p.DialogQuestionMark,
		"selectone_symbol":     &p.SelectOneSymbol,
		"selectmany_symbol":    &p.SelectManySymbol,
		"wizard.next_text":     &p.Wizard.NextText,
		"wizard.previous_text": &p.Wizard.PreviousText,
		"wizard.cancel_text":   &p.Wizard.CancelText,
		"wizard.finish_text":   &p.Wizard.FinishText,
	}
}

// Set updates a single preference by its YAML key.
func (p *Preferences) Set(key, value string) error {
	field, ok := p.settable()[key]
	if !ok {
		return fmt.Errorf("unknown preference %q (valid: %v)", key, Keys())
	}
	*field = value
	return nil
}

// Keys lists the keys accepted by Set.
func Keys() []string {
	keys := make([]string, 0, 10)
	for k := range NewPreferences().settable() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

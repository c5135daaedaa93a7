package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/muurk/formulary/internal/registry"
)

// Palette holds the theme colors. Values are anything lipgloss.Color
// accepts: "#7D56F4", "63", "".
type Palette struct {
	Primary  string `yaml:"primary"`
	Accent   string `yaml:"accent"`
	Text     string `yaml:"text"`
	Muted    string `yaml:"muted"`
	Error    string `yaml:"error"`
	Success  string `yaml:"success"`
	Selected string `yaml:"selected"`
	Disabled string `yaml:"disabled"`
}

// Symbols holds the glyphs used by the widgets.
type Symbols struct {
	QuestionMark        string `yaml:"question_mark"`
	DialogQuestionMark  string `yaml:"dialog_question_mark"`
	SelectOneChecked    string `yaml:"selectone_checked"`
	SelectOneUnchecked  string `yaml:"selectone_unchecked"`
	SelectManyChecked   string `yaml:"selectmany_checked"`
	SelectManyUnchecked string `yaml:"selectmany_unchecked"`
	Pointer             string `yaml:"pointer"`
	PasswordMask        string `yaml:"password_mask"`
}

// Theme is a named palette plus symbol set.
type Theme struct {
	Name    string  `yaml:"name"`
	Colors  Palette `yaml:"colors"`
	Symbols Symbols `yaml:"symbols"`
}

// Default is the stock theme.
func Default() *Theme {
	return &Theme{
		Name: "default",
		Colors: Palette{
			Primary:  "#5FAFFF",
			Accent:   "#FFD75F",
			Text:     "#FFFFFF",
			Muted:    "#626262",
			Error:    "#FF5555",
			Success:  "#43BF6D",
			Selected: "#5FAFFF",
			Disabled: "#4E4E4E",
		},
		Symbols: Symbols{
			QuestionMark:        "?",
			DialogQuestionMark:  "",
			SelectOneChecked:    "(✓)",
			SelectOneUnchecked:  "( )",
			SelectManyChecked:   "[✓]",
			SelectManyUnchecked: "[ ]",
			Pointer:             "›",
			PasswordMask:        "•",
		},
	}
}

// Purple is the alternative built-in theme.
func Purple() *Theme {
	t := Default()
	t.Name = "purple"
	t.Colors.Primary = "#7D56F4"
	t.Colors.Accent = "#FF87D7"
	t.Colors.Selected = "#AF87FF"
	return t
}

// Clone returns an independent copy.
func (t *Theme) Clone() *Theme {
	c := *t
	return &c
}

// Load reads a YAML theme file. Missing colors and symbols fall back to the
// default theme.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML theme document.
func Parse(data []byte) (*Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	t.fill(Default())
	return &t, nil
}

func (t *Theme) fill(base *Theme) {
	fillString(&t.Name, "custom")
	fillString(&t.Colors.Primary, base.Colors.Primary)
	fillString(&t.Colors.Accent, base.Colors.Accent)
	fillString(&t.Colors.Text, base.Colors.Text)
	fillString(&t.Colors.Muted, base.Colors.Muted)
	fillString(&t.Colors.Error, base.Colors.Error)
	fillString(&t.Colors.Success, base.Colors.Success)
	fillString(&t.Colors.Selected, base.Colors.Selected)
	fillString(&t.Colors.Disabled, base.Colors.Disabled)
	fillString(&t.Symbols.QuestionMark, base.Symbols.QuestionMark)
	fillString(&t.Symbols.SelectOneChecked, base.Symbols.SelectOneChecked)
	fillString(&t.Symbols.SelectOneUnchecked, base.Symbols.SelectOneUnchecked)
	fillString(&t.Symbols.SelectManyChecked, base.Symbols.SelectManyChecked)
	fillString(&t.Symbols.SelectManyUnchecked, base.Symbols.SelectManyUnchecked)
	fillString(&t.Symbols.Pointer, base.Symbols.Pointer)
	fillString(&t.Symbols.PasswordMask, base.Symbols.PasswordMask)
}

func fillString(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

// Registry holds themes by name.
type Registry struct {
	themes *registry.Registry[*Theme]
}

// Builtins returns a registry with the "default" and "purple" themes.
func Builtins() *Registry {
	r := &Registry{themes: registry.New[*Theme]("theme")}
	r.themes.MustRegister("default", Default())
	r.themes.MustRegister("purple", Purple())
	return r
}

// Register adds a theme under its name.
func (r *Registry) Register(t *Theme) error {
	return r.themes.Register(t.Name, t)
}

// Get returns a copy of the named theme.
func (r *Registry) Get(name string) (*Theme, error) {
	t, err := r.themes.Lookup(name)
	if err != nil {
		return nil, err
	}
	return t.Clone(), nil
}

// Names lists the registered themes.
func (r *Registry) Names() []string {
	return r.themes.Names()
}

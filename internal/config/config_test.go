package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/muurk/formulary/internal/theme"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "formulary") {
		t.Errorf("GetConfigDir() = %v, should contain 'formulary'", configDir)
	}

	if runtime.GOOS == "linux" && os.Getenv("XDG_CONFIG_HOME") == "" {
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigPathOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "prefs.yaml")
	t.Setenv(PathEnvVar, want)

	got, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if got != want {
		t.Errorf("GetConfigPath() = %v, want %v", got, want)
	}
}

func TestNewPreferences(t *testing.T) {
	p := NewPreferences()
	if p.Version != CurrentVersion {
		t.Errorf("Version = %v, want %v", p.Version, CurrentVersion)
	}
	if p.Theme != "default" || p.QuestionMark != "?" {
		t.Errorf("unexpected defaults: %+v", p)
	}
	if p.SelectOneSymbol != "(✓)" || p.SelectManySymbol != "[✓]" {
		t.Errorf("unexpected symbols: %q %q", p.SelectOneSymbol, p.SelectManySymbol)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	p, err := LoadFrom(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if p.Theme != "default" {
		t.Errorf("Theme = %q, want default", p.Theme)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	p := NewPreferences()
	if err := p.Set("theme", "purple"); err != nil {
		t.Fatal(err)
	}
	if err := p.Set("wizard.next_text", "Forward"); err != nil {
		t.Fatal(err)
	}
	if err := p.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != 0600 {
		t.Errorf("file mode = %v, want 0600", info.Mode().Perm())
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if loaded.Theme != "purple" || loaded.Wizard.NextText != "Forward" {
		t.Errorf("loaded = %+v, wizard = %+v", loaded, loaded.Wizard)
	}
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 7\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() should reject version 7")
	}
}

func TestSetUnknownKey(t *testing.T) {
	if err := NewPreferences().Set("colour", "red"); err == nil {
		t.Error("Set() should reject unknown keys")
	}
	if len(Keys()) != 10 {
		t.Errorf("Keys() = %v", Keys())
	}
}

func TestApply(t *testing.T) {
	p := NewPreferences()
	p.SelectOneSymbol = "(*)"
	p.QuestionMark = ">"

	base := theme.Default()
	got := p.Apply(base)
	if got.Symbols.SelectOneChecked != "(*)" || got.Symbols.QuestionMark != ">" {
		t.Errorf("Apply() symbols = %+v", got.Symbols)
	}
	if base.Symbols.SelectOneChecked != "(✓)" {
		t.Error("Apply() modified the input theme")
	}
}

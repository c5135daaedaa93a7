package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muurk/formulary/internal/theme"
)

func TestPrinterError(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, nil)
	if p.Width() != MinTerminalWidth {
		t.Fatalf("Width() = %d, want %d for a non-terminal writer", p.Width(), MinTerminalWidth)
	}

	p.PrintError("Invalid questions", errors.New("bad type"), []string{"check the file"})
	out := buf.String()
	for _, want := range []string{FailureMarker, "Invalid questions", "bad type", "check the file"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrinterSuccessKeepsOrder(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, nil)
	p.SetWidth(60)
	p.PrintSuccess("Saved", []Detail{{Key: "zeta", Value: "1"}, {Key: "alpha", Value: "2"}})

	out := buf.String()
	z, a := strings.Index(out, "zeta"), strings.Index(out, "alpha")
	if z < 0 || a < 0 || z > a {
		t.Errorf("details out of order:\n%s", out)
	}
}

func TestRenderHeaderMinimumWidth(t *testing.T) {
	out := RenderHeader(NewBoxStyles(defaultTheme()), "themes", "2 available", []Detail{{Key: "default", Value: "active"}}, 10)
	if !strings.Contains(out, "THEMES") {
		t.Errorf("title not upper-cased:\n%s", out)
	}
	if !strings.Contains(out, "2 available") {
		t.Errorf("subtitle missing:\n%s", out)
	}
}

func defaultTheme() *theme.Theme { return theme.Default() }

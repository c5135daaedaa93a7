package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muurk/formulary/internal/theme"
)

// Printer writes styled, non-interactive output such as listings and error
// boxes.
type Printer struct {
	out    io.Writer
	width  int
	styles BoxStyles
}

// NewPrinter creates a Printer writing to w (os.Stdout when nil) with the
// colors of t (the default theme when nil).
func NewPrinter(w io.Writer, t *theme.Theme) *Printer {
	if w == nil {
		w = os.Stdout
	}
	if t == nil {
		t = theme.Default()
	}
	width := MinTerminalWidth
	if f, ok := w.(*os.File); ok {
		width = GetTerminalWidth(f)
	}
	return &Printer{out: w, width: width, styles: NewBoxStyles(t)}
}

// Width returns the width used for boxes
func (p *Printer) Width() int {
	return p.width
}

// SetWidth overrides the detected width
func (p *Printer) SetWidth(width int) {
	p.width = width
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintHeader prints a title box followed by its details
func (p *Printer) PrintHeader(title, subtitle string, details []Detail) {
	p.Println(RenderHeader(p.styles, title, subtitle, details, p.width))
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details []Detail) {
	p.Println(RenderSuccessBox(p.styles, title, details, p.width))
}

// PrintError prints an error box with hints
func (p *Printer) PrintError(title string, err error, hints []string) {
	p.Println(RenderErrorBox(p.styles, title, err, hints, p.width))
}

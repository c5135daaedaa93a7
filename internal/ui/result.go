package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Detail is one key/value line of a result box. Details keep their order.
type Detail struct {
	Key   string
	Value string
}

// RenderSuccessBox renders a success result box
func RenderSuccessBox(s BoxStyles, title string, details []Detail, width int) string {
	lines := []string{s.Success.Render(fmt.Sprintf("%s  %s", SuccessMarker, title))}
	if len(details) > 0 {
		lines = append(lines, "")
		lines = append(lines, renderDetails(s, details)...)
	}
	return boxStyle(s.SuccessFg, width).Render(strings.Join(lines, "\n"))
}

// RenderErrorBox renders an error box with the error and optional hints
func RenderErrorBox(s BoxStyles, title string, err error, hints []string, width int) string {
	lines := []string{s.Error.Render(fmt.Sprintf("%s  %s", FailureMarker, title))}
	if err != nil {
		lines = append(lines, "", s.Value.Render(err.Error()))
	}
	if len(hints) > 0 {
		lines = append(lines, "")
		for _, hint := range hints {
			lines = append(lines, s.Muted.Render("• "+hint))
		}
	}
	return boxStyle(s.ErrorFg, width).Render(strings.Join(lines, "\n"))
}

func renderDetails(s BoxStyles, details []Detail) []string {
	lines := make([]string, 0, len(details))
	for _, d := range details {
		lines = append(lines, s.Key.Render(d.Key)+" "+s.Value.Render(d.Value))
	}
	return lines
}

func boxStyle(border lipgloss.Color, width int) lipgloss.Style {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width-2).
		Padding(0, 1)
}

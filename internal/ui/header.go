package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderHeader renders a title box with an optional subtitle and a list of
// details below a divider.
func RenderHeader(s BoxStyles, title, subtitle string, details []Detail, width int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	sections := []string{s.Title.Render(strings.ToUpper(title))}
	if subtitle != "" {
		sections = append(sections, s.Subtitle.Render(subtitle))
	}
	if len(details) > 0 {
		dividerWidth := width - 6
		divider := lipgloss.NewStyle().Foreground(s.Primary).Render(strings.Repeat("─", dividerWidth))
		sections = append(sections, divider)
		for _, line := range renderDetails(s, details) {
			sections = append(sections, "  "+line)
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Primary).
		Width(width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

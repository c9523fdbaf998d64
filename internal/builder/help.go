package builder

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/rcmd/internal/ui"
)

// Help overlay styles
var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorNeonPink).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorNeonPink).
			Bold(true).
			MarginBottom(1)
)

// renderHelpOverlay renders a centered box with every key binding.
func (m Model) renderHelpOverlay() string {
	full := m.help
	full.ShowAll = true

	var lines []string
	lines = append(lines, helpTitleStyle.Render("Keyboard Shortcuts"))
	lines = append(lines, full.View(m.keys))
	lines = append(lines, "")
	lines = append(lines, "Letters type into the focused field; tab to the")
	lines = append(lines, "command list to use ?, j, k and q.")
	lines = append(lines, "")
	lines = append(lines, labelStyle.Render("Press ? or esc to close"))

	helpBox := helpBoxStyle.Render(strings.Join(lines, "\n"))

	width, height := m.width, m.height
	if width == 0 || height == 0 {
		return helpBox
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, helpBox)
}

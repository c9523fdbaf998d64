package builder

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/rcmd/internal/ui"
)

var (
	sectionStyle = lipgloss.NewStyle().
			Foreground(ui.ColorNeonPurple).
			Bold(true).
			MarginTop(1)

	sectionIntroStyle = lipgloss.NewStyle().
				Foreground(ui.ColorMuted)

	labelStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSecondary)

	labelFocusedStyle = lipgloss.NewStyle().
				Foreground(ui.ColorNeonCyan).
				Bold(true)

	promptStyle      = lipgloss.NewStyle().Foreground(ui.ColorNeonPink)
	inputTextStyle   = lipgloss.NewStyle().Foreground(ui.ColorPrimary)
	placeholderStyle = lipgloss.NewStyle().Foreground(ui.ColorMuted)

	noteStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(ui.ColorNeonAmber)

	commandTitleStyle = lipgloss.NewStyle().
				Foreground(ui.ColorNeonPurple).
				Bold(true)

	commandBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorGlassBorder).
			Foreground(ui.ColorPrimary).
			Padding(0, 1)

	commandBoxSelectedStyle = commandBoxStyle.
				BorderForeground(ui.ColorNeonCyan)

	commandBoxCopiedStyle = commandBoxStyle.
				BorderForeground(ui.ColorSuccess)

	copiedLineStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSuccess)

	warningStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(ui.ColorWarning).
			Foreground(ui.ColorWarning).
			PaddingLeft(1).
			MarginTop(1)

	toastStyle = lipgloss.NewStyle().
			Foreground(ui.ColorDeepVoid).
			Background(ui.ColorSuccess).
			Bold(true).
			Padding(0, 2)

	toastFailStyle = toastStyle.
			Background(ui.ColorError)

	footerStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Padding(0, 1)
)

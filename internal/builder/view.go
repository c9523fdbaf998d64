package builder

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/rcmd/internal/catalog"
	"github.com/rileyhilliard/rcmd/internal/params"
	"github.com/rileyhilliard/rcmd/internal/ui"
)

// Toast texts.
const (
	CopiedLine  = "Command copied to clipboard!"
	CopiedToast = "Command Copied!"
	FailedToast = "Copy failed: clipboard unavailable"
)

// commandBlockHeight is title + boxed command + copied line.
const commandBlockHeight = 5

// View renders the builder.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var body string
	if m.viewportReady {
		body = m.viewport.View()
	} else {
		body, _ = m.renderBody()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		m.renderToasts(),
		footerStyle.Render(m.help.View(m.keys)),
	)
}

// renderBody draws everything above the footer. It also returns the line the
// focused element starts on so the viewport can follow it.
func (m Model) renderBody() (string, int) {
	values := m.store.Snapshot()
	focusLine := 0

	var lines []string
	add := func(block string) {
		lines = append(lines, strings.Split(block, "\n")...)
	}
	mark := func() { focusLine = len(lines) }

	add(m.renderHeader())

	// Setup section
	add(sectionStyle.Render(catalog.SectionSetup.Heading()))
	add(sectionIntroStyle.Render("Run this command first to configure your remote. The API Key must be obtained from your FileLu account."))
	for _, f := range []params.Field{params.RemoteAlias, params.CredentialPlaceholder} {
		if m.focus == int(f) {
			mark()
		}
		add(m.renderInput(f))
		if f == params.CredentialPlaceholder {
			add(noteStyle.Render(catalog.CredentialNote))
		}
	}

	idx := 0
	for _, r := range m.catalog.RenderSection(catalog.SectionSetup, values) {
		if m.focus == focusCommands && m.selected == idx {
			mark()
		}
		add(m.renderCommand(r, idx))
		idx++
	}
	add(hintStyle.Render(m.wrap(m.catalog.ConfigHint(values))))

	// Examples section
	add(sectionStyle.Render(catalog.SectionExamples.Heading()))
	for _, f := range []params.Field{params.LocalPath, params.RemotePath} {
		if m.focus == int(f) {
			mark()
		}
		add(m.renderInput(f))
	}
	for _, r := range m.catalog.RenderSection(catalog.SectionExamples, values) {
		if m.focus == focusCommands && m.selected == idx {
			mark()
		}
		add(m.renderCommand(r, idx))
		idx++
	}
	add(warningStyle.Render(m.wrap(m.catalog.SyncWarning())))

	return strings.Join(lines, "\n"), focusLine
}

func (m Model) renderHeader() string {
	return ui.RenderHeader(ui.HeaderInfo{
		Title:   "FileLu Rclone Command Builder",
		Version: m.version,
		Tagline: "Configure a FileLu remote and copy ready-to-run rclone commands.",
	})
}

func (m Model) renderInput(f params.Field) string {
	label := labelStyle.Render(f.Label())
	if m.focus == int(f) {
		label = labelFocusedStyle.Render(f.Label())
	}
	return label + "\n" + m.inputs[f].View()
}

// renderCommand draws one titled command box. The copied line appears only
// under the command currently holding the copied slot.
func (m Model) renderCommand(r catalog.Rendered, idx int) string {
	selected := m.focus == focusCommands && m.selected == idx
	copied := m.signals.HasActive && m.signals.Active == r.Command

	marker := "  "
	if selected {
		marker = labelFocusedStyle.Render(ui.SymbolProgress + " ")
	}

	box := commandBoxStyle
	switch {
	case copied:
		box = commandBoxCopiedStyle
	case selected:
		box = commandBoxSelectedStyle
	}

	var b strings.Builder
	b.WriteString(marker + commandTitleStyle.Render(r.Title))
	b.WriteString("\n")
	b.WriteString(box.Width(m.boxWidth()).Render(r.Command))
	if copied {
		b.WriteString("\n")
		b.WriteString(copiedLineStyle.Render(ui.SymbolSuccess + " " + CopiedLine))
	}
	return b.String()
}

// renderToasts draws the bottom-right notifications.
func (m Model) renderToasts() string {
	var toasts []string
	if m.signals.LastFailed {
		toasts = append(toasts, toastFailStyle.Render(ui.SymbolFail+" "+FailedToast))
	}
	if m.signals.NotificationVisible {
		toasts = append(toasts, toastStyle.Render(CopiedToast))
	}
	if len(toasts) == 0 {
		return ""
	}

	width := m.width
	if width == 0 {
		width = defaultWidth
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right,
		lipgloss.JoinVertical(lipgloss.Right, toasts...))
}

func (m Model) wrap(s string) string {
	return lipgloss.NewStyle().Width(m.boxWidth()).Render(s)
}

package builder

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the builder's key bindings.
type KeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Up        key.Binding
	Down      key.Binding
	Copy      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/ctrl+p", "previous command"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/ctrl+n", "next command"),
		),
		Copy: key.NewBinding(
			key.WithKeys("enter", "ctrl+y"),
			key.WithHelp("enter", "copy command"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// Shortcuts that only apply when the command list has focus, so they can
// still be typed into inputs.
var (
	listUp   = key.NewBinding(key.WithKeys("k"))
	listDown = key.NewBinding(key.WithKeys("j"))
	listQuit = key.NewBinding(key.WithKeys("q"))
)

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Down, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.Up, k.Down},
		{k.Copy, k.PageUp, k.PageDown, k.Help, k.Quit},
	}
}

// HandleKeyMsg processes keyboard input. Returns true if the key was handled;
// unhandled keys go to the focused input.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	onList := m.focus == focusCommands

	// Help toggle takes priority
	if onList && key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && msg.String() == "esc" {
		m.showHelp = false
		return true, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit), onList && key.Matches(msg, listQuit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, m.keys.NextField):
		return true, m.setFocus((m.focus + 1) % focusCount)

	case key.Matches(msg, m.keys.PrevField):
		return true, m.setFocus((m.focus + focusCount - 1) % focusCount)

	case key.Matches(msg, m.keys.Up), onList && key.Matches(msg, listUp):
		m.moveSelection(-1)
		return true, nil

	case key.Matches(msg, m.keys.Down), onList && key.Matches(msg, listDown):
		m.moveSelection(1)
		return true, nil

	case key.Matches(msg, m.keys.Copy):
		return true, m.copySelected()

	case key.Matches(msg, m.keys.PageUp):
		m.scroll(-1)
		return true, nil

	case key.Matches(msg, m.keys.PageDown):
		m.scroll(1)
		return true, nil
	}

	return false, nil
}

package builder

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/rcmd/internal/catalog"
	"github.com/rileyhilliard/rcmd/internal/copier"
	"github.com/rileyhilliard/rcmd/internal/params"
)

// Focus targets: one per parameter field, then the command list.
var (
	focusCommands = len(params.Fields)
	focusCount    = focusCommands + 1
)

// Layout defaults used before the first WindowSizeMsg.
const (
	defaultWidth = 80
	maxBoxWidth  = 100
	footerHeight = 3
)

// SignalMsg carries a copy signal transition into the program.
type SignalMsg struct {
	State copier.State
}

// Model is the Bubble Tea model for the command builder.
type Model struct {
	store   *params.Store
	catalog *catalog.Catalog
	copier  *copier.Controller

	inputs   []textinput.Model
	focus    int
	selected int
	signals  copier.State

	keys     KeyMap
	help     help.Model
	showHelp bool
	version  string

	viewport      viewport.Model
	viewportReady bool
	width         int
	height        int
	quitting      bool
}

// Option configures a Model.
type Option func(*Model)

// WithVersion shows a version next to the title.
func WithVersion(v string) Option {
	return func(m *Model) {
		m.version = v
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) {
		m.keys = k
	}
}

// NewModel creates a builder over the given store, catalog and copy controller.
// The remote alias input starts focused.
func NewModel(store *params.Store, cat *catalog.Catalog, ctrl *copier.Controller, opts ...Option) Model {
	m := Model{
		store:   store,
		catalog: cat,
		copier:  ctrl,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		signals: ctrl.Snapshot(),
	}

	values := store.Snapshot()
	m.inputs = make([]textinput.Model, len(params.Fields))
	for i, f := range params.Fields {
		ti := textinput.New()
		ti.Prompt = "› "
		ti.Placeholder = f.Placeholder()
		ti.CharLimit = 0
		ti.PromptStyle = promptStyle
		ti.TextStyle = inputTextStyle
		ti.PlaceholderStyle = placeholderStyle
		ti.SetValue(values.Get(f))
		m.inputs[i] = ti
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.setFocus(0)
	m.resizeInputs()
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			m.syncViewport()
			return m, cmd
		}
		if m.focus < focusCommands {
			cmds = append(cmds, m.updateInput(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeInputs()

		viewportHeight := m.height - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}
		if !m.viewportReady {
			m.viewport = viewport.New(m.width, viewportHeight)
			m.viewportReady = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = viewportHeight
		}

	case SignalMsg:
		m.signals = msg.State

	default:
		// Cursor blink and other input-internal messages.
		if m.focus < focusCommands {
			cmds = append(cmds, m.updateInput(msg))
		}
	}

	m.syncViewport()
	return m, tea.Batch(cmds...)
}

// updateInput feeds msg to the focused input and writes any change through
// to the store.
func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	field := params.Fields[m.focus]
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if v := m.inputs[m.focus].Value(); v != m.store.Get(field) {
		m.store.Set(field, v)
	}
	return cmd
}

// setFocus moves focus, blurring every other input.
func (m *Model) setFocus(target int) tea.Cmd {
	m.focus = target
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == target {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) moveSelection(delta int) {
	n := len(m.catalog.Templates())
	if n == 0 {
		return
	}
	next := m.selected + delta
	if next < 0 {
		next = 0
	}
	if next >= n {
		next = n - 1
	}
	m.selected = next
}

// copySelected renders the selected template and copies it off the update
// loop; the result comes back as a SignalMsg.
func (m *Model) copySelected() tea.Cmd {
	rendered := m.catalog.Render(m.store.Snapshot())
	if m.selected >= len(rendered) {
		return nil
	}
	command := rendered[m.selected].Command
	ctrl := m.copier
	return func() tea.Msg {
		ctrl.AttemptCopy(command)
		return SignalMsg{State: ctrl.Snapshot()}
	}
}

func (m *Model) scroll(dir int) {
	if !m.viewportReady {
		return
	}
	step := m.viewport.Height / 2
	if step < 1 {
		step = 1
	}
	m.viewport.SetYOffset(m.viewport.YOffset + dir*step)
}

func (m *Model) resizeInputs() {
	w := m.boxWidth() - 6
	if w < 10 {
		w = 10
	}
	for i := range m.inputs {
		m.inputs[i].Width = w
	}
}

func (m Model) boxWidth() int {
	w := m.width
	if w == 0 {
		w = defaultWidth
	}
	w -= 4
	if w > maxBoxWidth {
		w = maxBoxWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// syncViewport refreshes the scrollable body and keeps the focused element in view.
func (m *Model) syncViewport() {
	if !m.viewportReady {
		return
	}
	body, focusLine := m.renderBody()
	m.viewport.SetContent(body)

	top := m.viewport.YOffset
	bottom := top + m.viewport.Height
	switch {
	case focusLine < top:
		m.viewport.SetYOffset(focusLine)
	case focusLine+commandBlockHeight > bottom:
		m.viewport.SetYOffset(focusLine + commandBlockHeight - m.viewport.Height)
	}
}

// Selected returns the currently selected command.
func (m Model) Selected() catalog.Rendered {
	rendered := m.catalog.Render(m.store.Snapshot())
	return rendered[m.selected]
}

// Signals returns the last copy signals the model has seen.
func (m Model) Signals() copier.State {
	return m.signals
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

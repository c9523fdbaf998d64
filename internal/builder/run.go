package builder

import (
	"context"
	stderrors "errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/rcmd/internal/copier"
	"github.com/rileyhilliard/rcmd/internal/errors"
)

// Run starts the builder full-screen and blocks until the user quits or ctx
// is cancelled. Copy signal transitions are forwarded into the program for
// as long as it runs. The caller still owns the controller and closes it.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(m, opts...)

	m.copier.OnChange(func(s copier.State) {
		p.Send(SignalMsg{State: s})
	})
	defer m.copier.OnChange(nil)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil && stderrors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return errors.WrapWithCode(err, errors.ErrUI,
			"The interactive builder stopped unexpectedly",
			"Use 'rcmd list' for plain output, or run with RCMD_DEBUG=1 for a debug log")
	}
	return nil
}

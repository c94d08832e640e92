package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run mounts the model on the terminal and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	options := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	}, opts...)

	p := tea.NewProgram(m, options...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run state layer: %w", err)
	}
	return nil
}

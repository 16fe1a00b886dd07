package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run opens the interactive form and blocks until the user quits or ctx is canceled.
func Run(ctx context.Context, opts ...Option) error {
	p := tea.NewProgram(New(opts...),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("interactive form failed: %w", err)
	}
	return nil
}

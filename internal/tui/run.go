package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive confessional and blocks until the user quits
// or ctx is canceled.
func Run(ctx context.Context, confessor Confessor, opts ...Option) error {
	if confessor == nil {
		return fmt.Errorf("confessor is required")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	program := tea.NewProgram(
		newModel(ctx, confessor, cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

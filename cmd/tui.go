package main

import (
	"context"
	"fmt"

	"github.com/AryehRotberg/reactive-wings/internal/shared"
	"github.com/AryehRotberg/reactive-wings/internal/tasks"
	"github.com/AryehRotberg/reactive-wings/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for subscription management.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.api == nil {
		return fmt.Errorf("%w: flight service not initialized", shared.ErrServiceUnavailable)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/wings-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}

	coordinator := tasks.NewCoordinator(r.api, nil, fileLogger)
	model := ui.NewModel(ctx, coordinator, fileLogger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

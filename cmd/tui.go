package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/wis/internal/shared"
	"github.com/desertthunder/wis/internal/ui"
	"github.com/urfave/cli/v3"
)

// View launches the interactive terminal viewer.
func (r *Runner) View(ctx context.Context, cmd *cli.Command) error {
	logFile := cmd.String("log-file")
	if logFile == "" {
		logFile = "./tmp/wis-tui.log"
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(logFile)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	fileLogger.SetLevel(r.logger.GetLevel())
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, r.sheetSource(cmd), fileLogger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

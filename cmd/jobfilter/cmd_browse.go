package main

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/jobfilter/cmd/jobfilter/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runBrowse(cmd *cobra.Command, args []string) error {
	// TTY guard: fall back to list when stdin is not a terminal
	// (piping, CI, scripts, etc.)
	if !term.IsTerminal(os.Stdin.Fd()) {
		return listCmd.RunE(cmd, args)
	}

	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer func() { _ = e.logger.Sync() }()

	model := tui.NewModel(tui.Options{
		Title:       filepath.Base(e.cfg.Data),
		Jobs:        e.jobs,
		Definitions: e.defs,
		Params:      e.cfg.Overlay.Params(),
		BarPosition: e.cfg.UI.FilterBar,
		Logger:      e.logger.Named("tui"),
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		e.logger.Error("tui exited with error", zap.Error(err))
		return err
	}
	return nil
}

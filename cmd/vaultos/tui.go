package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/vaultos/internal/app"
	"github.com/sandeepkv93/vaultos/internal/prompt"
	"github.com/sandeepkv93/vaultos/internal/update"
)

func runTUI(ctx context.Context, opts *cliOptions) error {
	var clip prompt.Clipboard
	if opts.cfg.UI.Clipboard && prompt.SystemClipboardAvailable() {
		clip = prompt.SystemClipboard{}
	}
	ws, closer, err := app.Open(ctx, opts.cfg, clip, opts.logger)
	if err != nil {
		return err
	}
	defer closer.Close()

	m := update.NewModel(ws, update.Options{
		DesktopNotifications: opts.cfg.UI.DesktopNotifications,
		Notifier:             update.ExecDesktopNotifier{},
		Logger:               opts.logger,
	})
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

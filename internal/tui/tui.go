package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/1broseidon/dockwm/internal/config"
	"github.com/1broseidon/dockwm/internal/ipc"
)

// Options configures Run.
type Options struct {
	Config *config.Config
	Logger *slog.Logger
	// IPC serves the control socket while the desktop runs.
	IPC bool
}

// Run shows the desktop in the terminal until the user quits.
func Run(opts Options) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("dockwm run requires an interactive terminal (stdin/stdout must be TTYs)")
	}
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	p := tea.NewProgram(
		NewModel(opts.Config, logger, nil),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	if opts.IPC {
		srv, err := ipc.NewServer(NewBridge(p.Send), logger)
		if err != nil {
			return err
		}
		if err := srv.Start(); err != nil {
			if errors.Is(err, ipc.ErrAlreadyRunning) {
				return err
			}
			logger.Warn("IPC disabled", "error", err)
		} else {
			defer srv.Stop()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("desktop exited: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tcellterm"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

const (
	backendTea   = "tea"
	backendTcell = "tcell"
)

var flagBackend string

var errNotATerminal = errors.New("platformer needs an interactive terminal (use 'platformer serve' for remote play)")

func runPlay(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotATerminal
	}

	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	t, err := newTerminal(flagBackend, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "backend", flagBackend, "viewport", fmt.Sprintf("%dx%d", cfg.Viewport.Width, cfg.Viewport.Height))
	return platformer.NewLoop(t, cfg, logger).Run(ctx)
}

// newTerminal creates the selected backend.
func newTerminal(backend string, cfg config.PlatformerConfig) (core.Terminal, error) {
	switch backend {
	case backendTea:
		return tui.NewTerminal(tui.Options{
			ProgramOptions: []tea.ProgramOption{tea.WithAltScreen()},
			Color:          cfg.Render.Color,
		}), nil
	case backendTcell:
		t, err := tcellterm.New(cfg.Render.Color)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unknown backend %q (expected %s or %s)", backend, backendTea, backendTcell)
	}
}

// newLogger logs to path, or discards when path is empty since the game owns
// stdout. The returned func closes the log file.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dacite/internal/app"
	"github.com/thenoetrevino/dacite/internal/config"
	"github.com/thenoetrevino/dacite/internal/logging"
	"github.com/thenoetrevino/dacite/internal/tui"
	"github.com/thenoetrevino/dacite/internal/tui/core"
)

// Launch starts the TUI application. A non-zero opts.ColumnID or opts.GroupID
// opens the editor directly instead of the column list.
func Launch(opts tui.Options) error {
	// Initialize logging to file before anything else
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	application, err := app.Open(ctx, cfg.Database, app.WithLogger(slog.Default()))
	if err != nil {
		return err
	}

	// database cleanup
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	tuiApp, err := core.New(ctx, application, cfg, opts)
	if err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// Let an in-flight save reach the database before it is closed
		select {
		case <-errChan:
		case <-time.After(2 * time.Second):
		}
	}

	return nil
}

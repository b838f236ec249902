package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/dacite/internal/app"
	"github.com/thenoetrevino/dacite/internal/config"
	"github.com/thenoetrevino/dacite/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	// owned is false when the App was injected through the context
	owned bool
}

// NewCLI loads the configuration and opens the configured database
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	application, err := app.Open(ctx, cfg.Database, app.WithLogger(slog.Default()))
	if err != nil {
		return nil, err
	}

	return &CLI{App: application, Config: cfg, owned: true}, nil
}

// GetCLIFromContext returns a CLI over the App stored in ctx by WithApp,
// or opens a new one from the configuration.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: config.Default()}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

// InitLogging sends log output to the log file so it does not mix with command output
func InitLogging() error {
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}

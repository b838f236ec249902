package core

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dacite/internal/app"
	"github.com/thenoetrevino/dacite/internal/config"
	"github.com/thenoetrevino/dacite/internal/tui"
)

// App wraps the TUI Model and implements the tea.Model interface.
// This is the single entry point for the Bubble Tea application.
type App struct {
	model *tui.Model
}

// New creates a new App with an initialized Model.
// Fails when opts names a column or group that cannot be loaded.
func New(ctx context.Context, application *app.App, cfg *config.Config, opts tui.Options) (*App, error) {
	model, err := tui.InitialModel(ctx, application, cfg, opts)
	if err != nil {
		return nil, err
	}
	return &App{model: &model}, nil
}

// Init initializes the Bubble Tea application.
// Implements tea.Model interface.
func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update handles all messages and updates the model.
// Implements tea.Model interface.
// Delegates to Model.Update() method.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := a.model.Update(msg)
	// Unwrap the updated Model and store it back
	if m, ok := updatedModel.(tui.Model); ok {
		*a.model = m
	}
	return a, cmd
}

// View renders the current state of the application.
// Implements tea.Model interface.
func (a *App) View() tea.View {
	return a.model.View()
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}

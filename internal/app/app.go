package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/dacite/internal/config"
	"github.com/thenoetrevino/dacite/internal/database"
	"github.com/thenoetrevino/dacite/internal/editor"
	"github.com/thenoetrevino/dacite/internal/models"
	columnservice "github.com/thenoetrevino/dacite/internal/services/column"
	referenceservice "github.com/thenoetrevino/dacite/internal/services/reference"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore
	db   *sql.DB // set when the App opened the connection itself

	logger *slog.Logger

	// Service layer (business logic)
	ColumnService    columnservice.Service
	ReferenceService referenceservice.Service
}

// New creates a new App with all services initialized over repo.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return &App{
		repo:             repo,
		logger:           cfg.logger,
		ColumnService:    columnservice.NewService(repo),
		ReferenceService: referenceservice.NewService(repo),
	}
}

// Open connects to the configured database and builds the App on top of it.
// Close releases the connection.
func Open(ctx context.Context, dbCfg config.Database, opts ...Option) (*App, error) {
	db, dialect, err := database.InitDB(ctx, dbCfg.Driver, dbCfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	a := New(database.NewRepository(db, dialect), opts...)
	a.db = db
	a.logger.Info("database opened", "driver", dialect.String())
	return a, nil
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// NewEditor opens an editor over initial whose submissions go to the column service
func (a *App) NewEditor(initial editor.Draft) *editor.Editor {
	return editor.New(initial, a.ColumnService, editor.WithLogger(a.logger))
}

// LoadDraft returns the draft for an existing column, or an empty one in groupID
// when columnID is 0. With both zero the new column goes in the first group.
func (a *App) LoadDraft(ctx context.Context, columnID, groupID int) (editor.Draft, *models.ColumnGroup, error) {
	if columnID > 0 {
		col, err := a.ColumnService.GetColumn(ctx, columnID)
		if err != nil {
			return editor.Draft{}, nil, err
		}
		return editor.FromColumn(col), &models.ColumnGroup{ID: col.GroupID, Name: col.GroupName}, nil
	}

	if groupID == 0 {
		groups, err := a.ColumnService.ListGroups(ctx)
		if err != nil {
			return editor.Draft{}, nil, err
		}
		if len(groups) == 0 {
			return editor.Draft{}, nil, fmt.Errorf("no column groups: %w", columnservice.ErrGroupNotFound)
		}
		return editor.Empty(groups[0].ID), groups[0], nil
	}

	g, err := a.ColumnService.GetGroup(ctx, groupID)
	if err != nil {
		return editor.Draft{}, nil, err
	}
	return editor.Empty(g.ID), g, nil
}

// Close releases the database connection if the App owns one
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Package database handles the initialization and connection to the column store.
// SQLite (modernc) is the default; Postgres is reached through the pgx stdlib driver.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	_ "modernc.org/sqlite"
)

// Supported driver names, as written in the config file
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ErrUnsupportedDriver is returned for a driver name other than sqlite or postgres
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// InitDB opens the configured database, applies pragmas and runs migrations.
// An empty sqlite dsn stores the database under ~/.dacite/columns.db.
func InitDB(ctx context.Context, driver, dsn string) (*sql.DB, Dialect, error) {
	switch driver {
	case DriverSQLite, "":
		db, err := openSQLite(ctx, dsn)
		return db, DialectSQLite, err
	case DriverPostgres:
		db, err := openPostgres(ctx, dsn)
		return db, DialectPostgres, err
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

func defaultSQLitePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	daciteDir := filepath.Join(home, ".dacite")
	if err := os.MkdirAll(daciteDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	return filepath.Join(daciteDir, "columns.db"), nil
}

func openSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		path, err := defaultSQLitePath()
		if err != nil {
			return nil, err
		}
		dsn = path
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite benefits from a single writer connection; pragmas are per connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			slog.Error("Failed to apply pragma", "pragma", pragma, "error", err)
			closeQuietly(db)
			return nil, err
		}
	}

	return finishOpen(ctx, db, DialectSQLite)
}

func openPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = defaultPostgresDSN
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	return finishOpen(ctx, db, DialectPostgres)
}

const defaultPostgresDSN = "postgres://localhost/dacite?sslmode=disable"

func finishOpen(ctx context.Context, db *sql.DB, dialect Dialect) (*sql.DB, error) {
	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := runMigrations(ctx, db, dialect); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}

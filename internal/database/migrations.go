package database

import (
	"context"
	"database/sql"
	"fmt"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS col_groups (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		col_group TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS refs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		pub_year INTEGER NOT NULL,
		author TEXT NOT NULL,
		ref TEXT NOT NULL,
		doi TEXT,
		url TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS cols (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		col_group_id INTEGER NOT NULL,
		col_name TEXT NOT NULL,
		col_number INTEGER,
		notes TEXT,
		ref_id INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (col_group_id) REFERENCES col_groups(id) ON DELETE CASCADE,
		FOREIGN KEY (ref_id) REFERENCES refs(id) ON DELETE SET NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cols_group ON cols(col_group_id, col_number)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS col_groups (
		id SERIAL PRIMARY KEY,
		col_group TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS refs (
		id SERIAL PRIMARY KEY,
		pub_year INTEGER NOT NULL,
		author TEXT NOT NULL,
		ref TEXT NOT NULL,
		doi TEXT,
		url TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS cols (
		id SERIAL PRIMARY KEY,
		col_group_id INTEGER NOT NULL REFERENCES col_groups(id) ON DELETE CASCADE,
		col_name TEXT NOT NULL,
		col_number INTEGER,
		notes TEXT,
		ref_id INTEGER REFERENCES refs(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ DEFAULT now(),
		updated_at TIMESTAMPTZ DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cols_group ON cols(col_group_id, col_number)`,
}

// runMigrations creates the database schema and seeds default data if needed
func runMigrations(ctx context.Context, db *sql.DB, dialect Dialect) error {
	schema := sqliteSchema
	if dialect == DialectPostgres {
		schema = postgresSchema
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("execute ddl: %w", err)
		}
	}

	return seedDefaultGroup(ctx, db)
}

// DefaultGroupName is the column group seeded into an empty database
const DefaultGroupName = "Unassigned"

// seedDefaultGroup inserts a default column group if the table is empty
func seedDefaultGroup(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM col_groups").Scan(&count); err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	_, err := db.ExecContext(ctx, "INSERT INTO col_groups (col_group) VALUES ('"+DefaultGroupName+"')")
	return err
}

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/dacite/internal/models"
)

// GroupRepo handles column group operations.
type GroupRepo struct {
	db      *sql.DB
	dialect Dialect
}

// List returns all column groups ordered by name
func (r *GroupRepo) List(ctx context.Context) ([]*models.ColumnGroup, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, col_group FROM col_groups ORDER BY col_group`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*models.ColumnGroup
	for rows.Next() {
		g := &models.ColumnGroup{}
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	return groups, rows.Err()
}

// GetByID returns one column group or models.ErrNotFound
func (r *GroupRepo) GetByID(ctx context.Context, id int) (*models.ColumnGroup, error) {
	g := &models.ColumnGroup{}
	err := r.db.QueryRowContext(ctx,
		r.dialect.Rebind(`SELECT id, col_group FROM col_groups WHERE id = ?`), id,
	).Scan(&g.ID, &g.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("column group %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Create inserts a column group
func (r *GroupRepo) Create(ctx context.Context, name string) (*models.ColumnGroup, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		r.dialect.Rebind(`INSERT INTO col_groups (col_group) VALUES (?) RETURNING id`), name,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to insert column group: %w", err)
	}
	return &models.ColumnGroup{ID: int(id), Name: name}, nil
}

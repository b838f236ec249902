package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/dacite/internal/models"
)

// ColumnRepo handles all column-related database operations.
type ColumnRepo struct {
	db      *sql.DB
	dialect Dialect
}

const selectColumnDetail = `
	SELECT c.id, c.col_group_id, c.col_name, c.col_number, c.notes, c.ref_id,
	       c.created_at, c.updated_at, g.col_group,
	       r.pub_year, r.author, r.ref, r.doi, r.url
	FROM cols c
	INNER JOIN col_groups g ON g.id = c.col_group_id
	LEFT JOIN refs r ON r.id = c.ref_id`

// List returns the columns of a group ordered by number, then name.
// groupID 0 lists every column.
func (r *ColumnRepo) List(ctx context.Context, groupID int) ([]*models.ColumnDetail, error) {
	query := selectColumnDetail
	var args []any
	if groupID > 0 {
		query += ` WHERE c.col_group_id = ?`
		args = append(args, groupID)
	}
	query += ` ORDER BY g.col_group, c.col_number, c.col_name, c.id`

	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []*models.ColumnDetail
	for rows.Next() {
		col, err := scanColumnDetail(rows)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}

	return cols, rows.Err()
}

// GetByID returns one column with its group name and reference
func (r *ColumnRepo) GetByID(ctx context.Context, id int) (*models.ColumnDetail, error) {
	return getColumnDetail(ctx, r.db, r.dialect, id)
}

func getColumnDetail(ctx context.Context, q querier, dialect Dialect, id int) (*models.ColumnDetail, error) {
	row := q.QueryRowContext(ctx, dialect.Rebind(selectColumnDetail+` WHERE c.id = ?`), id)
	col, err := scanColumnDetail(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("column %d: %w", id, models.ErrNotFound)
	}
	return col, err
}

// Save inserts or updates a column. A non-nil newRef is inserted first, in the same
// transaction, and the column's RefID is pointed at it.
func (r *ColumnRepo) Save(ctx context.Context, col models.Column, newRef *models.Reference) (*models.ColumnDetail, error) {
	var saved *models.ColumnDetail

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if newRef != nil {
			ref, err := insertReference(ctx, tx, r.dialect, *newRef)
			if err != nil {
				return err
			}
			col.RefID = &ref.ID
		}

		if col.ID == 0 {
			id, err := r.insert(ctx, tx, col)
			if err != nil {
				return err
			}
			col.ID = id
		} else if err := r.update(ctx, tx, col); err != nil {
			return err
		}

		detail, err := getColumnDetail(ctx, tx, r.dialect, col.ID)
		if err != nil {
			return err
		}
		saved = detail
		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

func (r *ColumnRepo) insert(ctx context.Context, tx *sql.Tx, col models.Column) (int, error) {
	var id int64
	err := tx.QueryRowContext(ctx,
		r.dialect.Rebind(`INSERT INTO cols (col_group_id, col_name, col_number, notes, ref_id)
			VALUES (?, ?, ?, ?, ?) RETURNING id`),
		col.GroupID, col.Name, intPtrToNull(col.Number), stringToNull(col.Notes), intPtrToNull(col.RefID),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert column: %w", err)
	}
	return int(id), nil
}

func (r *ColumnRepo) update(ctx context.Context, tx *sql.Tx, col models.Column) error {
	res, err := tx.ExecContext(ctx,
		r.dialect.Rebind(`UPDATE cols
			SET col_group_id = ?, col_name = ?, col_number = ?, notes = ?, ref_id = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?`),
		col.GroupID, col.Name, intPtrToNull(col.Number), stringToNull(col.Notes), intPtrToNull(col.RefID), col.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update column: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("column %d: %w", col.ID, models.ErrNotFound)
	}
	return nil
}

// Delete removes a column
func (r *ColumnRepo) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM cols WHERE id = ?`), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("column %d: %w", id, models.ErrNotFound)
	}
	return nil
}

func scanColumnDetail(s rowScanner) (*models.ColumnDetail, error) {
	var (
		col              models.ColumnDetail
		number, refID    sql.NullInt64
		notes            sql.NullString
		pubYear          sql.NullInt64
		author, citation sql.NullString
		doi, url         sql.NullString
	)
	err := s.Scan(
		&col.ID, &col.GroupID, &col.Name, &number, &notes, &refID,
		&col.CreatedAt, &col.UpdatedAt, &col.GroupName,
		&pubYear, &author, &citation, &doi, &url,
	)
	if err != nil {
		return nil, err
	}

	col.Number = nullInt64ToPtr(number)
	col.Notes = NullStringToString(notes)
	col.RefID = nullInt64ToPtr(refID)
	if col.RefID != nil {
		col.Ref = &models.Reference{
			ID:      *col.RefID,
			PubYear: int(pubYear.Int64),
			Author:  NullStringToString(author),
			Ref:     NullStringToString(citation),
			DOI:     NullStringToString(doi),
			URL:     NullStringToString(url),
		}
	}
	return &col, nil
}

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/dacite/internal/models"
)

// ReferenceRepo handles all reference-related database operations.
type ReferenceRepo struct {
	db      *sql.DB
	dialect Dialect
}

const selectReference = `SELECT id, pub_year, author, ref, doi, url FROM refs`

// List returns every reference ordered by author, then year
func (r *ReferenceRepo) List(ctx context.Context) ([]*models.Reference, error) {
	rows, err := r.db.QueryContext(ctx, selectReference+` ORDER BY author, pub_year, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []*models.Reference
	for rows.Next() {
		ref, err := scanReference(rows)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}

// GetByID returns one reference or models.ErrNotFound
func (r *ReferenceRepo) GetByID(ctx context.Context, id int) (*models.Reference, error) {
	row := r.db.QueryRowContext(ctx, r.dialect.Rebind(selectReference+` WHERE id = ?`), id)
	ref, err := scanReference(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reference %d: %w", id, models.ErrNotFound)
	}
	return ref, err
}

// Create inserts a reference and returns it with its new ID
func (r *ReferenceRepo) Create(ctx context.Context, ref models.Reference) (*models.Reference, error) {
	return insertReference(ctx, r.db, r.dialect, ref)
}

func insertReference(ctx context.Context, q querier, dialect Dialect, ref models.Reference) (*models.Reference, error) {
	var id int64
	err := q.QueryRowContext(ctx,
		dialect.Rebind(`INSERT INTO refs (pub_year, author, ref, doi, url) VALUES (?, ?, ?, ?, ?) RETURNING id`),
		ref.PubYear, ref.Author, ref.Ref, stringToNull(ref.DOI), stringToNull(ref.URL),
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to insert reference: %w", err)
	}

	ref.ID = int(id)
	return &ref, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanReference(s rowScanner) (*models.Reference, error) {
	var (
		ref      models.Reference
		doi, url sql.NullString
	)
	if err := s.Scan(&ref.ID, &ref.PubYear, &ref.Author, &ref.Ref, &doi, &url); err != nil {
		return nil, err
	}
	ref.DOI = NullStringToString(doi)
	ref.URL = NullStringToString(url)
	return &ref, nil
}

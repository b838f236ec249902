package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/dacite/internal/models"
)

// Compile-time contract assertion ensuring the repository satisfies DataStore.
var _ DataStore = (*Repository)(nil)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*ReferenceRepo
	*GroupRepo
	*ColumnRepo
}

// NewRepository creates a new Repository wrapping the given connection.
func NewRepository(db *sql.DB, dialect Dialect) *Repository {
	return &Repository{
		ReferenceRepo: &ReferenceRepo{db: db, dialect: dialect},
		GroupRepo:     &GroupRepo{db: db, dialect: dialect},
		ColumnRepo:    &ColumnRepo{db: db, dialect: dialect},
	}
}

// Wrapper methods for ReferenceRepo
func (r *Repository) ListReferences(ctx context.Context) ([]*models.Reference, error) {
	return r.ReferenceRepo.List(ctx)
}

func (r *Repository) GetReferenceByID(ctx context.Context, id int) (*models.Reference, error) {
	return r.ReferenceRepo.GetByID(ctx, id)
}

func (r *Repository) CreateReference(ctx context.Context, ref models.Reference) (*models.Reference, error) {
	return r.ReferenceRepo.Create(ctx, ref)
}

// Wrapper methods for GroupRepo
func (r *Repository) ListGroups(ctx context.Context) ([]*models.ColumnGroup, error) {
	return r.GroupRepo.List(ctx)
}

func (r *Repository) GetGroupByID(ctx context.Context, id int) (*models.ColumnGroup, error) {
	return r.GroupRepo.GetByID(ctx, id)
}

func (r *Repository) CreateGroup(ctx context.Context, name string) (*models.ColumnGroup, error) {
	return r.GroupRepo.Create(ctx, name)
}

// Wrapper methods for ColumnRepo
func (r *Repository) ListColumns(ctx context.Context, groupID int) ([]*models.ColumnDetail, error) {
	return r.ColumnRepo.List(ctx, groupID)
}

func (r *Repository) GetColumnByID(ctx context.Context, id int) (*models.ColumnDetail, error) {
	return r.ColumnRepo.GetByID(ctx, id)
}

func (r *Repository) SaveColumn(ctx context.Context, col models.Column, newRef *models.Reference) (*models.ColumnDetail, error) {
	return r.ColumnRepo.Save(ctx, col, newRef)
}

func (r *Repository) DeleteColumn(ctx context.Context, id int) error {
	return r.ColumnRepo.Delete(ctx, id)
}

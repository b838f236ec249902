package database

import (
	"context"

	"github.com/thenoetrevino/dacite/internal/models"
)

// ReferenceRepository defines read and write operations for references.
type ReferenceRepository interface {
	ListReferences(ctx context.Context) ([]*models.Reference, error)
	GetReferenceByID(ctx context.Context, id int) (*models.Reference, error)
	CreateReference(ctx context.Context, ref models.Reference) (*models.Reference, error)
}

// GroupRepository defines operations for column groups.
type GroupRepository interface {
	ListGroups(ctx context.Context) ([]*models.ColumnGroup, error)
	GetGroupByID(ctx context.Context, id int) (*models.ColumnGroup, error)
	CreateGroup(ctx context.Context, name string) (*models.ColumnGroup, error)
}

// ColumnRepository defines operations for columns.
// SaveColumn inserts (ID 0) or updates the column; when newRef is non-nil the reference is
// inserted first in the same transaction and the column is linked to it.
type ColumnRepository interface {
	ListColumns(ctx context.Context, groupID int) ([]*models.ColumnDetail, error)
	GetColumnByID(ctx context.Context, id int) (*models.ColumnDetail, error)
	SaveColumn(ctx context.Context, col models.Column, newRef *models.Reference) (*models.ColumnDetail, error)
	DeleteColumn(ctx context.Context, id int) error
}

// DataStore composes all repositories needed by the services.
type DataStore interface {
	ReferenceRepository
	GroupRepository
	ColumnRepository
}

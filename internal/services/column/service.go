package column

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/dacite/internal/database"
	"github.com/thenoetrevino/dacite/internal/editor"
	"github.com/thenoetrevino/dacite/internal/models"
	"github.com/thenoetrevino/dacite/internal/services/reference"
)

// Service defines all column-related business operations.
// It is the persister behind the column editor.
type Service interface {
	// Read operations
	ListColumns(ctx context.Context, groupID int) ([]*models.ColumnDetail, error)
	GetColumn(ctx context.Context, id int) (*models.ColumnDetail, error)
	ListGroups(ctx context.Context) ([]*models.ColumnGroup, error)
	GetGroup(ctx context.Context, id int) (*models.ColumnGroup, error)

	// Write operations
	PersistChanges(ctx context.Context, final editor.Draft, changed []editor.Field) (editor.Draft, error)
	DeleteColumn(ctx context.Context, id int) error
}

// Compile-time check that the service can back an editor
var _ editor.Persister = (Service)(nil)

// Store is the subset of the data store the column service needs
type Store interface {
	database.ColumnRepository
	database.GroupRepository
}

type service struct {
	store Store
}

// NewService creates a new column service
func NewService(store Store) Service {
	return &service{store: store}
}

// ListColumns retrieves the columns of a group (0 for all groups)
func (s *service) ListColumns(ctx context.Context, groupID int) ([]*models.ColumnDetail, error) {
	if groupID < 0 {
		return nil, ErrInvalidGroupID
	}
	return s.store.ListColumns(ctx, groupID)
}

// GetColumn retrieves a specific column with its group and reference
func (s *service) GetColumn(ctx context.Context, id int) (*models.ColumnDetail, error) {
	if id <= 0 {
		return nil, ErrInvalidColumnID
	}
	col, err := s.store.GetColumnByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrColumnNotFound
	}
	return col, err
}

// ListGroups retrieves every column group
func (s *service) ListGroups(ctx context.Context) ([]*models.ColumnGroup, error) {
	return s.store.ListGroups(ctx)
}

// GetGroup retrieves a column group
func (s *service) GetGroup(ctx context.Context, id int) (*models.ColumnGroup, error) {
	if id <= 0 {
		return nil, ErrInvalidGroupID
	}
	g, err := s.store.GetGroupByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrGroupNotFound
	}
	return g, err
}

// PersistChanges validates and stores a finished draft. A drafted reference (ID 0) is
// validated and inserted in the same transaction as the column.
func (s *service) PersistChanges(ctx context.Context, final editor.Draft, changed []editor.Field) (editor.Draft, error) {
	if err := validateDraft(final); err != nil {
		return editor.Draft{}, err
	}

	var newRef *models.Reference
	if final.Ref != nil && final.Ref.IsDraft() {
		if err := reference.Validate(*final.Ref); err != nil {
			return editor.Draft{}, fmt.Errorf("new reference: %w", err)
		}
		ref := *final.Ref
		newRef = &ref
	}

	col := final.Column()
	col.Name = strings.TrimSpace(col.Name)

	saved, err := s.store.SaveColumn(ctx, col, newRef)
	if errors.Is(err, models.ErrNotFound) {
		return editor.Draft{}, ErrColumnNotFound
	}
	if err != nil {
		return editor.Draft{}, fmt.Errorf("failed to store column: %w", err)
	}

	fields := make([]string, 0, len(changed))
	for _, f := range changed {
		fields = append(fields, f.String())
	}
	slog.Info("column saved",
		"column_id", saved.ID,
		"created", final.IsNew(),
		"changed", strings.Join(fields, ","),
		"new_reference", newRef != nil,
	)

	return editor.FromColumn(saved), nil
}

// DeleteColumn removes a column
func (s *service) DeleteColumn(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidColumnID
	}
	err := s.store.DeleteColumn(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return ErrColumnNotFound
	}
	return err
}

func validateDraft(d editor.Draft) error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > models.MaxColumnNameLength {
		return ErrNameTooLong
	}
	if utf8.RuneCountInString(d.Notes) > models.MaxNotesLength {
		return ErrNotesTooLong
	}
	if d.GroupID <= 0 {
		return ErrInvalidGroupID
	}
	if d.ColumnID < 0 {
		return ErrInvalidColumnID
	}
	return nil
}

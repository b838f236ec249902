package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/dacite/internal/models"
)

func TestMigrations_SeedDefaultGroupOnce(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, runMigrations(ctx, db, DialectSQLite))

	repo := NewRepository(db, DialectSQLite)
	groups, err := repo.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, DefaultGroupName, groups[0].Name)
}

func TestReferences_CreateAndList(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	smith, err := repo.CreateReference(ctx, models.Reference{PubYear: 1990, Author: "Smith", Ref: "Smith, 1990. Stratigraphy."})
	require.NoError(t, err)
	assert.NotZero(t, smith.ID)

	_, err = repo.CreateReference(ctx, models.Reference{PubYear: 1985, Author: "Adams", Ref: "Adams, 1985.", DOI: "10.1000/xyz", URL: "https://example.org"})
	require.NoError(t, err)

	refs, err := repo.ListReferences(ctx)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "Adams", refs[0].Author, "references are ordered by author")
	assert.Equal(t, "10.1000/xyz", refs[0].DOI)
	assert.Equal(t, "", refs[1].DOI, "NULL doi reads back as empty")

	got, err := repo.GetReferenceByID(ctx, smith.ID)
	require.NoError(t, err)
	assert.Equal(t, *smith, *got)
}

func TestReferences_GetMissing(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GetReferenceByID(context.Background(), 999)

	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestColumns_InsertThenUpdate(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	created, err := repo.SaveColumn(ctx, models.Column{GroupID: 1, Name: "Member A", Number: intPtr(3), Notes: "fine-grained"}, nil)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, DefaultGroupName, created.GroupName)
	assert.Equal(t, 3, *created.Number)
	assert.Nil(t, created.Ref)

	created.Column.Name = "Member B"
	created.Column.Number = nil
	updated, err := repo.SaveColumn(ctx, created.Column, nil)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Member B", updated.Name)
	assert.Nil(t, updated.Number)
	assert.Equal(t, "fine-grained", updated.Notes)
}

func TestColumns_SaveWithExistingReference(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	ref, err := repo.CreateReference(ctx, models.Reference{PubYear: 1990, Author: "Smith", Ref: "Smith 1990"})
	require.NoError(t, err)

	col, err := repo.SaveColumn(ctx, models.Column{GroupID: 1, Name: "Member A", RefID: &ref.ID}, nil)
	require.NoError(t, err)

	require.NotNil(t, col.Ref)
	assert.Equal(t, "Smith(1990)", col.Ref.Label())
}

func TestColumns_SaveCascadesNewReference(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	col, err := repo.SaveColumn(ctx,
		models.Column{GroupID: 1, Name: "Member A"},
		&models.Reference{PubYear: 2024, Author: "Lee", Ref: "Lee 2024", URL: "https://doi.org/10.1/x"},
	)
	require.NoError(t, err)

	require.NotNil(t, col.Ref)
	assert.NotZero(t, col.Ref.ID)
	assert.Equal(t, "https://doi.org/10.1/x", col.Ref.URL)

	refs, err := repo.ListReferences(ctx)
	require.NoError(t, err)
	assert.Len(t, refs, 1)
}

func TestColumns_FailedSaveRollsBackNewReference(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	// group 999 violates the foreign key, so the reference insert must roll back too
	_, err := repo.SaveColumn(ctx,
		models.Column{GroupID: 999, Name: "Orphan"},
		&models.Reference{PubYear: 2024, Author: "Lee", Ref: "Lee 2024"},
	)
	require.Error(t, err)

	refs, err := repo.ListReferences(ctx)
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestColumns_UpdateMissing(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.SaveColumn(context.Background(), models.Column{ID: 77, GroupID: 1, Name: "Ghost"}, nil)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestColumns_ListByGroup(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	other, err := repo.CreateGroup(ctx, "Basin B")
	require.NoError(t, err)

	_, err = repo.SaveColumn(ctx, models.Column{GroupID: 1, Name: "Second", Number: intPtr(2)}, nil)
	require.NoError(t, err)
	_, err = repo.SaveColumn(ctx, models.Column{GroupID: 1, Name: "First", Number: intPtr(1)}, nil)
	require.NoError(t, err)
	_, err = repo.SaveColumn(ctx, models.Column{GroupID: other.ID, Name: "Elsewhere"}, nil)
	require.NoError(t, err)

	cols, err := repo.ListColumns(ctx, 1)
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, "First", cols[0].Name)
	assert.Equal(t, "Second", cols[1].Name)

	all, err := repo.ListColumns(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestColumns_Delete(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	col, err := repo.SaveColumn(ctx, models.Column{GroupID: 1, Name: "Temp"}, nil)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteColumn(ctx, col.ID))

	_, err = repo.GetColumnByID(ctx, col.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteColumn(ctx, col.ID), models.ErrNotFound)
}

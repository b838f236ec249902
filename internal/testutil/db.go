package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/dacite/internal/database"
	"github.com/thenoetrevino/dacite/internal/models"
)

// DefaultGroupID is the ID of the group seeded by migrations
const DefaultGroupID = 1

// SetupTestDB creates an in-memory SQLite database with the full schema.
// The database is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _ := openTestDB(t)
	return db
}

// SetupTestRepo returns a repository over a fresh in-memory database
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	db, dialect := openTestDB(t)
	return database.NewRepository(db, dialect)
}

func openTestDB(t *testing.T) (*sql.DB, database.Dialect) {
	t.Helper()
	db, dialect, err := database.InitDB(context.Background(), database.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, dialect
}

// CreateTestGroup creates a column group and returns its ID
func CreateTestGroup(t *testing.T, repo database.GroupRepository, name string) int {
	t.Helper()
	g, err := repo.CreateGroup(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create test group: %v", err)
	}
	return g.ID
}

// CreateTestReference creates a reference and returns it
func CreateTestReference(t *testing.T, repo database.ReferenceRepository, author string, year int) *models.Reference {
	t.Helper()
	ref, err := repo.CreateReference(context.Background(), models.Reference{
		Author:  author,
		PubYear: year,
		Ref:     author + " et al., Test Journal",
	})
	if err != nil {
		t.Fatalf("Failed to create test reference: %v", err)
	}
	return ref
}

// CreateTestColumn creates a column in the given group and returns its ID
func CreateTestColumn(t *testing.T, repo database.ColumnRepository, groupID int, name string) int {
	t.Helper()
	col, err := repo.SaveColumn(context.Background(), models.Column{GroupID: groupID, Name: name}, nil)
	if err != nil {
		t.Fatalf("Failed to create test column: %v", err)
	}
	return col.ID
}

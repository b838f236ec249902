package cli

import (
	"testing"

	"github.com/thenoetrevino/dacite/internal/app"
	"github.com/thenoetrevino/dacite/internal/database"
	"github.com/thenoetrevino/dacite/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the repository and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*database.Repository, *app.App) {
	t.Helper()
	repo := testutil.SetupTestRepo(t)
	return repo, app.New(repo)
}

package column

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/dacite/internal/cli"
	"github.com/thenoetrevino/dacite/internal/editor"
	columnservice "github.com/thenoetrevino/dacite/internal/services/column"
	"github.com/thenoetrevino/dacite/internal/testutil"
	clitest "github.com/thenoetrevino/dacite/internal/testutil/cli"
)

func TestListColumns(t *testing.T) {
	repo, app := clitest.SetupCLITest(t)
	testutil.CreateTestColumn(t, repo, testutil.DefaultGroupID, "Karoo")
	other := testutil.CreateTestGroup(t, repo, "Basins")
	testutil.CreateTestColumn(t, repo, other, "Beaufort")

	t.Run("human-readable", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "Karoo [Unassigned]")
		assert.Contains(t, output, "Beaufort [Basins]")
	})

	t.Run("group filter with JSON output", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{
			"--group", fmt.Sprintf("%d", other), "--json",
		})
		require.NoError(t, err)

		env := testutil.ParseEnvelope(t, output)
		assert.True(t, env.Success)
		var cols []struct {
			Name    string `json:"col_name"`
			GroupID int    `json:"group_id"`
		}
		env.Decode(t, "columns", &cols)
		require.Len(t, cols, 1)
		assert.Equal(t, "Beaufort", cols[0].Name)
		assert.Equal(t, other, cols[0].GroupID)
	})

	t.Run("quiet", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Regexp(t, `^\d+\n\d+\n$`, output)
	})
}

func TestListColumns_Empty(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No columns found")
}

func TestShowColumn(t *testing.T) {
	repo, app := clitest.SetupCLITest(t)
	ref := testutil.CreateTestReference(t, repo, "Smith", 1990)

	ed := app.NewEditor(editor.Empty(testutil.DefaultGroupID))
	ed.ApplyPatch(editor.SetName("Karoo"))
	ed.ApplyPatch(editor.SetNumber(7))
	ed.ApplyPatch(editor.SetNotes("Dry **rocky** section"))
	ed.ApplyPatch(editor.SetReference(*ref))
	saved, err := ed.Submit(context.Background())
	require.NoError(t, err)

	t.Run("card", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{fmt.Sprintf("%d", saved.ColumnID)})
		require.NoError(t, err)
		assert.Contains(t, output, "Karoo")
		assert.Contains(t, output, "Smith(1990)")
		assert.Contains(t, output, "rocky")
	})

	t.Run("JSON", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{fmt.Sprintf("%d", saved.ColumnID), "--json"})
		require.NoError(t, err)
		var col struct {
			Number *int `json:"col_number"`
			Ref    struct {
				Label string `json:"label"`
			} `json:"ref"`
		}
		testutil.ParseEnvelope(t, output).Decode(t, "column", &col)
		require.NotNil(t, col.Number)
		assert.Equal(t, 7, *col.Number)
		assert.Equal(t, "Smith(1990)", col.Ref.Label)
	})

	t.Run("missing column", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"999", "--json"})
		assert.ErrorIs(t, err, columnservice.ErrColumnNotFound)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})

	t.Run("bad id", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"abc"})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})
}

func TestCreateColumn(t *testing.T) {
	repo, app := clitest.SetupCLITest(t)
	ref := testutil.CreateTestReference(t, repo, "Smith", 1990)

	output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
		"--group", "1",
		"--name", "Karoo",
		"--number", "3",
		"--ref", fmt.Sprintf("%d", ref.ID),
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Column 'Karoo' created successfully")
	assert.Contains(t, output, "Ref: Smith(1990)")

	cols, err := repo.ListColumns(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, cols, 1)
	require.NotNil(t, cols[0].Number)
	assert.Equal(t, 3, *cols[0].Number)
	require.NotNil(t, cols[0].Ref)
	assert.Equal(t, ref.ID, cols[0].Ref.ID)
}

func TestCreateColumn_Negative(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	tests := []struct {
		name     string
		args     []string
		exitCode int
	}{
		{"invalid number", []string{"--group", "1", "--name", "Karoo", "--number", "3a"}, cli.ExitDataErr},
		{"blank name", []string{"--group", "1", "--name", "  "}, cli.ExitValidation},
		{"unknown group", []string{"--group", "42", "--name", "Karoo"}, cli.ExitNotFound},
		{"unknown reference", []string{"--group", "1", "--name", "Karoo", "--ref", "9"}, cli.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), append(tt.args, "--json"))
			require.Error(t, err)
			assert.Equal(t, tt.exitCode, cli.ExitCode(err))
		})
	}
}

func TestUpdateColumn(t *testing.T) {
	repo, app := clitest.SetupCLITest(t)
	id := testutil.CreateTestColumn(t, repo, testutil.DefaultGroupID, "Karoo")

	output, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{
		fmt.Sprintf("%d", id), "--name", "Karoo Basin", "--notes", "updated",
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Changed: Column Name, Notes")

	col, err := app.ColumnService.GetColumn(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Karoo Basin", col.Name)
	assert.Equal(t, "updated", col.Notes)
}

func TestUpdateColumn_NoChanges(t *testing.T) {
	repo, app := clitest.SetupCLITest(t)
	id := testutil.CreateTestColumn(t, repo, testutil.DefaultGroupID, "Karoo")

	output, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{fmt.Sprintf("%d", id), "--json"})
	assert.ErrorIs(t, err, editor.ErrNoChanges)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	env := testutil.ParseEnvelope(t, output)
	require.NotNil(t, env.Error)
	assert.Equal(t, "USAGE_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Suggestion, "--name")
}

func TestDeleteColumn(t *testing.T) {
	repo, app := clitest.SetupCLITest(t)
	id := testutil.CreateTestColumn(t, repo, testutil.DefaultGroupID, "Karoo")

	output, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{fmt.Sprintf("%d", id)})
	require.NoError(t, err)
	assert.Contains(t, output, "deleted")

	_, err = clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{fmt.Sprintf("%d", id)})
	assert.ErrorIs(t, err, columnservice.ErrColumnNotFound)
}

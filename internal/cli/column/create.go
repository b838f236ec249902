package column

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dacite/internal/cli"
	"github.com/thenoetrevino/dacite/internal/editor"
)

// CreateCmd returns the column create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new column",
		Long: `Create a new column in a column group without opening the editor.

Examples:
  # Create a column (human-readable output)
  dacite column create --group=1 --name="Karoo" --number=3

  # Attach an existing reference and capture the new ID
  COLUMN_ID=$(dacite column create --group=1 --name="Karoo" --ref=4 --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().Int("group", 0, "Column group ID (required)")
	if err := cmd.MarkFlagRequired("group"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("name", "", "Column name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	addFieldFlags(cmd)
	cli.AddOutputFlags(cmd, true)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.GetFormatter(cmd)
	groupID, _ := cmd.Flags().GetInt("group")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	group, err := cliInstance.App.ColumnService.GetGroup(ctx, groupID)
	if err != nil {
		return formatter.Fail(err)
	}

	ed := cliInstance.App.NewEditor(editor.Empty(group.ID))
	if err := applyFieldFlags(cmd, cliInstance, ed); err != nil {
		return formatter.Fail(err)
	}

	saved, err := ed.Submit(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", saved.ColumnID)
		return nil
	}

	if formatter.JSON {
		col, err := cliInstance.App.ColumnService.GetColumn(ctx, saved.ColumnID)
		if err != nil {
			return formatter.Fail(err)
		}
		return formatter.Success("column", columnJSON(col))
	}

	fmt.Printf("Column '%s' created successfully (ID: %d)\n", saved.Name, saved.ColumnID)
	fmt.Printf("  Group: %s\n", group.Name)
	if saved.Ref != nil {
		fmt.Printf("  Ref: %s\n", saved.RefLabel())
	}
	return nil
}

package column

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dacite/internal/cli"
	"github.com/thenoetrevino/dacite/internal/editor"
)

// UpdateCmd returns the column update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <column-id>",
		Short: "Update fields of a column",
		Long: `Update a column. Only the flags given are changed.

Examples:
  dacite column update 12 --name="Karoo Basin"
  dacite column update 12 --number=""          # clear the number
  dacite column update 12 --ref=4
  dacite column update 12 --clear-ref --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	addFieldFlags(cmd)
	cli.AddOutputFlags(cmd, true)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.GetFormatter(cmd)

	id, err := cli.ParseID(args[0], "column")
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	col, err := cliInstance.App.ColumnService.GetColumn(ctx, id)
	if err != nil {
		return formatter.Fail(err)
	}

	ed := cliInstance.App.NewEditor(editor.FromColumn(col))
	if err := applyFieldFlags(cmd, cliInstance, ed); err != nil {
		return formatter.Fail(err)
	}
	changed := ed.ChangedFields()

	saved, err := ed.Submit(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", saved.ColumnID)
		return nil
	}

	if formatter.JSON {
		updated, err := cliInstance.App.ColumnService.GetColumn(ctx, saved.ColumnID)
		if err != nil {
			return formatter.Fail(err)
		}
		return formatter.Success("column", columnJSON(updated))
	}

	names := make([]string, len(changed))
	for i, f := range changed {
		names[i] = f.Title()
	}
	fmt.Printf("Column '%s' updated (ID: %d)\n", saved.Name, saved.ColumnID)
	fmt.Printf("  Changed: %s\n", strings.Join(names, ", "))
	return nil
}

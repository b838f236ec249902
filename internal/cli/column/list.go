package column

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dacite/internal/cli"
	"github.com/thenoetrevino/dacite/internal/models"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List columns",
		Long: `List stored columns, optionally limited to one column group.

Examples:
  # Human-readable list
  dacite column list

  # Only one group, JSON output for scripts
  dacite column list --group=2 --json

  # Quiet mode (one ID per line)
  dacite column list --quiet
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().Int("group", 0, "Column group ID (0 = all groups)")
	cli.AddOutputFlags(cmd, true)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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

	columns, err := cliInstance.App.ColumnService.ListColumns(ctx, groupID)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, col := range columns {
			fmt.Printf("%d\n", col.ID)
		}
		return nil
	}

	if formatter.JSON {
		list := make([]map[string]interface{}, len(columns))
		for i, col := range columns {
			list[i] = columnJSON(col)
		}
		return formatter.Success("columns", list)
	}

	if len(columns) == 0 {
		fmt.Println("No columns found")
		return nil
	}

	fmt.Println("Columns:")
	for _, col := range columns {
		number := "-"
		if col.Number != nil {
			number = fmt.Sprintf("%d", *col.Number)
		}
		line := fmt.Sprintf("  %s. %s [%s] (ID: %d)", number, col.Name, col.GroupName, col.ID)
		if col.Ref != nil {
			line += " " + col.Ref.Label()
		}
		fmt.Println(line)
	}
	return nil
}

// columnJSON is the JSON shape shared by the column commands
func columnJSON(col *models.ColumnDetail) map[string]interface{} {
	out := map[string]interface{}{
		"id":         col.ID,
		"group_id":   col.GroupID,
		"group_name": col.GroupName,
		"col_name":   col.Name,
		"col_number": col.Number,
		"notes":      col.Notes,
		"ref":        nil,
	}
	if col.Ref != nil {
		out["ref"] = map[string]interface{}{
			"id":       col.Ref.ID,
			"label":    col.Ref.Label(),
			"author":   col.Ref.Author,
			"pub_year": col.Ref.PubYear,
		}
	}
	return out
}

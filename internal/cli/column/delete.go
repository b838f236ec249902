package column

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dacite/internal/cli"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <column-id>",
		Short: "Delete a column",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cli.AddOutputFlags(cmd, false)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if err := cliInstance.App.ColumnService.DeleteColumn(ctx, id); err != nil {
		return formatter.Fail(err)
	}

	if formatter.JSON {
		return formatter.Success("deleted", id)
	}
	fmt.Printf("Column %d deleted\n", id)
	return nil
}

package ref

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dacite/internal/cli"
)

// ListCmd returns the ref list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List references",
		Long: `List stored references ordered by author and year.

Examples:
  dacite ref list
  dacite ref list --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd, true)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.GetFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	refs, err := cliInstance.App.ReferenceService.ListReferences(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, r := range refs {
			fmt.Printf("%d\n", r.ID)
		}
		return nil
	}

	if formatter.JSON {
		list := make([]map[string]interface{}, len(refs))
		for i, r := range refs {
			list[i] = refJSON(r)
		}
		return formatter.Success("references", list)
	}

	if len(refs) == 0 {
		fmt.Println("No references found")
		return nil
	}

	fmt.Println("References:")
	for _, r := range refs {
		fmt.Printf("  %s (ID: %d)\n", r.Label(), r.ID)
	}
	return nil
}

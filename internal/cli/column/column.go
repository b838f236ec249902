package column

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dacite/internal/cli"
)

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage columns",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.InitLogging()
		},
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

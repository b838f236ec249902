package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dacite/internal/cli/column"
	"github.com/thenoetrevino/dacite/internal/cli/ref"
	"github.com/thenoetrevino/dacite/internal/launcher"
	"github.com/thenoetrevino/dacite/internal/tui"
)

// NewRootCmd builds the dacite command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dacite",
		Short: "Dacite - a terminal editor for stratigraphic columns",
		Long: `Dacite edits stratigraphic column records and the references they cite.

Run without a subcommand to browse columns in the terminal UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(tui.Options{})
		},
	}

	rootCmd.AddCommand(editCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(ref.RefCmd())

	return rootCmd
}

func editCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the column editor",
		Long: `Open the column editor on an existing column, or on a new column in a group.

Examples:
  dacite edit --column=12
  dacite edit --group=1
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			columnID, _ := cmd.Flags().GetInt("column")
			groupID, _ := cmd.Flags().GetInt("group")
			return launcher.Launch(editOptions(columnID, groupID))
		},
	}

	cmd.Flags().Int("column", 0, "Column ID to edit")
	cmd.Flags().Int("group", 0, "Group ID for a new column (default: first group)")
	cmd.MarkFlagsMutuallyExclusive("column", "group")

	return cmd
}

// editOptions builds the launch options for edit. Without flags it starts a
// new column in the first group.
func editOptions(columnID, groupID int) tui.Options {
	return tui.Options{
		ColumnID:  columnID,
		GroupID:   groupID,
		NewColumn: columnID == 0 && groupID == 0,
	}
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

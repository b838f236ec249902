package column

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dacite/internal/cli"
	"github.com/thenoetrevino/dacite/internal/cli/styles"
	"github.com/thenoetrevino/dacite/internal/tui/components"
)

// ShowCmd returns the column show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <column-id>",
		Short: "Show a column with its notes and reference",
		Long: `Show one column. Notes are rendered as markdown.

Examples:
  dacite column show 12
  dacite column show 12 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cli.AddOutputFlags(cmd, false)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	if formatter.JSON {
		return formatter.Success("column", columnJSON(col))
	}

	styles.Init(cliInstance.Config.ColorScheme)

	number := "-"
	if col.Number != nil {
		number = fmt.Sprintf("%d", *col.Number)
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(col.Name))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("Column #%d", col.ID)))
	b.WriteString("\n\n")
	b.WriteString(styles.Field("Number", number))
	b.WriteString("\n")
	b.WriteString(styles.Field("Group", col.GroupName))
	b.WriteString("\n")
	b.WriteString(styles.SectionStyle.Render("Reference"))
	b.WriteString("\n")
	b.WriteString(styles.RenderReference(col.Ref))
	b.WriteString("\n")
	b.WriteString(styles.SectionStyle.Render("Notes"))
	b.WriteString("\n")
	b.WriteString(components.RenderNotes(components.NotesProps{
		Notes: col.Notes,
		Width: styles.CardWidth - 6,
	}))

	fmt.Println(styles.RenderCard(b.String()))
	return nil
}

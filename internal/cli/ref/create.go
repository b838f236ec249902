package ref

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dacite/internal/cli"
	referenceservice "github.com/thenoetrevino/dacite/internal/services/reference"
)

// CreateCmd returns the ref create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a reference",
		Long: `Create a bibliographic reference that columns can attach.

Examples:
  dacite ref create --author="Smith" --year=1990 --citation="Smith, J. (1990). Karoo."

  # Capture the ID for scripting
  REF_ID=$(dacite ref create --author="Smith" --year=1990 --citation="..." --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("author", "", "Author (required)")
	if err := cmd.MarkFlagRequired("author"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().Int("year", 0, "Publication year (required)")
	if err := cmd.MarkFlagRequired("year"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("citation", "", "Full citation text (required)")
	if err := cmd.MarkFlagRequired("citation"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("doi", "", "DOI")
	cmd.Flags().String("url", "", "URL (http or https)")

	cli.AddOutputFlags(cmd, true)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.GetFormatter(cmd)

	author, _ := cmd.Flags().GetString("author")
	year, _ := cmd.Flags().GetInt("year")
	citation, _ := cmd.Flags().GetString("citation")
	doi, _ := cmd.Flags().GetString("doi")
	url, _ := cmd.Flags().GetString("url")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	r, err := cliInstance.App.ReferenceService.CreateReference(ctx, referenceservice.CreateReferenceRequest{
		PubYear: year,
		Author:  author,
		Ref:     citation,
		DOI:     doi,
		URL:     url,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", r.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.Success("reference", refJSON(r))
	}

	fmt.Printf("Reference %s created successfully (ID: %d)\n", r.Label(), r.ID)
	return nil
}

package ref

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dacite/internal/cli"
	"github.com/thenoetrevino/dacite/internal/models"
)

// RefCmd returns the ref parent command
func RefCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ref",
		Aliases: []string{"reference"},
		Short:   "Manage bibliographic references",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.InitLogging()
		},
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())

	return cmd
}

func refJSON(r *models.Reference) map[string]interface{} {
	return map[string]interface{}{
		"id":       r.ID,
		"label":    r.Label(),
		"pub_year": r.PubYear,
		"author":   r.Author,
		"ref":      r.Ref,
		"doi":      r.DOI,
		"url":      r.URL,
	}
}

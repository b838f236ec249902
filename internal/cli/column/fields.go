package column

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/dacite/internal/cli"
	"github.com/thenoetrevino/dacite/internal/editor"
)

// addFieldFlags registers the optional editable-field flags shared by create and update
func addFieldFlags(cmd *cobra.Command) {
	if cmd.Flags().Lookup("name") == nil {
		cmd.Flags().String("name", "", "Column name")
	}
	cmd.Flags().String("number", "", "Column number (empty clears it)")
	cmd.Flags().String("notes", "", "Markdown notes")
	cmd.Flags().Int("ref", 0, "Attach an existing reference by ID")
	cmd.Flags().Bool("clear-ref", false, "Detach the current reference")
	cmd.MarkFlagsMutuallyExclusive("ref", "clear-ref")
}

var textFields = map[string]editor.Field{
	"name":   editor.FieldName,
	"number": editor.FieldNumber,
	"notes":  editor.FieldNotes,
}

// applyFieldFlags turns every flag the user set into an editor patch.
// Flags left alone are not patched, so they do not count as changes.
func applyFieldFlags(cmd *cobra.Command, c *cli.CLI, ed *editor.Editor) error {
	var firstErr error

	// Visit walks only the flags that were explicitly set, in name order
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if firstErr != nil {
			return
		}
		if field, ok := textFields[f.Name]; ok {
			b, err := ed.Bind(field)
			if err == nil {
				err = b.Change(f.Value.String())
			}
			firstErr = err
		}
	})
	if firstErr != nil {
		return firstErr
	}

	flags := cmd.Flags()
	if flags.Changed("ref") {
		refID, _ := flags.GetInt("ref")
		ref, err := c.App.ReferenceService.GetReference(cmd.Context(), refID)
		if err != nil {
			return err
		}
		ed.ApplyPatch(editor.SetReference(*ref))
	}

	if clearRef, _ := flags.GetBool("clear-ref"); clearRef {
		ed.ApplyPatch(editor.ClearReference())
	}

	return nil
}

package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dacite/internal/app"
	"github.com/thenoetrevino/dacite/internal/editor"
	"github.com/thenoetrevino/dacite/internal/models"
	columnservice "github.com/thenoetrevino/dacite/internal/services/column"
	referenceservice "github.com/thenoetrevino/dacite/internal/services/reference"
)

// refsLoadedMsg carries the candidate references for the editor identified by seq
type refsLoadedMsg struct {
	seq  int
	refs []models.Reference
	err  error
}

// columnSavedMsg reports the outcome of a submit
type columnSavedMsg struct {
	seq   int
	saved editor.Draft
	err   error
}

type columnsLoadedMsg struct {
	columns []*models.ColumnDetail
	err     error
}

// editorOpenedMsg carries a loaded draft ready to be edited
type editorOpenedMsg struct {
	draft editor.Draft
	group *models.ColumnGroup
	err   error
}

func loadReferencesCmd(ctx context.Context, svc referenceservice.Service, seq int) tea.Cmd {
	return func() tea.Msg {
		refs, err := svc.ListReferences(ctx)
		if err != nil {
			return refsLoadedMsg{seq: seq, err: err}
		}
		out := make([]models.Reference, 0, len(refs))
		for _, r := range refs {
			out = append(out, *r)
		}
		return refsLoadedMsg{seq: seq, refs: out}
	}
}

// saveColumnCmd submits the editor off the update loop. The model stops mutating
// the editor until the reply arrives.
func saveColumnCmd(ctx context.Context, ed *editor.Editor, seq int) tea.Cmd {
	return func() tea.Msg {
		saved, err := ed.Submit(ctx)
		return columnSavedMsg{seq: seq, saved: saved, err: err}
	}
}

func loadColumnsCmd(ctx context.Context, svc columnservice.Service) tea.Cmd {
	return func() tea.Msg {
		cols, err := svc.ListColumns(ctx, 0)
		return columnsLoadedMsg{columns: cols, err: err}
	}
}

// openColumnCmd loads the draft for columnID, or a blank draft for groupID.
// A zero groupID picks the first group.
func openColumnCmd(ctx context.Context, a *app.App, columnID, groupID int) tea.Cmd {
	return func() tea.Msg {
		draft, group, err := a.LoadDraft(ctx, columnID, groupID)
		return editorOpenedMsg{draft: draft, group: group, err: err}
	}
}

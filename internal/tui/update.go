package tui

import (
	"errors"
	"log/slog"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dacite/internal/editor"
	"github.com/thenoetrevino/dacite/internal/tui/state"
)

// Update handles all messages and updates the model accordingly.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		m.resizeInputs()
		return m, nil

	case spinner.TickMsg:
		if !m.waiting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case refsLoadedMsg:
		return m.handleRefsLoaded(msg)

	case columnSavedMsg:
		return m.handleColumnSaved(msg)

	case columnsLoadedMsg:
		return m.handleColumnsLoaded(msg)

	case editorOpenedMsg:
		if msg.err != nil {
			slog.Error("failed to open column", "error", msg.err)
			m.Notifications.Add(state.LevelError, "Failed to open column: "+msg.err.Error())
			return m, nil
		}
		m.Notifications.Clear()
		return m, m.openEditor(msg.draft, msg.group)
	}

	if m.UiState.View() == state.EditorView {
		// The save command owns the editor until columnSavedMsg arrives.
		// Only keys get through, and handleEditorKey lets nothing but quit act.
		if m.saving {
			if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
				return m.handleEditorKey(keyMsg)
			}
			return m, nil
		}
		// The new-reference form needs ALL messages, not just keys
		if m.refForm != nil {
			return m.updateReferenceForm(msg)
		}
		if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
			return m.handleEditorKey(keyMsg)
		}
		return m.forwardToFocused(msg)
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		return m.handleListKey(keyMsg)
	}
	return m, nil
}

// waiting reports whether anything is in flight that the spinner represents
func (m Model) waiting() bool {
	if m.UiState.View() == state.ColumnListView {
		return m.ColumnList.Loading()
	}
	if m.saving {
		return true
	}
	return m.Picker != nil && m.Picker.LoadState() == editor.RefsLoading
}

func (m Model) handleRefsLoaded(msg refsLoadedMsg) (tea.Model, tea.Cmd) {
	if m.Picker == nil || msg.seq != m.seq {
		return m, nil
	}
	if msg.err != nil {
		slog.Error("failed to load references", "error", msg.err)
		m.Picker.SetFailed(msg.err)
		return m, nil
	}
	m.Picker.SetLoaded(msg.refs)
	return m, nil
}

func (m Model) handleColumnSaved(msg columnSavedMsg) (tea.Model, tea.Cmd) {
	if m.Editor == nil || msg.seq != m.seq {
		return m, nil
	}
	m.saving = false

	if errors.Is(msg.err, editor.ErrNoChanges) {
		m.Notifications.Add(state.LevelInfo, "Nothing to save")
		return m, nil
	}
	if msg.err != nil {
		m.Notifications.Add(state.LevelError, msg.err.Error())
		return m, nil
	}

	m.Notifications.Clear()
	m.Notifications.Add(state.LevelInfo, "Saved "+msg.saved.Name)
	return m, m.closeEditor()
}

func (m Model) handleColumnsLoaded(msg columnsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Error("failed to load columns", "error", msg.err)
		m.ColumnList.SetColumns(nil)
		m.Notifications.Add(state.LevelError, "Failed to load columns")
		return m, nil
	}
	m.ColumnList.SetColumns(msg.columns)
	return m, nil
}

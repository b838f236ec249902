package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dacite/internal/editor"
	"github.com/thenoetrevino/dacite/internal/tui/state"
)

// handleEditorKey processes key presses in the editor view
func (m Model) handleEditorKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	if msg.String() == km.Quit {
		// A save in flight owns the editor; it finishes or is cut off by shutdown
		if !m.saving {
			m.Editor.Cancel()
		}
		return m, tea.Quit
	}

	// The editor belongs to the save in flight until it replies
	if m.saving {
		return m, nil
	}

	switch msg.String() {
	case km.Submit:
		return m.submit()

	case km.Cancel:
		m.Editor.Cancel()
		m.Notifications.Clear()
		return m, m.closeEditor()

	case km.NextField:
		return m, m.setFocus(m.UiState.Focus().Next())

	case km.PrevField:
		return m, m.setFocus(m.UiState.Focus().Prev())

	case km.ToggleNewRef:
		return m.openReferenceForm()
	}

	if m.UiState.Focus() == state.FocusReference {
		return m.handlePickerKey(msg)
	}
	return m.forwardToFocused(msg)
}

// submit starts saving the draft. A number that does not parse blocks the save.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.numberErr != nil {
		m.Notifications.Add(state.LevelError, "Column Number: "+m.numberErr.Error())
		return m, m.setFocus(state.FocusNumber)
	}
	m.saving = true
	m.Notifications.Clear()
	return m, tea.Batch(saveColumnCmd(m.ctx, m.Editor, m.seq), m.spinner.Tick)
}

// forwardToFocused hands msg to the focused input and copies any change into the draft
func (m Model) forwardToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	var cmd tea.Cmd

	switch m.UiState.Focus() {
	case state.FocusName:
		before := m.nameInput.Value()
		m.nameInput, cmd = m.nameInput.Update(msg)
		if v := m.nameInput.Value(); v != before {
			m.change(editor.FieldName, v)
		}

	case state.FocusNumber:
		before := m.numberInput.Value()
		m.numberInput, cmd = m.numberInput.Update(msg)
		if v := m.numberInput.Value(); v != before {
			m.numberErr = m.change(editor.FieldNumber, v)
		}

	case state.FocusNotes:
		before := m.notesInput.Value()
		m.notesInput, cmd = m.notesInput.Update(msg)
		if v := m.notesInput.Value(); v != before {
			m.change(editor.FieldNotes, v)
		}
	}

	return m, cmd
}

// change applies raw input to field through its binder
func (m *Model) change(field editor.Field, input string) error {
	b, err := m.Editor.Bind(field)
	if err != nil {
		return err
	}
	return b.Change(input)
}

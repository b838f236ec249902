package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/dacite/internal/editor"
	"github.com/thenoetrevino/dacite/internal/tui/huhforms"
	"github.com/thenoetrevino/dacite/internal/tui/state"
)

// handlePickerKey processes key presses while the reference field is focused
func (m Model) handlePickerKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case km.RetryLoad:
		if m.Picker.LoadState() != editor.RefsFailed {
			return m, nil
		}
		m.Picker.SetLoading()
		return m, tea.Batch(m.loadReferences(), m.spinner.Tick)

	case km.ClearRef:
		if m.Editor.Current().Ref != nil {
			m.Editor.ApplyPatch(editor.ClearReference())
		}
		return m, nil
	}

	candidates, ok := m.Picker.Candidates()
	if !ok {
		// Nothing to pick from until the fetch succeeds
		return m, nil
	}

	switch msg.String() {
	case km.PrevRef:
		m.RefPicker.MoveCursorUp()
		return m, nil

	case km.NextRef:
		m.RefPicker.MoveCursorDown(len(m.RefPicker.Filtered(candidates)) - 1)
		return m, nil

	case km.SelectRef:
		c, found := m.RefPicker.Current(candidates)
		if !found {
			return m, nil
		}
		if err := m.Picker.SelectExisting(c.Ref); err != nil {
			m.Notifications.Add(state.LevelError, err.Error())
		}
		return m, nil

	case "backspace":
		m.RefPicker.BackspaceFilter()
		return m, nil
	}

	if msg.Text != "" {
		m.RefPicker.AppendFilter(msg.Text)
	}
	return m, nil
}

// openReferenceForm expands the inline new-reference form
func (m Model) openReferenceForm() (tea.Model, tea.Cmd) {
	if m.Picker.FormState() == editor.FormExpanded {
		m.collapseReferenceForm()
		return m, nil
	}

	m.Picker.ToggleNewReferenceForm()
	m.setFocus(state.FocusReference)

	m.refFormValues = &huhforms.ReferenceFormValues{}
	m.refForm = huhforms.CreateReferenceForm(m.refFormValues).
		WithTheme(huhforms.CreateTheme(m.Config.ColorScheme))
	return m, m.refForm.Init()
}

func (m *Model) collapseReferenceForm() {
	if m.Picker.FormState() == editor.FormExpanded {
		m.Picker.ToggleNewReferenceForm()
	}
	m.refForm = nil
	m.refFormValues = nil
}

// updateReferenceForm handles all messages while the new-reference form is open.
// Esc closes the form and leaves the editor open.
func (m Model) updateReferenceForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case m.Config.KeyMappings.Quit:
			m.Editor.Cancel()
			return m, tea.Quit
		case m.Config.KeyMappings.Cancel, m.Config.KeyMappings.ToggleNewRef:
			m.collapseReferenceForm()
			return m, nil
		}
	}

	model, cmd := m.refForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.refForm = f
	}

	switch m.refForm.State {
	case huh.StateCompleted:
		ref, err := m.refFormValues.Reference()
		if err != nil {
			slog.Warn("new reference rejected", "error", err)
			m.Notifications.Add(state.LevelError, err.Error())
			m.collapseReferenceForm()
			return m, nil
		}
		m.Picker.SubmitNewReference(ref)
		m.collapseReferenceForm()
		m.Notifications.Add(state.LevelInfo, "Drafted "+ref.Label()+"; it is stored with the column")
		return m, nil

	case huh.StateAborted:
		m.collapseReferenceForm()
		return m, nil
	}

	return m, cmd
}

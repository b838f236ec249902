package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dacite/internal/editor"
	"github.com/thenoetrevino/dacite/internal/models"
	"github.com/thenoetrevino/dacite/internal/tui/components"
	"github.com/thenoetrevino/dacite/internal/tui/notifications"
	"github.com/thenoetrevino/dacite/internal/tui/state"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	var body string
	if m.UiState.View() == state.EditorView && m.Editor != nil {
		body = m.viewEditor()
	} else {
		body = m.viewColumnList()
	}

	parts := []string{body}
	if n, ok := m.Notifications.Last(); ok {
		parts = append(parts, notifications.RenderInlineFromState(n, m.UiState.Width()))
	}
	parts = append(parts, components.RenderStatusBar(components.StatusBarProps{
		Width: m.UiState.Width(),
		Left:  "dacite",
		Help:  m.helpText(),
	}))

	view.Content = lipgloss.JoinVertical(lipgloss.Left, parts...)
	return view
}

func (m Model) helpText() string {
	km := m.Config.KeyMappings
	if m.UiState.View() == state.ColumnListView {
		return fmt.Sprintf("%s/%s move • %s edit • %s new • q quit", km.PrevColumn, km.NextColumn, km.EditColumn, km.NewColumn)
	}
	if m.refForm != nil {
		return fmt.Sprintf("%s close form • shift+enter newline", km.Cancel)
	}
	help := fmt.Sprintf("%s save • %s cancel • %s/%s field • %s new ref", km.Submit, km.Cancel, km.NextField, km.PrevField, km.ToggleNewRef)
	if m.UiState.Focus() == state.FocusReference {
		help += fmt.Sprintf(" • %s select • %s clear", km.SelectRef, km.ClearRef)
	}
	return help
}

func (m Model) viewEditor() string {
	draft := m.Editor.Current()

	var title string
	if draft.IsNew() {
		title = "New Column"
	} else {
		title = fmt.Sprintf("Edit Column #%d", draft.ColumnID)
	}
	if m.Group != nil {
		title += " in " + m.Group.Name
	}
	header := components.TitleStyle.Render(title)
	if m.Editor.HasChanges() {
		header += " " + components.DirtyStyle.Render("● unsaved")
	}
	if m.saving {
		header += " " + m.spinner.View() + " saving"
	}

	fields := []string{
		header,
		"",
		m.viewField(editor.FieldName, state.FocusName, m.nameInput.View()),
		m.viewField(editor.FieldNumber, state.FocusNumber, m.numberInput.View()),
	}
	if m.numberErr != nil {
		fields = append(fields, components.FieldErrorStyle.Render("  "+m.numberErr.Error()))
	}
	fields = append(fields, m.viewField(editor.FieldNotes, state.FocusNotes, m.notesInput.View()))
	if m.UiState.Focus() != state.FocusNotes && strings.TrimSpace(draft.Notes) != "" {
		fields = append(fields, components.RenderNotes(components.NotesProps{
			Notes: draft.Notes,
			Width: components.FieldWidth,
		}))
	}
	fields = append(fields, m.viewReference(draft))

	box := components.EditBoxStyle
	if draft.IsNew() {
		box = components.CreateBoxStyle
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, fields...))
}

func (m Model) viewField(field editor.Field, focus state.Focus, input string) string {
	label := components.LabelStyle.Render(field.Title())
	style := components.FieldStyle
	if m.UiState.Focus() == focus {
		label = components.FocusedLabelStyle.Render(field.Title())
		style = components.FocusedFieldStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, style.Render(input))
}

func (m Model) viewReference(draft editor.Draft) string {
	focused := m.UiState.Focus() == state.FocusReference

	label := components.LabelStyle.Render(editor.FieldReference.Title())
	if focused {
		label = components.FocusedLabelStyle.Render(editor.FieldReference.Title())
	}

	current := components.SubtleStyle.Render("none")
	if draft.Ref != nil {
		current = draft.RefLabel()
		if draft.Ref.IsDraft() {
			current += components.SubtleStyle.Render(" (new)")
		}
	}

	lines := []string{label, "  " + current}

	if m.refForm != nil {
		lines = append(lines, components.NewRefBoxStyle.Render("New Reference\n\n"+m.refForm.View()))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
	if !focused {
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	switch m.Picker.LoadState() {
	case editor.RefsLoading:
		lines = append(lines, "  "+m.spinner.View()+" loading references")
	case editor.RefsFailed:
		lines = append(lines,
			components.FieldErrorStyle.Render("  failed to load references: "+m.Picker.LoadErr().Error()),
			components.SubtleStyle.Render("  press "+m.Config.KeyMappings.RetryLoad+" to retry"))
	case editor.RefsLoaded:
		lines = append(lines, m.viewCandidates()...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewCandidates() []string {
	candidates, _ := m.Picker.Candidates()
	filtered := m.RefPicker.Filtered(candidates)

	lines := []string{"  Filter: " + m.RefPicker.Filter() + "_"}
	if len(filtered) == 0 {
		return append(lines, components.SubtleStyle.Render("  no matching references"))
	}

	selected := m.Picker.Selected().Ref.ID
	cursor := m.RefPicker.Cursor()
	start := 0
	if cursor >= components.MaxVisibleRefs {
		start = cursor - components.MaxVisibleRefs + 1
	}
	end := min(start+components.MaxVisibleRefs, len(filtered))

	for i := start; i < end; i++ {
		c := filtered[i]
		mark := "  "
		if selected != 0 && c.Ref.ID == selected {
			mark = "✓ "
		}
		row := mark + c.Value
		if i == cursor {
			lines = append(lines, components.SelectedRowStyle.Render("> "+row))
		} else {
			lines = append(lines, "  "+row)
		}
	}
	if end < len(filtered) {
		lines = append(lines, components.SubtleStyle.Render(fmt.Sprintf("  … %d more", len(filtered)-end)))
	}
	return lines
}

func (m Model) viewColumnList() string {
	lines := []string{components.TitleStyle.Render("Columns"), ""}

	if m.ColumnList.Loading() {
		lines = append(lines, m.spinner.View()+" loading columns")
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	cols := m.ColumnList.Columns()
	if len(cols) == 0 {
		lines = append(lines, components.SubtleStyle.Render(
			fmt.Sprintf("No columns yet. Press %s to create one.", m.Config.KeyMappings.NewColumn)))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, col := range cols {
		row := formatColumnRow(col)
		if i == m.ColumnList.SelectedIndex() {
			lines = append(lines, components.SelectedRowStyle.Render("> "+row))
		} else {
			lines = append(lines, "  "+row)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func formatColumnRow(col *models.ColumnDetail) string {
	number := "-"
	if col.Number != nil {
		number = fmt.Sprintf("%d", *col.Number)
	}
	row := fmt.Sprintf("%-4s %-30s %s", number, col.Name, components.SubtleStyle.Render(col.GroupName))
	if col.Ref != nil {
		row += "  " + col.Ref.Label()
	}
	return row
}

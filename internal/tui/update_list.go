package tui

import (
	tea "charm.land/bubbletea/v2"
)

// handleListKey processes key presses in the column list view
func (m Model) handleListKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case km.Quit, "q":
		return m, tea.Quit

	case km.PrevColumn, "up":
		m.ColumnList.SelectPrev()

	case km.NextColumn, "down":
		m.ColumnList.SelectNext()

	case km.EditColumn:
		col := m.ColumnList.Selected()
		if col == nil {
			return m, nil
		}
		return m, openColumnCmd(m.ctx, m.App, col.ID, 0)

	case km.NewColumn:
		groupID := 0
		if col := m.ColumnList.Selected(); col != nil {
			groupID = col.GroupID
		}
		return m, openColumnCmd(m.ctx, m.App, 0, groupID)
	}

	return m, nil
}

package state

import "github.com/thenoetrevino/dacite/internal/models"

// ColumnListState holds the rows of the column listing and the selected row.
type ColumnListState struct {
	columns  []*models.ColumnDetail
	selected int
	loading  bool
}

// NewColumnListState creates an empty, loading ColumnListState.
func NewColumnListState() *ColumnListState {
	return &ColumnListState{loading: true}
}

// Columns returns the listed columns.
func (s *ColumnListState) Columns() []*models.ColumnDetail {
	return s.columns
}

// SetColumns replaces the rows and clamps the selection.
func (s *ColumnListState) SetColumns(cols []*models.ColumnDetail) {
	s.columns = cols
	s.loading = false
	if s.selected >= len(cols) {
		s.selected = max(len(cols)-1, 0)
	}
}

// Loading reports whether a reload is in flight.
func (s *ColumnListState) Loading() bool {
	return s.loading
}

// SetLoading marks a reload as in flight.
func (s *ColumnListState) SetLoading() {
	s.loading = true
}

// SelectedIndex returns the selected row index.
func (s *ColumnListState) SelectedIndex() int {
	return s.selected
}

// Selected returns the selected column, or nil when the list is empty.
func (s *ColumnListState) Selected() *models.ColumnDetail {
	if s.selected < 0 || s.selected >= len(s.columns) {
		return nil
	}
	return s.columns[s.selected]
}

// SelectPrev moves the selection up one row.
func (s *ColumnListState) SelectPrev() {
	if s.selected > 0 {
		s.selected--
	}
}

// SelectNext moves the selection down one row.
func (s *ColumnListState) SelectNext() {
	if s.selected < len(s.columns)-1 {
		s.selected++
	}
}

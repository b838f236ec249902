package state

// View identifies the screen currently shown
type View int

const (
	ColumnListView View = iota // Listing of stored columns
	EditorView                 // Column editor form
)

// Focus identifies the editor field receiving key input
type Focus int

const (
	FocusName Focus = iota
	FocusNumber
	FocusNotes
	FocusReference
	focusCount
)

// Next returns the following field, wrapping around
func (f Focus) Next() Focus {
	return (f + 1) % focusCount
}

// Prev returns the preceding field, wrapping around
func (f Focus) Prev() Focus {
	return (f + focusCount - 1) % focusCount
}

// UIState holds screen-level state shared by both views.
type UIState struct {
	view   View
	focus  Focus
	width  int
	height int
}

// NewUIState creates a UIState showing the given view
func NewUIState(view View) *UIState {
	return &UIState{view: view}
}

// View returns the current view.
func (s *UIState) View() View {
	return s.view
}

// SetView switches views and resets editor focus to the first field.
func (s *UIState) SetView(v View) {
	s.view = v
	s.focus = FocusName
}

// Focus returns the focused editor field.
func (s *UIState) Focus() Focus {
	return s.focus
}

// SetFocus sets the focused editor field.
func (s *UIState) SetFocus(f Focus) {
	s.focus = f
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize records the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

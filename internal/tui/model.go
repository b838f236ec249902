package tui

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/dacite/internal/app"
	"github.com/thenoetrevino/dacite/internal/config"
	"github.com/thenoetrevino/dacite/internal/editor"
	"github.com/thenoetrevino/dacite/internal/models"
	"github.com/thenoetrevino/dacite/internal/tui/components"
	"github.com/thenoetrevino/dacite/internal/tui/huhforms"
	"github.com/thenoetrevino/dacite/internal/tui/state"
)

// Options selects what the program opens on. The zero value starts on the
// column list.
type Options struct {
	ColumnID int // edit an existing column
	GroupID  int // start a new column in this group

	// NewColumn starts a new column without naming a group; the first group is used
	NewColumn bool
}

func (o Options) opensEditor() bool {
	return o.ColumnID > 0 || o.GroupID > 0 || o.NewColumn
}

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	App    *app.App
	Config *config.Config

	UiState       *state.UIState
	ColumnList    *state.ColumnListState
	RefPicker     *state.RefPickerState
	Notifications *state.NotificationState

	// Editor view. Nil while the column list is shown.
	Editor *editor.Editor
	Picker *editor.ReferencePicker
	Group  *models.ColumnGroup

	nameInput   textinput.Model
	numberInput textinput.Model
	notesInput  textarea.Model
	spinner     spinner.Model

	refForm       *huh.Form
	refFormValues *huhforms.ReferenceFormValues

	// numberErr is set while the number input holds text that is not an integer
	numberErr error
	saving    bool

	// seq identifies the open editor so replies meant for a closed one are dropped
	seq int
}

// InitialModel creates the TUI model. When opts names a column or group the
// editor is opened directly.
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config, opts Options) (Model, error) {
	components.InitStyles(cfg.ColorScheme)

	m := Model{
		ctx:           ctx,
		App:           a,
		Config:        cfg,
		UiState:       state.NewUIState(state.ColumnListView),
		ColumnList:    state.NewColumnListState(),
		RefPicker:     state.NewRefPickerState(),
		Notifications: state.NewNotificationState(),
		spinner:       spinner.New(spinner.WithSpinner(spinner.Dot)),
	}

	if opts.opensEditor() {
		draft, group, err := a.LoadDraft(ctx, opts.ColumnID, opts.GroupID)
		if err != nil {
			return Model{}, err
		}
		m.openEditor(draft, group)
	}

	return m, nil
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	if m.UiState.View() == state.EditorView {
		return tea.Batch(m.loadReferences(), m.spinner.Tick, m.nameInput.Focus())
	}
	return loadColumnsCmd(m.ctx, m.App.ColumnService)
}

// openEditor builds a fresh editor around draft and switches to the editor view.
// The returned command starts the reference fetch.
func (m *Model) openEditor(draft editor.Draft, group *models.ColumnGroup) tea.Cmd {
	m.seq++
	m.Editor = m.App.NewEditor(draft)
	m.Picker = editor.NewReferencePicker(m.Editor)
	m.Picker.SetLoading()
	m.Group = group
	m.RefPicker.Clear()
	m.refForm = nil
	m.refFormValues = nil
	m.numberErr = nil
	m.saving = false

	m.nameInput = newNameInput(draft.Name)
	m.numberInput = newNumberInput(draft.Number)
	m.notesInput = newNotesInput(draft.Notes)
	m.resizeInputs()

	m.UiState.SetView(state.EditorView)
	focus := m.setFocus(state.FocusName)

	return tea.Batch(m.loadReferences(), m.spinner.Tick, focus)
}

// closeEditor drops the editor and returns to the column list
func (m *Model) closeEditor() tea.Cmd {
	m.Editor = nil
	m.Picker = nil
	m.Group = nil
	m.refForm = nil
	m.refFormValues = nil
	m.numberErr = nil
	m.saving = false

	m.UiState.SetView(state.ColumnListView)
	m.ColumnList.SetLoading()
	return loadColumnsCmd(m.ctx, m.App.ColumnService)
}

func (m *Model) loadReferences() tea.Cmd {
	return loadReferencesCmd(m.ctx, m.App.ReferenceService, m.seq)
}

// setFocus moves key input to field f
func (m *Model) setFocus(f state.Focus) tea.Cmd {
	m.nameInput.Blur()
	m.numberInput.Blur()
	m.notesInput.Blur()
	m.UiState.SetFocus(f)

	switch f {
	case state.FocusName:
		return m.nameInput.Focus()
	case state.FocusNumber:
		return m.numberInput.Focus()
	case state.FocusNotes:
		return m.notesInput.Focus()
	}
	return nil
}

func (m *Model) resizeInputs() {
	width := components.FieldWidth
	if w := m.UiState.Width(); w > 0 {
		width = min(max(w-12, 20), 100)
	}
	m.nameInput.SetWidth(width)
	m.numberInput.SetWidth(width)
	m.notesInput.SetWidth(width)
}

func newNameInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Column name"
	ti.CharLimit = models.MaxColumnNameLength
	ti.SetValue(value)
	return ti
}

func newNumberInput(value *int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "optional"
	ti.CharLimit = 10
	ti.SetValue(editor.FormatNumber(value))
	return ti
}

func newNotesInput(value string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Markdown notes"
	ta.CharLimit = models.MaxNotesLength
	ta.ShowLineNumbers = false
	ta.SetHeight(components.NotesHeight)
	ta.SetValue(value)
	return ta
}

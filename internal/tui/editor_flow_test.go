package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/dacite/internal/editor"
	"github.com/thenoetrevino/dacite/internal/models"
	"github.com/thenoetrevino/dacite/internal/testutil"
	"github.com/thenoetrevino/dacite/internal/tui/state"
)

func TestInitialModel_OpensEditorForGroup(t *testing.T) {
	m, _ := setupTestModel(t, Options{GroupID: testutil.DefaultGroupID})

	assert.Equal(t, state.EditorView, m.UiState.View())
	require.NotNil(t, m.Editor)
	assert.True(t, m.Editor.Current().IsNew())
	assert.Equal(t, editor.RefsLoading, m.Picker.LoadState())
	assert.Equal(t, state.FocusName, m.UiState.Focus())
	assert.NotNil(t, m.Init())
}

func TestInitialModel_NewColumnWithoutGroup(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	basins := testutil.CreateTestGroup(t, repo, "Basins")
	m := setupTestModelWithRepo(t, repo, Options{NewColumn: true})

	assert.Equal(t, state.EditorView, m.UiState.View())
	require.NotNil(t, m.Editor)
	assert.Equal(t, basins, m.Editor.Current().GroupID)
	assert.Equal(t, "Basins", m.Group.Name)
}

func TestInitialModel_UnknownColumn(t *testing.T) {
	m, _ := setupTestModel(t, Options{})
	_, err := InitialModel(context.Background(), m.App, m.Config, Options{ColumnID: 99})
	assert.Error(t, err)
}

func TestEditor_TypingUpdatesDraft(t *testing.T) {
	m, _ := setupTestModel(t, Options{GroupID: testutil.DefaultGroupID})

	m = typeText(m, "Karoo")
	assert.Equal(t, "Karoo", m.Editor.Current().Name)
	assert.True(t, m.Editor.HasChanges())

	m = send(m, press(tea.KeyTab))
	assert.Equal(t, state.FocusNumber, m.UiState.Focus())
	m = typeText(m, "12")
	require.NotNil(t, m.Editor.Current().Number)
	assert.Equal(t, 12, *m.Editor.Current().Number)

	m = send(m, press(tea.KeyTab))
	m = typeText(m, "dry *rocky*")
	assert.Equal(t, "dry *rocky*", m.Editor.Current().Notes)
	assert.ElementsMatch(t,
		[]editor.Field{editor.FieldName, editor.FieldNumber, editor.FieldNotes},
		m.Editor.ChangedFields())
}

func TestEditor_SubmitNewColumn(t *testing.T) {
	m, repo := setupTestModel(t, Options{GroupID: testutil.DefaultGroupID})

	m = typeText(m, "Karoo")
	m = send(m, press(tea.KeyTab))
	m = typeText(m, "3")
	m = send(m, ctrl('s'))
	m = save(t, m)

	assert.Equal(t, state.ColumnListView, m.UiState.View())
	assert.Nil(t, m.Editor)
	last, ok := m.Notifications.Last()
	require.True(t, ok)
	assert.Equal(t, state.LevelInfo, last.Level)
	assert.Contains(t, last.Message, "Karoo")

	cols, err := repo.ListColumns(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Equal(t, "Karoo", cols[0].Name)
	require.NotNil(t, cols[0].Number)
	assert.Equal(t, 3, *cols[0].Number)
}

func TestEditor_InvalidNumberBlocksSubmit(t *testing.T) {
	m, _ := setupTestModel(t, Options{GroupID: testutil.DefaultGroupID})

	m = typeText(m, "Karoo")
	m = send(m, press(tea.KeyTab))
	m = typeText(m, "1x")
	require.Error(t, m.numberErr)
	assert.True(t, errors.Is(m.numberErr, editor.ErrInvalidNumber))
	// the last valid value stays in the draft
	require.NotNil(t, m.Editor.Current().Number)
	assert.Equal(t, 1, *m.Editor.Current().Number)

	m = send(m, press(tea.KeyTab))
	m = send(m, ctrl('s'))
	assert.False(t, m.saving)
	assert.Equal(t, state.FocusNumber, m.UiState.Focus())
	last, ok := m.Notifications.Last()
	require.True(t, ok)
	assert.Equal(t, state.LevelError, last.Level)
}

func TestEditor_SubmitWithoutChanges(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	id := testutil.CreateTestColumn(t, repo, testutil.DefaultGroupID, "Karoo")
	m := setupTestModelWithRepo(t, repo, Options{ColumnID: id})

	m = send(m, ctrl('s'))
	m = save(t, m)

	assert.Equal(t, state.EditorView, m.UiState.View())
	assert.False(t, m.saving)
	last, ok := m.Notifications.Last()
	require.True(t, ok)
	assert.Equal(t, "Nothing to save", last.Message)
}

func TestEditor_SaveFailureKeepsEditorOpen(t *testing.T) {
	m, _ := setupTestModel(t, Options{GroupID: testutil.DefaultGroupID})

	// a blank name is rejected by the column service
	m = typeText(m, " ")
	m = send(m, ctrl('s'))
	m = save(t, m)

	assert.Equal(t, state.EditorView, m.UiState.View())
	require.NotNil(t, m.Editor)
	assert.Equal(t, editor.StatusEditing, m.Editor.Status())
	last, ok := m.Notifications.Last()
	require.True(t, ok)
	assert.Equal(t, state.LevelError, last.Level)
}

func TestEditor_IgnoresEditsWhileSaving(t *testing.T) {
	m, _ := setupTestModel(t, Options{GroupID: testutil.DefaultGroupID})

	m = typeText(m, "Karoo")
	m = send(m, ctrl('s'))
	require.True(t, m.saving)

	m = typeText(m, "x")
	m = send(m, tea.PasteMsg{Content: " Basin"})
	m = send(m, press(tea.KeyEscape))
	assert.Equal(t, "Karoo", m.Editor.Current().Name)
	assert.Equal(t, "Karoo", m.nameInput.Value())
	assert.Equal(t, state.EditorView, m.UiState.View())

	m = save(t, m)
	assert.Equal(t, state.ColumnListView, m.UiState.View())
}

func TestEditor_SaveRunsAlongsideIgnoredMessages(t *testing.T) {
	m, repo := setupTestModel(t, Options{GroupID: testutil.DefaultGroupID})

	m = typeText(m, "Karoo")
	m = send(m, ctrl('s'))
	require.True(t, m.saving)

	done := make(chan tea.Msg, 1)
	go func() {
		done <- saveColumnCmd(m.ctx, m.Editor, m.seq)()
	}()
	for range 20 {
		m = send(m, tea.PasteMsg{Content: " Basin"})
		m = typeText(m, "x")
	}
	m = send(m, <-done)

	assert.Equal(t, state.ColumnListView, m.UiState.View())
	cols, err := repo.ListColumns(context.Background(), testutil.DefaultGroupID)
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Equal(t, "Karoo", cols[0].Name)
}

func TestEditor_CancelReturnsToList(t *testing.T) {
	m, repo := setupTestModel(t, Options{GroupID: testutil.DefaultGroupID})
	m = typeText(m, "Karoo")

	ed := m.Editor
	m, cmd := sendWithCmd(m, press(tea.KeyEscape))

	assert.Equal(t, state.ColumnListView, m.UiState.View())
	assert.Nil(t, m.Editor)
	assert.Equal(t, editor.StatusCancelled, ed.Status())
	assert.NotNil(t, cmd, "returning to the list reloads it")

	cols, err := repo.ListColumns(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, cols)
}

func TestEditor_StaleSaveReplyIgnored(t *testing.T) {
	m, _ := setupTestModel(t, Options{GroupID: testutil.DefaultGroupID})
	m = typeText(m, "Karoo")

	m = send(m, columnSavedMsg{seq: m.seq - 1, err: errors.New("boom")})
	assert.False(t, m.Notifications.HasAny())
	assert.Equal(t, state.EditorView, m.UiState.View())
}

func TestPicker_SelectExistingByFilter(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	testutil.CreateTestReference(t, repo, "Adams", 1990)
	jones := testutil.CreateTestReference(t, repo, "Jones", 2004)
	m := setupTestModelWithRepo(t, repo, Options{GroupID: testutil.DefaultGroupID})

	m = loadRefs(t, m)
	require.Equal(t, editor.RefsLoaded, m.Picker.LoadState())

	// shift+tab wraps from the name field to the reference field
	m = send(m, tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift}))
	require.Equal(t, state.FocusReference, m.UiState.Focus())

	m = typeText(m, "jon")
	assert.Equal(t, "jon", m.RefPicker.Filter())
	m = send(m, press(tea.KeyEnter))

	ref := m.Editor.Current().Ref
	require.NotNil(t, ref)
	assert.Equal(t, jones.ID, ref.ID)
	assert.Equal(t, "Jones(2004)", m.Editor.Current().RefLabel())

	m = send(m, ctrl('x'))
	assert.Nil(t, m.Editor.Current().Ref)
}

func TestPicker_ClearWithoutReferenceKeepsDraftClean(t *testing.T) {
	m, _ := setupTestModel(t, Options{GroupID: testutil.DefaultGroupID})
	m = loadRefs(t, m)

	m = send(m, tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift}))
	require.Equal(t, state.FocusReference, m.UiState.Focus())

	m = send(m, ctrl('x'))
	assert.False(t, m.Editor.HasChanges())
	assert.Empty(t, m.Editor.ChangedFields())
	assert.NotContains(t, m.View().Content, "unsaved")
}

func TestPicker_CursorMovesThroughCandidates(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	testutil.CreateTestReference(t, repo, "Adams", 1990)
	testutil.CreateTestReference(t, repo, "Jones", 2004)
	m := setupTestModelWithRepo(t, repo, Options{GroupID: testutil.DefaultGroupID})
	m = loadRefs(t, m)
	m.setFocus(state.FocusReference)

	m = send(m, press(tea.KeyDown))
	m = send(m, press(tea.KeyDown))
	assert.Equal(t, 1, m.RefPicker.Cursor())
	m = send(m, press(tea.KeyEnter))
	assert.Equal(t, "Jones", m.Editor.Current().Ref.Author)

	m = send(m, press(tea.KeyUp))
	m = send(m, press(tea.KeyEnter))
	assert.Equal(t, "Adams", m.Editor.Current().Ref.Author)
}

func TestPicker_IgnoresSelectionWhileLoading(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	testutil.CreateTestReference(t, repo, "Adams", 1990)
	m := setupTestModelWithRepo(t, repo, Options{GroupID: testutil.DefaultGroupID})
	m.setFocus(state.FocusReference)

	m = send(m, press(tea.KeyEnter))
	m = typeText(m, "ad")
	assert.Nil(t, m.Editor.Current().Ref)
	assert.Empty(t, m.RefPicker.Filter())
	assert.Equal(t, editor.RefsLoading, m.Picker.LoadState())
}

func TestPicker_StaleRefsDropped(t *testing.T) {
	m, _ := setupTestModel(t, Options{GroupID: testutil.DefaultGroupID})

	m = send(m, refsLoadedMsg{seq: m.seq + 1, refs: []models.Reference{{ID: 1, Author: "Adams", PubYear: 1990}}})
	assert.Equal(t, editor.RefsLoading, m.Picker.LoadState())
}

func TestPicker_RetryAfterFailure(t *testing.T) {
	m, _ := setupTestModel(t, Options{GroupID: testutil.DefaultGroupID})
	m.setFocus(state.FocusReference)

	m = send(m, refsLoadedMsg{seq: m.seq, err: errors.New("connection refused")})
	require.Equal(t, editor.RefsFailed, m.Picker.LoadState())
	assert.Contains(t, m.View().Content, "connection refused")

	m, cmd := sendWithCmd(m, ctrl('r'))
	assert.Equal(t, editor.RefsLoading, m.Picker.LoadState())
	assert.NotNil(t, cmd)

	m = loadRefs(t, m)
	assert.Equal(t, editor.RefsLoaded, m.Picker.LoadState())
}

func TestReferenceForm_EscCollapsesWithoutClosingEditor(t *testing.T) {
	m, _ := setupTestModel(t, Options{GroupID: testutil.DefaultGroupID})

	m = send(m, ctrl('n'))
	require.NotNil(t, m.refForm)
	assert.Equal(t, editor.FormExpanded, m.Picker.FormState())
	assert.Equal(t, state.FocusReference, m.UiState.Focus())
	assert.Contains(t, m.View().Content, "New Reference")

	m = send(m, press(tea.KeyEscape))
	assert.Nil(t, m.refForm)
	assert.Equal(t, editor.FormCollapsed, m.Picker.FormState())
	assert.Equal(t, state.EditorView, m.UiState.View())
	assert.Equal(t, editor.StatusEditing, m.Editor.Status())
}

func TestEditor_DraftedReferenceSavedWithColumn(t *testing.T) {
	m, repo := setupTestModel(t, Options{GroupID: testutil.DefaultGroupID})

	m = typeText(m, "Karoo")
	m.Picker.SubmitNewReference(models.Reference{Author: "Smith", PubYear: 1999, Ref: "Smith, J. (1999). Karoo."})
	assert.Contains(t, m.View().Content, "(new)")

	m = send(m, ctrl('s'))
	m = save(t, m)
	require.Equal(t, state.ColumnListView, m.UiState.View())

	refs, err := repo.ListReferences(context.Background())
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "Smith", refs[0].Author)
}

func TestView_Editor(t *testing.T) {
	m, _ := setupTestModel(t, Options{GroupID: testutil.DefaultGroupID})
	m = typeText(m, "Karoo")

	content := m.View().Content
	assert.True(t, m.View().AltScreen)
	assert.Contains(t, content, "New Column in Unassigned")
	assert.Contains(t, content, "Column Name")
	assert.Contains(t, content, "unsaved")
}

func TestView_WaitsForSize(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	m := setupTestModelWithRepo(t, repo, Options{})
	m.UiState.SetSize(0, 0)
	assert.True(t, strings.HasPrefix(m.View().Content, "Loading"))
}

package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/dacite/internal/app"
	"github.com/thenoetrevino/dacite/internal/config"
	"github.com/thenoetrevino/dacite/internal/database"
	"github.com/thenoetrevino/dacite/internal/testutil"
)

// setupTestModel builds a sized model over a fresh in-memory database
func setupTestModel(t *testing.T, opts Options) (Model, *database.Repository) {
	t.Helper()
	repo := testutil.SetupTestRepo(t)
	return setupTestModelWithRepo(t, repo, opts), repo
}

func setupTestModelWithRepo(t *testing.T, repo *database.Repository, opts Options) Model {
	t.Helper()
	m, err := InitialModel(context.Background(), app.New(repo), config.Default(), opts)
	require.NoError(t, err)
	return send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

// send runs one update and unwraps the model
func send(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func sendWithCmd(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// typeText sends one key press per rune
func typeText(m Model, s string) Model {
	for _, r := range s {
		m = send(m, tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
	}
	return m
}

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

func ctrl(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: code, Mod: tea.ModCtrl})
}

// loadRefs delivers the reference fetch for the open editor
func loadRefs(t *testing.T, m Model) Model {
	t.Helper()
	msg := loadReferencesCmd(m.ctx, m.App.ReferenceService, m.seq)()
	return send(m, msg)
}

// save delivers the result of the save started by the submit key
func save(t *testing.T, m Model) Model {
	t.Helper()
	require.True(t, m.saving, "submit should have started a save")
	msg := saveColumnCmd(m.ctx, m.Editor, m.seq)()
	return send(m, msg)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hub

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/retrohub-tui/internal/access"
	"github.com/jeranaias/retrohub-tui/internal/catalog"
	"github.com/jeranaias/retrohub-tui/internal/library"
	"github.com/jeranaias/retrohub-tui/internal/storage"
	"github.com/jeranaias/retrohub-tui/internal/ui/styles"
)

const (
	adminEmail    = "keeper@retrohub.test"
	adminPassword = "hub-master-9809"
)

func newTestHub(t *testing.T) (Model, *access.Store, *library.Library) {
	t.Helper()
	hash, err := access.HashPassword(adminPassword)
	require.NoError(t, err)

	kv := storage.NewMemoryStore()
	store := access.New(kv, access.Config{
		AdminEmail:        adminEmail,
		AdminName:         "Keeper",
		AdminPasswordHash: hash,
	})
	_, err = store.Login(adminEmail, adminPassword)
	require.NoError(t, err)

	lib := library.New(kv)
	m := New(store, lib, styles.NewTheme())

	games, consoles := catalog.Fallback()
	m, _ = m.Update(CatalogMsg{Catalog: catalog.Catalog{
		Games:    games,
		Consoles: consoles,
		Source:   catalog.SourceFile,
	}})
	return m, store, lib
}

func press(m Model, key string) (Model, tea.Cmd) {
	switch key {
	case "enter":
		return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		return m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	case "left":
		return m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	case "right":
		return m.Update(tea.KeyMsg{Type: tea.KeyRight})
	case "ctrl+l":
		return m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	default:
		return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	}
}

func TestCatalogMsg_BuildsTabsAndRows(t *testing.T) {
	m, _, _ := newTestHub(t)

	assert.Equal(t, []string{"All", "SNES", "N64", "PS1"}, m.consoles)
	assert.Len(t, m.filteredGames(), 6)
}

func TestSelectTab_FiltersByConsole(t *testing.T) {
	m, _, _ := newTestHub(t)

	m, _ = press(m, "right")
	require.Equal(t, 1, m.tabIndex)
	for _, g := range m.filteredGames() {
		assert.Equal(t, "SNES", g.Console)
	}
	assert.Len(t, m.filteredGames(), 2)
}

func TestSearch_FiltersByTitle(t *testing.T) {
	m, _, _ := newTestHub(t)

	m, _ = press(m, "/")
	require.True(t, m.searching)
	m, _ = press(m, "mario")

	games := m.filteredGames()
	require.Len(t, games, 2)
	for _, g := range games {
		assert.Contains(t, g.DisplayName(), "Mario")
	}

	m, _ = press(m, "esc")
	assert.False(t, m.searching)
	assert.Len(t, m.filteredGames(), 6)
}

func TestAdminOverlay_ApprovesSelectedUser(t *testing.T) {
	m, store, _ := newTestHub(t)
	_, err := store.Register("Ana Souza", "ana@example.com", "secret1")
	require.NoError(t, err)

	m, _ = press(m, "a")
	require.Equal(t, overlayAdmin, m.overlay)
	require.Len(t, m.admin.pending, 1)

	m, _ = press(m, "a")
	assert.Empty(t, m.admin.pending)
	require.Len(t, store.ApprovedUsers(), 1)
	assert.Equal(t, "ana@example.com", store.ApprovedUsers()[0].Email)
}

func TestAdminOverlay_RejectsSelectedUser(t *testing.T) {
	m, store, _ := newTestHub(t)
	_, err := store.Register("Ana Souza", "ana@example.com", "secret1")
	require.NoError(t, err)

	m, _ = press(m, "a")
	m, _ = press(m, "r")
	assert.Empty(t, m.admin.pending)
	assert.Empty(t, store.PendingUsers())
	assert.Empty(t, store.ApprovedUsers())
}

func TestUploadOverlay_AddsLibraryEntry(t *testing.T) {
	m, _, lib := newTestHub(t)

	m, _ = press(m, "u")
	require.Equal(t, overlayUpload, m.overlay)

	m.upload.title.SetValue("Chrono Trigger")
	m.upload.romRef.SetValue("https://archive.org/download/snes/ChronoTrigger.zip")
	m, _ = press(m, "enter")

	assert.Empty(t, m.upload.errMsg)
	assert.Contains(t, m.upload.notice, "Chrono Trigger")

	entries, err := lib.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Keeper", entries[0].Uploader)
}

func TestUploadOverlay_ValidationErrorShown(t *testing.T) {
	m, _, lib := newTestHub(t)

	m, _ = press(m, "u")
	m, _ = press(m, "enter")

	assert.NotEmpty(t, m.upload.errMsg)
	entries, err := lib.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPlayer_RunsToCompletion(t *testing.T) {
	m, _, _ := newTestHub(t)

	m, cmd := press(m, "enter")
	require.Equal(t, overlayPlayer, m.overlay)
	require.NotNil(t, cmd)

	for i := 0; i < 30 && !m.player.done; i++ {
		m, _ = m.Update(playerTickMsg{})
	}
	assert.True(t, m.player.done)
	assert.Equal(t, "Now playing (simulated)", m.player.stage())

	m, _ = press(m, "esc")
	assert.Equal(t, overlayNone, m.overlay)
}

func TestDocsOverlay_OpensAndCloses(t *testing.T) {
	m, _, _ := newTestHub(t)

	m, _ = press(m, "d")
	require.Equal(t, overlayDocs, m.overlay)
	assert.NotEmpty(t, m.viewDocs())

	m, _ = press(m, "q")
	assert.Equal(t, overlayNone, m.overlay)
}

func TestLogout_EmitsLoggedOut(t *testing.T) {
	m, store, _ := newTestHub(t)

	m, cmd := press(m, "ctrl+l")
	require.NotNil(t, cmd)
	_, ok := cmd().(LoggedOutMsg)
	assert.True(t, ok)
	assert.False(t, store.IsLoggedIn())
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/retrohub-tui/internal/access"
	"github.com/jeranaias/retrohub-tui/internal/catalog"
	"github.com/jeranaias/retrohub-tui/internal/library"
	"github.com/jeranaias/retrohub-tui/internal/storage"
	"github.com/jeranaias/retrohub-tui/internal/ui/hub"
	"github.com/jeranaias/retrohub-tui/internal/ui/login"
)

const (
	adminEmail    = "keeper@retrohub.test"
	adminPassword = "hub-master-9809"
)

func newTestApp(t *testing.T) (App, *access.Store) {
	t.Helper()
	hash, err := access.HashPassword(adminPassword)
	require.NoError(t, err)

	kv := storage.NewMemoryStore()
	store := access.New(kv, access.Config{
		AdminEmail:        adminEmail,
		AdminName:         "Keeper",
		AdminPasswordHash: hash,
	})
	loader := &catalog.Loader{Path: filepath.Join(t.TempDir(), "missing.json")}
	return NewApp(store, library.New(kv), loader), store
}

func TestNewApp_StartsAtLoginWithoutSession(t *testing.T) {
	app, _ := newTestApp(t)
	assert.Equal(t, screenLogin, app.screen)
}

func TestNewApp_RestoresPersistedSession(t *testing.T) {
	hash, err := access.HashPassword(adminPassword)
	require.NoError(t, err)
	cfg := access.Config{
		AdminEmail:        adminEmail,
		AdminName:         "Keeper",
		AdminPasswordHash: hash,
	}

	kv := storage.NewMemoryStore()
	first := access.New(kv, cfg)
	_, err = first.Login(adminEmail, adminPassword)
	require.NoError(t, err)

	// Same backend, fresh store: the session file is the only bridge.
	second := access.New(kv, cfg)
	loader := &catalog.Loader{Path: filepath.Join(t.TempDir(), "missing.json")}
	app := NewApp(second, library.New(kv), loader)
	assert.Equal(t, screenHub, app.screen)
}

func TestUpdate_LoggedInSwitchesToHub(t *testing.T) {
	app, store := newTestApp(t)

	session, err := store.Login(adminEmail, adminPassword)
	require.NoError(t, err)

	model, _ := app.Update(login.LoggedInMsg{Session: session})
	app = model.(App)
	assert.Equal(t, screenHub, app.screen)
}

func TestUpdate_LoggedOutSwitchesToLogin(t *testing.T) {
	app, store := newTestApp(t)
	_, err := store.Login(adminEmail, adminPassword)
	require.NoError(t, err)
	app.screen = screenHub

	model, _ := app.Update(hub.LoggedOutMsg{})
	app = model.(App)
	assert.Equal(t, screenLogin, app.screen)
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	app, _ := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestLoadCatalog_DeliversFallback(t *testing.T) {
	app, _ := newTestApp(t)

	msg := app.loadCatalog()()
	catMsg, ok := msg.(hub.CatalogMsg)
	require.True(t, ok)
	assert.Equal(t, catalog.SourceFallback, catMsg.Catalog.Source)
	assert.Len(t, catMsg.Catalog.Games, 6)
}

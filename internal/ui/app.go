// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the top-level Bubble Tea application model.
//
// The app is a two-screen switch: the login screen until a session
// exists, the hub screen afterwards. A persisted session that is still
// valid skips the login screen entirely.
package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/retrohub-tui/internal/access"
	"github.com/jeranaias/retrohub-tui/internal/catalog"
	"github.com/jeranaias/retrohub-tui/internal/library"
	"github.com/jeranaias/retrohub-tui/internal/ui/hub"
	"github.com/jeranaias/retrohub-tui/internal/ui/login"
	"github.com/jeranaias/retrohub-tui/internal/ui/styles"
)

// =============================================================================
// APP MODEL
// =============================================================================

type screen int

const (
	screenLogin screen = iota
	screenHub
)

// App is the root Bubble Tea model.
type App struct {
	theme  *styles.Theme
	store  *access.Store
	loader *catalog.Loader

	screen screen
	login  login.Model
	hub    hub.Model

	width  int
	height int
}

// NewApp builds the root model. Any persisted session is restored
// before the first frame so the user lands on the right screen.
func NewApp(store *access.Store, lib *library.Library, loader *catalog.Loader) App {
	theme := styles.NewTheme()

	app := App{
		theme:  theme,
		store:  store,
		loader: loader,
		login:  login.New(store, theme),
		hub:    hub.New(store, lib, theme),
	}

	report := store.RestoreSession()
	if report.SessionRestored {
		app.screen = screenHub
	}
	return app
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.login.Init(), a.loadCatalog())
}

// loadCatalog fetches the catalog off the update loop; the hub shows
// whatever arrives, fallback included.
func (a App) loadCatalog() tea.Cmd {
	loader := a.loader
	return func() tea.Msg {
		return hub.CatalogMsg{Catalog: loader.Load(context.Background())}
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.theme.SetSize(msg.Width, msg.Height)
		var loginCmd, hubCmd tea.Cmd
		a.login, loginCmd = a.login.Update(msg)
		a.hub, hubCmd = a.hub.Update(msg)
		return a, tea.Batch(loginCmd, hubCmd)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case login.LoggedInMsg:
		a.screen = screenHub
		return a, nil

	case hub.LoggedOutMsg:
		a.screen = screenLogin
		a.login = login.New(a.store, a.theme)
		var cmd tea.Cmd
		if a.width > 0 {
			a.login, cmd = a.login.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		}
		return a, tea.Batch(a.login.Init(), cmd)

	case hub.CatalogMsg:
		var cmd tea.Cmd
		a.hub, cmd = a.hub.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	switch a.screen {
	case screenLogin:
		a.login, cmd = a.login.Update(msg)
	case screenHub:
		a.hub, cmd = a.hub.Update(msg)
	}
	return a, cmd
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (a App) View() string {
	if a.screen == screenLogin {
		return a.login.View()
	}
	return a.hub.View()
}

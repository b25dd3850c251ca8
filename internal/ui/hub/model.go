// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package hub provides the main catalog screen shown after sign-in.
//
// The screen is a filterable game table with console tabs. Admins get
// two extra overlays: the approval panel and the ROM uploader. Everyone
// gets the simulated player and the ROM documentation viewer.
package hub

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/retrohub-tui/internal/access"
	"github.com/jeranaias/retrohub-tui/internal/catalog"
	"github.com/jeranaias/retrohub-tui/internal/library"
	"github.com/jeranaias/retrohub-tui/internal/ui/components"
	"github.com/jeranaias/retrohub-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// CatalogMsg delivers a loaded (or reloaded) catalog to the hub.
type CatalogMsg struct {
	Catalog catalog.Catalog
}

// LoggedOutMsg is emitted when the user logs out; the parent model
// switches back to the login screen.
type LoggedOutMsg struct{}

// =============================================================================
// MODEL
// =============================================================================

// overlay identifies which panel floats above the catalog.
type overlay int

const (
	overlayNone overlay = iota
	overlayAdmin
	overlayUpload
	overlayPlayer
	overlayDocs
)

// allConsolesTab is the first tab, showing every game.
const allConsolesTab = "All"

// Model is the Bubble Tea model for the hub screen.
type Model struct {
	theme *styles.Theme
	store *access.Store
	lib   *library.Library

	cat      catalog.Catalog
	consoles []string
	tabIndex int

	search    textinput.Model
	searching bool
	table     table.Model

	overlay overlay
	admin   adminModel
	upload  uploadModel
	player  playerModel
	docs    docsModel

	status string
	width  int
	height int
}

// New creates the hub screen. The catalog arrives later via CatalogMsg
// so startup never blocks on a slow source.
func New(store *access.Store, lib *library.Library, theme *styles.Theme) Model {
	search := textinput.New()
	search.Placeholder = "Search games..."
	search.CharLimit = 64

	columns := []table.Column{
		{Title: "Title", Width: 34},
		{Title: "Console", Width: 9},
		{Title: "Genre", Width: 12},
		{Title: "Rating", Width: 7},
		{Title: "Year", Width: 6},
	}
	tbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	return Model{
		theme:    theme,
		store:    store,
		lib:      lib,
		search:   search,
		table:    tbl,
		consoles: []string{allConsolesTab},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SelectedGame returns the game under the cursor, if any.
func (m Model) SelectedGame() (catalog.Game, bool) {
	games := m.filteredGames()
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(games) {
		return catalog.Game{}, false
	}
	return games[idx], true
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(maxInt(4, msg.Height-10))
		if m.overlay == overlayDocs {
			m.docs.resize(msg.Width, msg.Height)
		}
		return m, nil

	case CatalogMsg:
		m.setCatalog(msg.Catalog)
		return m, nil

	case playerTickMsg:
		if m.overlay == overlayPlayer {
			var cmd tea.Cmd
			m.player, cmd = m.player.update(msg)
			return m, cmd
		}
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(key)
	}
	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (Model, tea.Cmd) {
	// Overlays capture input while open.
	switch m.overlay {
	case overlayAdmin:
		return m.updateAdmin(key)
	case overlayUpload:
		return m.updateUpload(key)
	case overlayPlayer:
		if key.String() == "esc" || key.String() == "q" {
			m.overlay = overlayNone
		}
		return m, nil
	case overlayDocs:
		return m.updateDocs(key)
	}

	// Search field captures typing until closed.
	if m.searching {
		switch key.String() {
		case "esc":
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			m.refreshRows()
			return m, nil
		case "enter":
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(key)
		m.refreshRows()
		return m, cmd
	}

	switch key.String() {
	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case "left", "h":
		m.selectTab(m.tabIndex - 1)
		return m, nil
	case "right", "l":
		m.selectTab(m.tabIndex + 1)
		return m, nil
	case "enter":
		if game, ok := m.SelectedGame(); ok {
			m.player = newPlayer(game)
			m.overlay = overlayPlayer
			return m, m.player.start()
		}
		return m, nil
	case "d":
		m.docs = newDocs(m.theme, m.width, m.height)
		m.overlay = overlayDocs
		return m, nil
	case "a":
		if m.isAdmin() {
			m.admin = newAdmin(m.store)
			m.overlay = overlayAdmin
		}
		return m, nil
	case "u":
		if m.isAdmin() {
			m.upload = newUpload(m.theme)
			m.overlay = overlayUpload
		}
		return m, nil
	case "ctrl+l":
		if err := m.store.Logout(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m, func() tea.Msg { return LoggedOutMsg{} }
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(key)
	return m, cmd
}

func (m *Model) isAdmin() bool {
	user, ok := m.store.CurrentUser()
	return ok && user.IsAdmin
}

// =============================================================================
// CATALOG FILTERING
// =============================================================================

// setCatalog installs a new catalog and rebuilds tabs and rows. The
// cursor resets because the row set changed underneath it.
func (m *Model) setCatalog(cat catalog.Catalog) {
	m.cat = cat

	consoles := []string{allConsolesTab}
	for _, c := range cat.Consoles {
		consoles = append(consoles, c.Name)
	}
	m.consoles = consoles
	if m.tabIndex >= len(consoles) {
		m.tabIndex = 0
	}

	m.refreshRows()
	m.table.SetCursor(0)

	if cat.Source == catalog.SourceFallback {
		m.status = "catalog unavailable - showing built-in games"
	} else {
		m.status = ""
	}
}

func (m *Model) selectTab(idx int) {
	if idx < 0 || idx >= len(m.consoles) {
		return
	}
	m.tabIndex = idx
	m.refreshRows()
	m.table.SetCursor(0)
}

// filteredGames applies the console tab and the search query.
func (m Model) filteredGames() []catalog.Game {
	games := m.cat.Games
	if m.tabIndex > 0 && m.tabIndex < len(m.consoles) {
		games = m.cat.GamesForConsole(m.consoles[m.tabIndex])
	}

	query := strings.ToLower(strings.TrimSpace(m.search.Value()))
	if query == "" {
		return games
	}

	var matched []catalog.Game
	for _, g := range games {
		if strings.Contains(strings.ToLower(g.DisplayName()), query) {
			matched = append(matched, g)
		}
	}
	return matched
}

func (m *Model) refreshRows() {
	games := m.filteredGames()
	rows := make([]table.Row, 0, len(games))
	for _, g := range games {
		rows = append(rows, table.Row{
			components.Ellipsize(g.DisplayName(), 34),
			g.Console,
			g.Genre,
			components.RenderStars(g.Rating),
			g.Year,
		})
	}
	m.table.SetRows(rows)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// addUpload records an uploaded entry in the library on behalf of the
// current user.
func (m *Model) addUpload(e library.Entry) (library.Entry, error) {
	uploader := "unknown"
	if user, ok := m.store.CurrentUser(); ok {
		uploader = user.Name
	}
	return m.lib.Add(e, uploader)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hub

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/retrohub-tui/internal/rom"
	"github.com/jeranaias/retrohub-tui/internal/ui/styles"
)

// =============================================================================
// ROM DOCUMENTATION VIEWER
// =============================================================================

// docsModel shows the ROM documentation in a scrollable viewport,
// rendered once with glamour at open time.
type docsModel struct {
	vp viewport.Model
}

func newDocs(theme *styles.Theme, width, height int) docsModel {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	vp := viewport.New(width-4, maxInt(6, height-6))
	vp.SetContent(renderDocs(width - 6))
	return docsModel{vp: vp}
}

func (d *docsModel) resize(width, height int) {
	d.vp.Width = width - 4
	d.vp.Height = maxInt(6, height-6)
	d.vp.SetContent(renderDocs(width - 6))
}

// renderDocs renders the documentation markdown, falling back to the
// raw text if the renderer cannot be built.
func renderDocs(wrap int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return rom.DocumentationMarkdown
	}
	out, err := renderer.Render(rom.DocumentationMarkdown)
	if err != nil {
		return rom.DocumentationMarkdown
	}
	return out
}

func (m Model) updateDocs(key tea.KeyMsg) (Model, tea.Cmd) {
	switch key.String() {
	case "esc", "q":
		m.overlay = overlayNone
		return m, nil
	}
	var cmd tea.Cmd
	m.docs.vp, cmd = m.docs.vp.Update(key)
	return m, cmd
}

func (m Model) viewDocs() string {
	title := m.theme.OverlayTitle.Render("ROM Documentation")
	hint := m.theme.FormHint.Render("↑/↓ scroll · esc close")
	return m.theme.OverlayBox.Render(title + "\n" + m.docs.vp.View() + "\n" + hint)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hub

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/retrohub-tui/internal/ui/components"
)

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	switch m.overlay {
	case overlayAdmin:
		return m.centered(m.viewAdmin())
	case overlayUpload:
		return m.centered(m.viewUpload())
	case overlayPlayer:
		return m.centered(m.viewPlayer())
	case overlayDocs:
		return m.centered(m.viewDocs())
	}

	var sb strings.Builder

	user, _ := m.store.CurrentUser()
	sb.WriteString(components.RenderHeader(m.theme, components.HeaderData{
		UserName:     user.Name,
		IsAdmin:      user.IsAdmin,
		PendingCount: len(m.store.PendingUsers()),
		Width:        maxInt(m.width, 40),
	}))
	sb.WriteString("\n")

	sb.WriteString(m.viewTabs())
	sb.WriteString("\n")

	if m.searching || m.search.Value() != "" {
		sb.WriteString(m.search.View())
		sb.WriteString("\n")
	}

	if m.status != "" {
		sb.WriteString(m.theme.SourceNotice.Render(m.status))
		sb.WriteString("\n")
	}

	sb.WriteString(m.table.View())
	sb.WriteString("\n")
	sb.WriteString(m.theme.GameMeta.Render(components.FormatCount(len(m.filteredGames()))))
	sb.WriteString("\n")
	sb.WriteString(m.viewStatusBar())

	return sb.String()
}

// viewTabs renders the console tab strip with per-console counts.
func (m Model) viewTabs() string {
	var tabs []string
	for i, name := range m.consoles {
		label := name
		for _, c := range m.cat.Consoles {
			if c.Name == name {
				label = c.Icon + " " + name
				break
			}
		}
		if i == m.tabIndex {
			tabs = append(tabs, m.theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.theme.TabIdle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatusBar() string {
	shortcuts := []struct{ key, desc string }{
		{"/", "search"},
		{"←/→", "console"},
		{"enter", "play"},
		{"d", "docs"},
	}
	if m.isAdmin() {
		shortcuts = append(shortcuts,
			struct{ key, desc string }{"a", "approvals"},
			struct{ key, desc string }{"u", "upload"},
		)
	}
	shortcuts = append(shortcuts, struct{ key, desc string }{"ctrl+l", "logout"})

	var parts []string
	for _, s := range shortcuts {
		parts = append(parts, m.theme.ShortcutKey.Render(s.key)+" "+m.theme.ShortcutDesc.Render(s.desc))
	}
	return m.theme.StatusBar.Render(strings.Join(parts, "  "))
}

func (m Model) centered(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

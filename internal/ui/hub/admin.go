// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hub

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/retrohub-tui/internal/access"
	"github.com/jeranaias/retrohub-tui/internal/ui/styles"
)

// =============================================================================
// ADMIN APPROVAL PANEL
// =============================================================================

// adminModel is the pending-account approval overlay.
type adminModel struct {
	store   *access.Store
	pending []access.User
	cursor  int
	status  string
}

func newAdmin(store *access.Store) adminModel {
	return adminModel{
		store:   store,
		pending: store.PendingUsers(),
	}
}

// refresh re-reads the pending list and clamps the cursor.
func (a *adminModel) refresh() {
	a.pending = a.store.PendingUsers()
	if a.cursor >= len(a.pending) {
		a.cursor = len(a.pending) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (m Model) updateAdmin(key tea.KeyMsg) (Model, tea.Cmd) {
	switch key.String() {
	case "esc", "q":
		m.overlay = overlayNone
		return m, nil
	case "up", "k":
		if m.admin.cursor > 0 {
			m.admin.cursor--
		}
		return m, nil
	case "down", "j":
		if m.admin.cursor < len(m.admin.pending)-1 {
			m.admin.cursor++
		}
		return m, nil
	case "a", "enter":
		if m.admin.cursor < len(m.admin.pending) {
			user := m.admin.pending[m.admin.cursor]
			if err := m.store.ApproveUser(user.ID); err != nil {
				m.admin.status = err.Error()
			} else {
				m.admin.status = user.Name + " approved"
			}
			m.admin.refresh()
		}
		return m, nil
	case "r", "x":
		if m.admin.cursor < len(m.admin.pending) {
			user := m.admin.pending[m.admin.cursor]
			if err := m.store.RejectUser(user.ID); err != nil {
				m.admin.status = err.Error()
			} else {
				m.admin.status = user.Name + " rejected"
			}
			m.admin.refresh()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) viewAdmin() string {
	var sb strings.Builder
	sb.WriteString(m.theme.OverlayTitle.Render("Pending approvals"))
	sb.WriteString("\n")

	if len(m.admin.pending) == 0 {
		sb.WriteString(m.theme.GameMeta.Render("no accounts waiting"))
	}
	for i, user := range m.admin.pending {
		line := user.Name + " <" + user.Email + ">"
		if i == m.admin.cursor {
			line = m.theme.RowSelected.Render("> " + line)
		} else {
			line = "  " + line
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if m.admin.status != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.RenderInfo(m.admin.status))
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.theme.FormHint.Render("a approve · r reject · esc close"))

	return m.theme.OverlayBox.Render(sb.String())
}

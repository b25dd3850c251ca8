// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/retrohub-tui/internal/ui/styles"
	"github.com/jeranaias/retrohub-tui/internal/util"
)

// =============================================================================
// HEADER
// =============================================================================

// HeaderData carries the state the header renders.
type HeaderData struct {
	// UserName is empty when nobody is logged in.
	UserName string
	// IsAdmin shows the admin badge and pending counter.
	IsAdmin bool
	// PendingCount is the number of accounts awaiting approval.
	PendingCount int
	// Width is the full terminal width.
	Width int
}

// RenderHeader renders the top application bar: brand on the left,
// session identity on the right.
func RenderHeader(theme *styles.Theme, data HeaderData) string {
	brand := theme.HeaderTitle.Render("🎮 RetroHub")
	subtitle := theme.HeaderSubtitle.Render(" retro game catalog")
	left := brand + subtitle

	var right string
	if data.UserName != "" {
		right = theme.HeaderUser.Render(data.UserName)
		if data.IsAdmin {
			badge := theme.AdminBadge.Render("ADMIN")
			if data.PendingCount > 0 {
				badge += " " + styles.RenderWarning(FormatPending(data.PendingCount))
			}
			right = badge + " " + right
		}
	}

	gap := data.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	line := left + strings.Repeat(" ", gap) + right
	return theme.Header.Width(data.Width).Render(line)
}

// FormatPending renders the pending-approval counter.
func FormatPending(n int) string {
	if n == 1 {
		return "1 pending"
	}
	return util.IntToString(n) + " pending"
}

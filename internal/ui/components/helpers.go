// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the retrohub TUI.
package components

import (
	"strings"

	"github.com/jeranaias/retrohub-tui/internal/util"
)

// =============================================================================
// SHARED HELPER FUNCTIONS
// =============================================================================

// RenderStars renders a 0-5 rating as a five-character star bar.
// Half points round down to a hollow star.
func RenderStars(rating float64) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}

	full := int(rating)
	half := rating-float64(full) >= 0.5

	var sb strings.Builder
	for i := 0; i < full; i++ {
		sb.WriteString("★")
	}
	if half && full < 5 {
		sb.WriteString("☆")
		full++
	}
	for i := full; i < 5; i++ {
		sb.WriteString("·")
	}
	return sb.String()
}

// FormatCount renders "N games" with correct pluralization.
func FormatCount(n int) string {
	if n == 1 {
		return "1 game"
	}
	return util.IntToString(n) + " games"
}

// Ellipsize trims a string to the given display width, appending "..."
// when truncated. Width-aware so CJK titles line up.
func Ellipsize(s string, width int) string {
	return util.TruncateWidth(s, width)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	HeaderUser     lipgloss.Style
	AdminBadge     lipgloss.Style

	// ==========================================================================
	// FORM STYLES
	// ==========================================================================

	FormBox       lipgloss.Style
	FormTitle     lipgloss.Style
	FormLabel     lipgloss.Style
	FormHint      lipgloss.Style
	FormError     lipgloss.Style
	FormSuccess   lipgloss.Style
	ButtonActive  lipgloss.Style
	ButtonIdle    lipgloss.Style

	// ==========================================================================
	// CATALOG STYLES
	// ==========================================================================

	TabActive    lipgloss.Style
	TabIdle      lipgloss.Style
	TableHeader  lipgloss.Style
	RowSelected  lipgloss.Style
	GameTitle    lipgloss.Style
	GameMeta     lipgloss.Style
	RatingStars  lipgloss.Style
	SourceNotice lipgloss.Style

	// ==========================================================================
	// OVERLAY STYLES
	// ==========================================================================

	OverlayBox   lipgloss.Style
	OverlayTitle lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.App = lipgloss.NewStyle().
		Background(Surface)

	t.Container = lipgloss.NewStyle().
		Padding(0, 1)

	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(CrimsonDeep).
		Padding(0, 1)

	t.HeaderTitle = lipgloss.NewStyle().
		Foreground(Crimson).
		Bold(true)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.HeaderUser = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.AdminBadge = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Gold).
		Bold(true).
		Padding(0, 1)

	t.FormBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(CrimsonDeep).
		Padding(1, 3)

	t.FormTitle = lipgloss.NewStyle().
		Foreground(Crimson).
		Bold(true).
		MarginBottom(1)

	t.FormLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.FormHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.FormError = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.FormSuccess = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.ButtonActive = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Crimson).
		Bold(true).
		Padding(0, 2)

	t.ButtonIdle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceBright).
		Padding(0, 2)

	t.TabActive = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Crimson).
		Bold(true).
		Padding(0, 2)

	t.TabIdle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 2)

	t.TableHeader = lipgloss.NewStyle().
		Foreground(Gold).
		Bold(true)

	t.RowSelected = lipgloss.NewStyle().
		Background(SelectionBg).
		Bold(true)

	t.GameTitle = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	t.GameMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.RatingStars = lipgloss.NewStyle().
		Foreground(Gold)

	t.SourceNotice = lipgloss.NewStyle().
		Foreground(Amber).
		Italic(true)

	t.OverlayBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(Gold).
		Background(SurfaceBright).
		Padding(1, 2)

	t.OverlayTitle = lipgloss.NewStyle().
		Foreground(Gold).
		Bold(true).
		MarginBottom(1)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Crimson).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	return t
}

// SetSize updates the theme's layout dimensions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

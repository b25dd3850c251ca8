// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import "net/url"

// =============================================================================
// GAME
// =============================================================================

// Game is one catalog entry.
type Game struct {
	ID          int     `json:"id,omitempty"`
	Name        string  `json:"name"`
	Title       string  `json:"title,omitempty"`
	Console     string  `json:"console"`
	Genre       string  `json:"genre,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	Image       string  `json:"image,omitempty"`
	ROM         string  `json:"rom"`
	FileType    string  `json:"fileType"`
	Description string  `json:"description,omitempty"`
	Year        string  `json:"year,omitempty"`
	Players     string  `json:"players,omitempty"`
}

// DisplayName returns the title if set, otherwise the name.
func (g Game) DisplayName() string {
	if g.Title != "" {
		return g.Title
	}
	return g.Name
}

// ConsoleInfo summarizes one console tab: name, game count, icon.
type ConsoleInfo struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Icon  string `json:"icon"`
}

// =============================================================================
// CONSOLE MAPPINGS
// =============================================================================

// fileTypes maps console names to emulator file-type identifiers.
var fileTypes = map[string]string{
	"SNES": "snes",
	"N64":  "n64",
	"PS1":  "psx",
	"PS2":  "ps2",
	"XBOX": "xbox",
}

// consoleIcons maps console names to their tab icons.
var consoleIcons = map[string]string{
	"SNES": "🎮",
	"N64":  "🕹️",
	"PS1":  "💿",
	"PS2":  "📀",
	"XBOX": "🎯",
}

// FileType returns the emulator file-type identifier for a console,
// defaulting to "rom" for unknown consoles.
func FileType(console string) string {
	if ft, ok := fileTypes[console]; ok {
		return ft
	}
	return "rom"
}

// Icon returns the display icon for a console, defaulting to the
// generic gamepad.
func Icon(console string) string {
	if icon, ok := consoleIcons[console]; ok {
		return icon
	}
	return "🎮"
}

// placeholderImage builds the placeholder image URL used when a game
// has no artwork.
func placeholderImage(name string) string {
	return "/placeholder.svg?height=200&width=300&text=" + url.QueryEscape(name)
}

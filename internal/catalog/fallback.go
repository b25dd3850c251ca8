// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

// Fallback returns the fixed built-in game list used whenever the
// catalog source cannot be loaded. The slice is freshly allocated per
// call so callers may mutate it.
func Fallback() ([]Game, []ConsoleInfo) {
	games := []Game{
		{
			ID:       1,
			Name:     "Super Mario World",
			Title:    "Super Mario World",
			Console:  "SNES",
			Genre:    "Plataforma",
			Rating:   4.8,
			Image:    placeholderImage("Super Mario World"),
			ROM:      "https://archive.org/download/snes-roms/SuperMarioWorld.smc",
			FileType: "snes",
		},
		{
			ID:       2,
			Name:     "Super Mario 64",
			Title:    "Super Mario 64",
			Console:  "N64",
			Genre:    "Plataforma",
			Rating:   4.9,
			Image:    placeholderImage("Mario 64"),
			ROM:      "https://archive.org/download/n64-roms/SuperMario64.z64",
			FileType: "n64",
		},
		{
			ID:       3,
			Name:     "Final Fantasy VII",
			Title:    "Final Fantasy VII",
			Console:  "PS1",
			Genre:    "RPG",
			Rating:   4.9,
			Image:    placeholderImage("Final Fantasy VII"),
			ROM:      "https://archive.org/download/psx-roms/FinalFantasy7.bin",
			FileType: "psx",
		},
		{
			ID:       4,
			Name:     "The Legend of Zelda: Ocarina of Time",
			Title:    "The Legend of Zelda: Ocarina of Time",
			Console:  "N64",
			Genre:    "Aventura",
			Rating:   4.9,
			Image:    placeholderImage("Zelda Ocarina"),
			ROM:      "https://archive.org/download/n64-roms/ZeldaOcarina.z64",
			FileType: "n64",
		},
		{
			ID:       5,
			Name:     "Donkey Kong Country",
			Title:    "Donkey Kong Country",
			Console:  "SNES",
			Genre:    "Plataforma",
			Rating:   4.7,
			Image:    placeholderImage("Donkey Kong Country"),
			ROM:      "https://archive.org/download/snes-roms/DonkeyKongCountry.smc",
			FileType: "snes",
		},
		{
			ID:       6,
			Name:     "Crash Bandicoot",
			Title:    "Crash Bandicoot",
			Console:  "PS1",
			Genre:    "Plataforma",
			Rating:   4.6,
			Image:    placeholderImage("Crash Bandicoot"),
			ROM:      "https://archive.org/download/psx-roms/CrashBandicoot.bin",
			FileType: "psx",
		},
	}

	consoles := []ConsoleInfo{
		{Name: "SNES", Count: 2, Icon: Icon("SNES")},
		{Name: "N64", Count: 2, Icon: Icon("N64")},
		{Name: "PS1", Count: 2, Icon: Icon("PS1")},
	}

	return games, consoles
}

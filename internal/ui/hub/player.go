// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hub

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/retrohub-tui/internal/catalog"
	"github.com/jeranaias/retrohub-tui/internal/rom"
	"github.com/jeranaias/retrohub-tui/internal/ui/styles"
)

// =============================================================================
// SIMULATED PLAYER
// =============================================================================

// playerTickMsg advances the simulated loading sequence.
type playerTickMsg struct{}

const playerTickInterval = 120 * time.Millisecond

// loadStages are the fake emulator boot phases, shown in order as the
// progress bar fills.
var loadStages = []string{
	"Checking ROM...",
	"Loading ROM...",
	"Initializing emulator...",
	"Starting game...",
}

// playerModel is the simulated play overlay. Nothing actually runs; the
// bar fills and the screen announces the game.
type playerModel struct {
	game    catalog.Game
	bar     progress.Model
	percent float64
	done    bool
}

func newPlayer(game catalog.Game) playerModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40
	return playerModel{game: game, bar: bar}
}

func (p playerModel) start() tea.Cmd {
	return tea.Tick(playerTickInterval, func(time.Time) tea.Msg {
		return playerTickMsg{}
	})
}

func (p playerModel) update(playerTickMsg) (playerModel, tea.Cmd) {
	if p.done {
		return p, nil
	}
	p.percent += 0.06
	if p.percent >= 1.0 {
		p.percent = 1.0
		p.done = true
		return p, nil
	}
	return p, p.start()
}

// stage returns the boot phase matching the current progress.
func (p playerModel) stage() string {
	if p.done {
		return "Now playing (simulated)"
	}
	idx := int(p.percent * float64(len(loadStages)))
	if idx >= len(loadStages) {
		idx = len(loadStages) - 1
	}
	return loadStages[idx]
}

func (m Model) viewPlayer() string {
	p := m.player
	var sb strings.Builder

	sb.WriteString(m.theme.OverlayTitle.Render(catalog.Icon(p.game.Console) + " " + p.game.DisplayName()))
	sb.WriteString("\n")
	sb.WriteString(m.theme.GameMeta.Render(p.game.Console + " · " + p.game.Genre))
	sb.WriteString("\n\n")
	sb.WriteString(p.bar.ViewAs(p.percent))
	sb.WriteString("\n\n")

	if p.done {
		sb.WriteString(styles.RenderSuccess(p.stage()))
		if archive, err := rom.ArchiveURL(p.game.Console, p.game.ROM); err == nil && p.game.ROM != "" {
			sb.WriteString("\n")
			sb.WriteString(m.theme.GameMeta.Render("source: " + archive))
		}
	} else {
		sb.WriteString(m.theme.FormHint.Render(p.stage()))
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.theme.FormHint.Render("esc close"))
	return m.theme.OverlayBox.Render(sb.String())
}

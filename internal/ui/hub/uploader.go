// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package hub

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/retrohub-tui/internal/library"
	"github.com/jeranaias/retrohub-tui/internal/ui/styles"
)

// =============================================================================
// ROM UPLOADER PANEL
// =============================================================================

// Uploader field indexes. Console and genre are pickers, not text.
const (
	uploadTitle = iota
	uploadConsole
	uploadGenre
	uploadROM
	uploadDescription
	uploadFieldCount
)

// uploadModel is the admin ROM upload overlay.
type uploadModel struct {
	theme *styles.Theme

	title       textinput.Model
	romRef      textinput.Model
	description textinput.Model

	consoleIdx int
	genreIdx   int
	focus      int

	errMsg string
	notice string
}

func newUpload(theme *styles.Theme) uploadModel {
	title := textinput.New()
	title.Placeholder = "Game title"
	title.CharLimit = 80
	title.Focus()

	romRef := textinput.New()
	romRef.Placeholder = "ROM URL or filename (.zip, .sfc, ...)"
	romRef.CharLimit = 256

	description := textinput.New()
	description.Placeholder = "Description (optional)"
	description.CharLimit = 256

	return uploadModel{
		theme:       theme,
		title:       title,
		romRef:      romRef,
		description: description,
	}
}

func (m Model) updateUpload(key tea.KeyMsg) (Model, tea.Cmd) {
	u := &m.upload

	switch key.String() {
	case "esc":
		m.overlay = overlayNone
		return m, nil
	case "tab", "down":
		u.cycleFocus(1)
		return m, nil
	case "shift+tab", "up":
		u.cycleFocus(-1)
		return m, nil
	case "left":
		u.cyclePicker(-1)
		return m, nil
	case "right":
		u.cyclePicker(1)
		return m, nil
	case "enter":
		entry, err := m.addUpload(library.Entry{
			Title:       u.title.Value(),
			Console:     library.Consoles[u.consoleIdx],
			Genre:       library.Genres[u.genreIdx],
			Description: u.description.Value(),
			ROM:         u.romRef.Value(),
		})
		if err != nil {
			u.errMsg = err.Error()
			u.notice = ""
			return m, nil
		}
		u.errMsg = ""
		u.notice = entry.Title + " added to the library"
		u.title.SetValue("")
		u.romRef.SetValue("")
		u.description.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	switch u.focus {
	case uploadTitle:
		u.title, cmd = u.title.Update(key)
	case uploadROM:
		u.romRef, cmd = u.romRef.Update(key)
	case uploadDescription:
		u.description, cmd = u.description.Update(key)
	}
	return m, cmd
}

func (u *uploadModel) cycleFocus(delta int) {
	u.blurAll()
	u.focus = (u.focus + delta + uploadFieldCount) % uploadFieldCount
	switch u.focus {
	case uploadTitle:
		u.title.Focus()
	case uploadROM:
		u.romRef.Focus()
	case uploadDescription:
		u.description.Focus()
	}
}

func (u *uploadModel) blurAll() {
	u.title.Blur()
	u.romRef.Blur()
	u.description.Blur()
}

// cyclePicker moves the console or genre selection when one of the
// picker rows is focused.
func (u *uploadModel) cyclePicker(delta int) {
	switch u.focus {
	case uploadConsole:
		n := len(library.Consoles)
		u.consoleIdx = (u.consoleIdx + delta + n) % n
	case uploadGenre:
		n := len(library.Genres)
		u.genreIdx = (u.genreIdx + delta + n) % n
	}
}

func (m Model) viewUpload() string {
	u := m.upload
	var sb strings.Builder

	sb.WriteString(m.theme.OverlayTitle.Render("Upload ROM"))
	sb.WriteString("\n")
	sb.WriteString(u.title.View())
	sb.WriteString("\n")
	sb.WriteString(u.pickerRow(uploadConsole, "Console", library.Consoles[u.consoleIdx]))
	sb.WriteString("\n")
	sb.WriteString(u.pickerRow(uploadGenre, "Genre", library.Genres[u.genreIdx]))
	sb.WriteString("\n")
	sb.WriteString(u.romRef.View())
	sb.WriteString("\n")
	sb.WriteString(u.description.View())
	sb.WriteString("\n")

	if u.errMsg != "" {
		sb.WriteString(styles.RenderError(u.errMsg))
		sb.WriteString("\n")
	}
	if u.notice != "" {
		sb.WriteString(styles.RenderSuccess(u.notice))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.theme.FormHint.Render("enter save · tab move · ←/→ pick · esc close"))
	return m.theme.OverlayBox.Render(sb.String())
}

func (u uploadModel) pickerRow(field int, label, value string) string {
	row := u.theme.FormLabel.Render(label+": ") + value
	if u.focus == field {
		return u.theme.RowSelected.Render("< " + row + " >")
	}
	return "  " + row
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// docs_cmd.go - Render the ROM documentation to stdout.
package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/retrohub-tui/internal/rom"
)

// HandleDocs renders the ROM documentation. Piped output gets the raw
// markdown so it stays grep-able.
func HandleDocs(rawArgs []string) error {
	if !ColorEnabled() {
		fmt.Print(rom.DocumentationMarkdown)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(GetTerminalWidth()-2),
	)
	if err != nil {
		fmt.Print(rom.DocumentationMarkdown)
		return nil
	}

	out, err := renderer.Render(rom.DocumentationMarkdown)
	if err != nil {
		fmt.Print(rom.DocumentationMarkdown)
		return nil
	}
	fmt.Print(out)
	return nil
}

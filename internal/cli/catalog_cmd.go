// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// catalog_cmd.go - Print the game catalog without starting the TUI.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jeranaias/retrohub-tui/internal/catalog"
)

// HandleCatalog loads the configured catalog and prints it.
func HandleCatalog(rawArgs []string) error {
	parser := NewArgParser(rawArgs)

	cfg, err := LoadConfig(parser)
	if err != nil {
		return err
	}

	loader := &catalog.Loader{
		Path: cfg.Catalog.Path,
		URL:  cfg.Catalog.URL,
	}
	cat := loader.Load(context.Background())

	if parser.BoolFlag("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cat.Games)
	}

	if cat.Source == catalog.SourceFallback {
		if cat.Err != nil {
			fmt.Fprintf(os.Stderr, "catalog source unavailable (%v); showing built-in games\n", cat.Err)
		} else {
			fmt.Fprintln(os.Stderr, "no catalog source configured; showing built-in games")
		}
	}

	for _, c := range cat.Consoles {
		fmt.Printf("%s %s (%d)\n", c.Icon, c.Name, c.Count)
		for _, g := range cat.GamesForConsole(c.Name) {
			fmt.Printf("  %-36s %-12s %.1f\n", g.DisplayName(), g.Genre, g.Rating)
		}
	}
	return nil
}

// retrohub TUI - a retro game catalog for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/retrohub-tui/internal/catalog"
	"github.com/jeranaias/retrohub-tui/internal/cli"
	"github.com/jeranaias/retrohub-tui/internal/library"
	"github.com/jeranaias/retrohub-tui/internal/ui"
	"github.com/jeranaias/retrohub-tui/internal/ui/hub"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdUsers:
		exitOnError(cli.HandleUsers(args))
	case cli.CmdCatalog:
		exitOnError(cli.HandleCatalog(args))
	case cli.CmdDocs:
		exitOnError(cli.HandleDocs(args))
	case cli.CmdConfig:
		exitOnError(cli.HandleConfig(args))
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(args []string) {
	if !cli.IsTTY() {
		fmt.Fprintln(os.Stderr, "retrohub needs an interactive terminal; see `retrohub help` for headless commands")
		os.Exit(1)
	}

	parser := cli.NewArgParser(args)
	cfg, err := cli.LoadConfig(parser)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, kv, err := cli.OpenStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	lib := library.New(kv)
	loader := &catalog.Loader{
		Path: cfg.Catalog.Path,
		URL:  cfg.Catalog.URL,
	}

	app := ui.NewApp(store, lib, loader)
	program := tea.NewProgram(app, tea.WithAltScreen())

	// A file-backed catalog can hot-reload while the TUI runs.
	if cfg.Catalog.Watch && cfg.Catalog.Path != "" {
		watcher, err := catalog.NewWatcher(loader, func(cat catalog.Catalog) {
			program.Send(hub.CatalogMsg{Catalog: cat})
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: catalog watch disabled: %v\n", err)
		} else if err := watcher.Watch(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: catalog watch disabled: %v\n", err)
			watcher.Close()
		} else {
			defer watcher.Close()
		}
	}

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration inspection commands.
package cli

import (
	"fmt"

	"github.com/jeranaias/retrohub-tui/internal/config"
)

// HandleConfig routes `retrohub config <subcommand>`.
func HandleConfig(rawArgs []string) error {
	parser := NewArgParser(rawArgs)

	switch parser.Subcommand() {
	case "", "show":
		cfg, err := LoadConfig(parser)
		if err != nil {
			return err
		}
		fmt.Printf("version:          %s\n", cfg.Version)
		fmt.Printf("admin email:      %s\n", cfg.Admin.Email)
		fmt.Printf("admin password:   (set, %d chars)\n", len(cfg.Admin.Password))
		fmt.Printf("session ttl:      %dh\n", cfg.Session.TTLHours)
		fmt.Printf("storage backend:  %s\n", cfg.Storage.Backend)
		fmt.Printf("data dir:         %s\n", cfg.Storage.DataDir)
		fmt.Printf("catalog path:     %s\n", orNone(cfg.Catalog.Path))
		fmt.Printf("catalog url:      %s\n", orNone(cfg.Catalog.URL))
		fmt.Printf("catalog watch:    %t\n", cfg.Catalog.Watch)
		fmt.Printf("theme:            %s\n", cfg.UI.Theme)
		return nil

	case "path":
		path, err := config.ConfigPathTOML()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil

	case "init":
		cfg, err := LoadConfig(parser)
		if err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		path, _ := config.ConfigPathTOML()
		fmt.Printf("wrote %s\n", path)
		return nil

	default:
		return fmt.Errorf("unknown config subcommand: %s", parser.Subcommand())
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// helpers.go - Shared wiring for CLI command handlers.
package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/jeranaias/retrohub-tui/internal/access"
	"github.com/jeranaias/retrohub-tui/internal/config"
	"github.com/jeranaias/retrohub-tui/internal/storage"
)

// LoadConfig resolves the configuration for a command, honoring an
// explicit --config flag.
func LoadConfig(parser *ArgParser) (*config.Config, error) {
	if path := parser.Flag("config"); path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

// OpenKV builds the storage backend named by the configuration.
func OpenKV(cfg *config.Config) (storage.KV, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		return storage.NewSQLiteStore(filepath.Join(cfg.Storage.DataDir, "retrohub.db"))
	case "file":
		return storage.NewFileStoreWithDir(cfg.Storage.DataDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// OpenStore builds the access store on top of the configured backend.
// The admin password is hashed once here; plaintext never leaves the
// config struct.
func OpenStore(cfg *config.Config) (*access.Store, storage.KV, error) {
	kv, err := OpenKV(cfg)
	if err != nil {
		return nil, nil, err
	}

	hash, err := access.HashPassword(cfg.Admin.Password)
	if err != nil {
		kv.Close()
		return nil, nil, fmt.Errorf("hash admin password: %w", err)
	}

	var events *access.EventLog
	if cfg.Storage.EventLog {
		events = access.NewEventLog(filepath.Join(cfg.Storage.DataDir, "events.log"))
	}

	store := access.New(kv, access.Config{
		AdminEmail:        cfg.Admin.Email,
		AdminName:         cfg.Admin.Name,
		AdminPasswordHash: hash,
		SessionTTL:        time.Duration(cfg.Session.TTLHours) * time.Hour,
		Events:            events,
	})
	return store, kv, nil
}

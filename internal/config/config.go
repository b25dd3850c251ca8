// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management
// for retrohub.
//
// Supports both TOML and JSON configuration formats, with sensible
// defaults, environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.retrohub/config.toml
//   - ~/.retrohub/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/retrohub-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete retrohub configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Admin is the built-in administrator credential.
	Admin AdminConfig `toml:"admin" json:"admin"`

	// Session controls session issuance.
	Session SessionConfig `toml:"session" json:"session"`

	// Storage selects and locates the persistence backend.
	Storage StorageConfig `toml:"storage" json:"storage"`

	// Catalog locates the game catalog source.
	Catalog CatalogConfig `toml:"catalog" json:"catalog"`

	// UI configuration.
	UI UIConfig `toml:"ui" json:"ui"`
}

// AdminConfig identifies the single built-in administrator. The
// password is stored here in plaintext and bcrypt-hashed once at
// startup; member accounts have no credential at all, so this file is
// convenience, not security.
type AdminConfig struct {
	Email    string `toml:"email" json:"email"`
	Name     string `toml:"name" json:"name"`
	Password string `toml:"password" json:"password"`
}

// SessionConfig contains session settings.
type SessionConfig struct {
	// TTLHours is the session lifetime in hours.
	TTLHours int `toml:"ttl_hours" json:"ttl_hours"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	// Backend is "file" or "sqlite".
	Backend string `toml:"backend" json:"backend"`
	// DataDir overrides the default data directory (~/.retrohub/data).
	DataDir string `toml:"data_dir" json:"data_dir"`
	// EventLog enables the access event log.
	EventLog bool `toml:"event_log" json:"event_log"`
}

// CatalogConfig locates the games catalog.
type CatalogConfig struct {
	// Path is a local games.json file. Takes precedence over URL.
	Path string `toml:"path" json:"path"`
	// URL is a remote games.json endpoint.
	URL string `toml:"url" json:"url"`
	// Watch reloads a file-backed catalog on change.
	Watch bool `toml:"watch" json:"watch"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Theme is "dark" or "light".
	Theme string `toml:"theme" json:"theme"`
	// CompactMode reduces padding in lists.
	CompactMode bool `toml:"compact_mode" json:"compact_mode"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// CurrentVersion is the config schema version.
const CurrentVersion = "1.0"

// Default returns a config with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills any unset field with its default value.
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = CurrentVersion
	}
	if c.Admin.Email == "" {
		c.Admin.Email = "jadsonreserva98@gmail.com"
	}
	if c.Admin.Name == "" {
		c.Admin.Name = "Jadson Silva"
	}
	if c.Admin.Password == "" {
		c.Admin.Password = "admin9809"
	}
	if c.Session.TTLHours == 0 {
		c.Session.TTLHours = 24
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = "file"
	}
	if c.Storage.DataDir == "" {
		if dir, err := ConfigDir(); err == nil {
			c.Storage.DataDir = filepath.Join(dir, "data")
		}
	}
	if c.UI.Theme == "" {
		c.UI.Theme = "dark"
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the retrohub configuration directory (~/.retrohub).
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".retrohub"), nil
}

// ConfigPathTOML returns the TOML config file path.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the JSON config file path.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the configuration, trying TOML first, then JSON, then
// falling back to defaults. Environment overrides apply last.
func Load() (*Config, error) {
	cfg := &Config{}

	if path, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := loadTOML(cfg, path); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
			cfg.SetDefaults()
			cfg.ApplyEnvOverrides()
			return cfg, cfg.Validate()
		}
	}

	if path, err := ConfigPathJSON(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := loadJSON(cfg, path); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
			cfg.SetDefaults()
			cfg.ApplyEnvOverrides()
			return cfg, cfg.Validate()
		}
	}

	cfg.SetDefaults()
	cfg.ApplyEnvOverrides()
	return cfg, cfg.Validate()
}

// LoadFromPath reads the configuration from an explicit file; the
// format is chosen by extension.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}
	var err error
	if strings.HasSuffix(path, ".json") {
		err = loadJSON(cfg, path)
	} else {
		err = loadTOML(cfg, path)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	cfg.SetDefaults()
	cfg.ApplyEnvOverrides()
	return cfg, cfg.Validate()
}

func loadTOML(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

func loadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, cfg)
}

// Save writes the configuration as TOML to the default path.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration as TOML to the given path. The
// file holds the admin credential, so it is written 0600.
func SaveTOML(cfg *Config, path string) error {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return util.AtomicWriteFileWithDir(path, []byte(sb.String()), 0600, 0700)
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies RETROHUB_* environment variables on top of
// the loaded configuration.
func (c *Config) ApplyEnvOverrides() {
	if email := os.Getenv("RETROHUB_ADMIN_EMAIL"); email != "" {
		c.Admin.Email = email
	}
	if name := os.Getenv("RETROHUB_ADMIN_NAME"); name != "" {
		c.Admin.Name = name
	}
	if password := os.Getenv("RETROHUB_ADMIN_PASSWORD"); password != "" {
		c.Admin.Password = password
	}
	if backend := os.Getenv("RETROHUB_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if dir := os.Getenv("RETROHUB_DATA_DIR"); dir != "" {
		c.Storage.DataDir = dir
	}
	if path := os.Getenv("RETROHUB_CATALOG_PATH"); path != "" {
		c.Catalog.Path = path
	}
	if url := os.Getenv("RETROHUB_CATALOG_URL"); url != "" {
		c.Catalog.URL = url
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Storage.Backend != "file" && c.Storage.Backend != "sqlite" {
		return fmt.Errorf("invalid storage backend %q (must be \"file\" or \"sqlite\")", c.Storage.Backend)
	}
	if c.Session.TTLHours < 0 {
		return fmt.Errorf("session ttl_hours must not be negative")
	}
	if c.UI.Theme != "dark" && c.UI.Theme != "light" {
		return fmt.Errorf("invalid theme %q (must be \"dark\" or \"light\")", c.UI.Theme)
	}
	if c.Admin.Email == "" || c.Admin.Password == "" {
		return fmt.Errorf("admin email and password must be set")
	}
	return nil
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalMu     sync.RWMutex
	globalConfig *Config
)

// Global returns the process-wide configuration, loading it on first
// access. Safe for concurrent use.
func Global() *Config {
	globalMu.RLock()
	if globalConfig != nil {
		defer globalMu.RUnlock()
		return globalConfig
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
		}
		globalConfig = cfg
	}
	return globalConfig
}

// SetGlobal replaces the process-wide configuration.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg
}

// ReloadGlobal re-reads the configuration from disk.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	SetGlobal(cfg)
	return nil
}

// ResetGlobalForTesting clears the global config so tests start fresh.
func ResetGlobalForTesting() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = nil
}

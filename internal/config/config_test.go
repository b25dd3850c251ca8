// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, 24, cfg.Session.TTLHours)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.NotEmpty(t, cfg.Admin.Email)
	assert.NotEmpty(t, cfg.Admin.Password)
	assert.NoError(t, cfg.Validate())
}

func TestSetDefaults_PreservesExistingValues(t *testing.T) {
	cfg := &Config{}
	cfg.Admin.Email = "ops@example.com"
	cfg.Session.TTLHours = 8
	cfg.Storage.Backend = "sqlite"
	cfg.SetDefaults()

	assert.Equal(t, "ops@example.com", cfg.Admin.Email)
	assert.Equal(t, 8, cfg.Session.TTLHours)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	// Unset fields still get filled.
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.NotEmpty(t, cfg.Admin.Password)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"sqlite backend", func(c *Config) { c.Storage.Backend = "sqlite" }, false},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "redis" }, true},
		{"negative ttl", func(c *Config) { c.Session.TTLHours = -1 }, true},
		{"unknown theme", func(c *Config) { c.UI.Theme = "solarized" }, true},
		{"light theme", func(c *Config) { c.UI.Theme = "light" }, false},
		{"empty admin email", func(c *Config) { c.Admin.Email = "" }, true},
		{"empty admin password", func(c *Config) { c.Admin.Password = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveLoadRoundTrip_TOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := Default()
	cfg.Admin.Email = "keeper@example.com"
	cfg.Storage.Backend = "sqlite"
	cfg.Catalog.Path = "/srv/games.json"
	cfg.Catalog.Watch = true
	require.NoError(t, SaveTOML(cfg, path))

	// Config holds a credential; it must not be world-readable.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "keeper@example.com", loaded.Admin.Email)
	assert.Equal(t, "sqlite", loaded.Storage.Backend)
	assert.Equal(t, "/srv/games.json", loaded.Catalog.Path)
	assert.True(t, loaded.Catalog.Watch)
}

func TestLoadFromPath_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	data := `{"admin":{"email":"a@b.co","password":"pw"},"storage":{"backend":"sqlite"}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", cfg.Admin.Email)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	// Defaults fill the rest.
	assert.Equal(t, 24, cfg.Session.TTLHours)
}

func TestLoadFromPath_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("admin = not valid"), 0600))

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("RETROHUB_ADMIN_EMAIL", "env@example.com")
	t.Setenv("RETROHUB_STORAGE_BACKEND", "sqlite")
	t.Setenv("RETROHUB_CATALOG_URL", "https://example.com/games.json")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "env@example.com", cfg.Admin.Email)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "https://example.com/games.json", cfg.Catalog.URL)
	// Untouched fields keep their values.
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestGlobal_ConcurrentAccess(t *testing.T) {
	ResetGlobalForTesting()
	t.Cleanup(ResetGlobalForTesting)
	SetGlobal(Default())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = Global().Storage.Backend
		}()
		go func() {
			defer wg.Done()
			cfg := Default()
			cfg.UI.CompactMode = true
			SetGlobal(cfg)
		}()
	}
	wg.Wait()

	assert.NotNil(t, Global())
}

func TestSetGlobal_ReplacesConfig(t *testing.T) {
	ResetGlobalForTesting()
	t.Cleanup(ResetGlobalForTesting)

	cfg := Default()
	cfg.Admin.Name = "Replacement"
	SetGlobal(cfg)

	assert.Equal(t, "Replacement", Global().Admin.Name)
}

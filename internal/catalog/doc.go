// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package catalog loads the retro-game catalog.
//
// The catalog is a JSON document mapping console name to a list of games.
// It can come from a local file or a remote URL; any failure along the
// way (missing source, non-JSON response, parse error) falls back to a
// fixed built-in game list, so the rest of the application never sees a
// load error. Catalog loading is independent of login state.
package catalog

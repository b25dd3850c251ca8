// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides local key-value persistence for retrohub.
//
// All durable application state (session, user sets, uploaded ROM entries)
// goes through the KV port. Two production backends are provided: a
// one-file-per-key JSON directory store and a single-table SQLite store.
// A memory store backs tests.
package storage

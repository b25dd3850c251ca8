// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the retrohub application.
//
// It contains small, dependency-light helpers shared across packages:
// atomic file writes for crash-safe persistence and rune/width-aware
// string handling for terminal rendering.
package util

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package rom provides ROM file helpers: format validation, metadata
// extraction from filenames, region detection, and Internet Archive
// collection URL construction.
package rom

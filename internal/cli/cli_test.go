// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"
)

func TestArgParser_Subcommand(t *testing.T) {
	parser := NewArgParser([]string{"list", "--json"})
	if got := parser.Subcommand(); got != "list" {
		t.Errorf("Subcommand() = %q, want %q", got, "list")
	}
}

func TestArgParser_FlagFormats(t *testing.T) {
	parser := NewArgParser([]string{"show", "--limit", "50", "--since=2025-01-01", "--json"})

	if got := parser.Flag("limit"); got != "50" {
		t.Errorf("Flag(limit) = %q", got)
	}
	if got := parser.Flag("since"); got != "2025-01-01" {
		t.Errorf("Flag(since) = %q", got)
	}
	if !parser.BoolFlag("json") {
		t.Error("BoolFlag(json) = false, want true")
	}
	if parser.BoolFlag("missing") {
		t.Error("BoolFlag(missing) = true, want false")
	}
}

func TestArgParser_ExplicitBoolValue(t *testing.T) {
	parser := NewArgParser([]string{"--json=false", "--watch=true"})

	if parser.BoolFlag("json") {
		t.Error("--json=false should parse as false")
	}
	if !parser.BoolFlag("watch") {
		t.Error("--watch=true should parse as true")
	}
}

func TestArgParser_Positional(t *testing.T) {
	parser := NewArgParser([]string{"approve", "user-123", "--config", "/tmp/c.toml"})

	if got := parser.Positional(0); got != "approve" {
		t.Errorf("Positional(0) = %q", got)
	}
	if got := parser.Positional(1); got != "user-123" {
		t.Errorf("Positional(1) = %q", got)
	}
	if got := parser.Positional(9); got != "" {
		t.Errorf("Positional(9) = %q, want empty", got)
	}
	if got := parser.Flag("config"); got != "/tmp/c.toml" {
		t.Errorf("Flag(config) = %q", got)
	}
}

func TestArgParser_FlagIntOrDefault(t *testing.T) {
	parser := NewArgParser([]string{"--limit", "25", "--bad", "x"})

	if got := parser.FlagIntOrDefault("limit", 10); got != 25 {
		t.Errorf("FlagIntOrDefault(limit) = %d", got)
	}
	if got := parser.FlagIntOrDefault("bad", 10); got != 10 {
		t.Errorf("FlagIntOrDefault(bad) = %d, want default", got)
	}
	if got := parser.FlagIntOrDefault("missing", 7); got != 7 {
		t.Errorf("FlagIntOrDefault(missing) = %d, want default", got)
	}
}

func TestArgParser_HasFlag(t *testing.T) {
	parser := NewArgParser([]string{"--json", "--limit", "5"})

	if !parser.HasFlag("json") {
		t.Error("HasFlag(json) = false")
	}
	if !parser.HasFlag("--limit") {
		t.Error("HasFlag(--limit) = false")
	}
	if parser.HasFlag("other") {
		t.Error("HasFlag(other) = true")
	}
}

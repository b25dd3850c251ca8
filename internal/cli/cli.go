// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command routing for retrohub.
package cli

import (
	"fmt"
	"os"
	"runtime"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdUsers
	CmdCatalog
	CmdDocs
	CmdConfig
	CmdVersion
	CmdHelp
)

const usageText = `retrohub - retro game catalog for the terminal

Usage:
  retrohub                     Start the TUI (default)
  retrohub users [subcommand]  Account management (list, approve, reject)
  retrohub catalog             Show the loaded game catalog
  retrohub docs                Show the ROM documentation
  retrohub config [show|path]  Configuration
  retrohub version             Show version information
  retrohub help                Show this help

Users subcommands:
  retrohub users list                List pending and approved accounts
  retrohub users approve <user-id>   Approve a pending account
  retrohub users reject <user-id>    Reject a pending account

Flags:
  --json          Machine-readable output where supported
  --config PATH   Use an explicit config file

Environment:
  RETROHUB_ADMIN_EMAIL, RETROHUB_ADMIN_PASSWORD, RETROHUB_ADMIN_NAME
  RETROHUB_STORAGE_BACKEND (file|sqlite), RETROHUB_DATA_DIR
  RETROHUB_CATALOG_PATH, RETROHUB_CATALOG_URL
`

// Parse inspects os.Args and returns the command plus its remaining
// arguments.
func Parse() (Command, []string) {
	args := os.Args[1:]
	if len(args) == 0 {
		return CmdTUI, nil
	}

	switch args[0] {
	case "users", "user":
		return CmdUsers, args[1:]
	case "catalog", "games":
		return CmdCatalog, args[1:]
	case "docs", "doc":
		return CmdDocs, args[1:]
	case "config":
		return CmdConfig, args[1:]
	case "version", "-v", "--version":
		return CmdVersion, args[1:]
	case "help", "-h", "--help":
		return CmdHelp, args[1:]
	default:
		// Unknown leading flag still starts the TUI; unknown word is an
		// error surfaced through help.
		if args[0][0] == '-' {
			return CmdTUI, args
		}
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		return CmdHelp, args
	}
}

// HandleHelp prints usage.
func HandleHelp() {
	fmt.Print(usageText)
}

// HandleVersion prints build information.
func HandleVersion() {
	fmt.Printf("retrohub %s\n", Version)
	fmt.Printf("  commit:  %s\n", GitCommit)
	fmt.Printf("  built:   %s\n", BuildDate)
	fmt.Printf("  runtime: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

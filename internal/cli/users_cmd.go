// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// users_cmd.go - Account management from the command line.
//
// `retrohub users` gives the admin a headless way to run approvals,
// useful when the catalog box is reached over ssh without a full TUI
// session.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jeranaias/retrohub-tui/internal/access"
)

// HandleUsers routes `retrohub users <subcommand>`.
func HandleUsers(rawArgs []string) error {
	parser := NewArgParser(rawArgs)

	cfg, err := LoadConfig(parser)
	if err != nil {
		return err
	}
	store, kv, err := OpenStore(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	report := store.RestoreSession()
	for _, key := range report.CorruptKeys {
		fmt.Fprintf(os.Stderr, "warning: corrupt data under %q ignored\n", key)
	}

	switch parser.Subcommand() {
	case "", "list":
		return listUsers(store, parser.BoolFlag("json"))
	case "approve":
		return approveUser(store, parser.Positional(1))
	case "reject":
		return rejectUser(store, parser.Positional(1))
	default:
		return fmt.Errorf("unknown users subcommand: %s", parser.Subcommand())
	}
}

func listUsers(store *access.Store, asJSON bool) error {
	pending := store.PendingUsers()
	approved := store.ApprovedUsers()

	if asJSON {
		out := struct {
			Pending  []access.User `json:"pending"`
			Approved []access.User `json:"approved"`
		}{pending, approved}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Pending (%d):\n", len(pending))
	for _, u := range pending {
		fmt.Printf("  %s  %s <%s>\n", u.ID, u.Name, u.Email)
	}
	fmt.Printf("Approved (%d):\n", len(approved))
	for _, u := range approved {
		fmt.Printf("  %s  %s <%s>\n", u.ID, u.Name, u.Email)
	}
	return nil
}

func approveUser(store *access.Store, id string) error {
	if id == "" {
		return fmt.Errorf("usage: retrohub users approve <user-id>")
	}
	if err := store.ApproveUser(id); err != nil {
		return err
	}
	fmt.Printf("approved %s\n", id)
	return nil
}

func rejectUser(store *access.Store, id string) error {
	if id == "" {
		return fmt.Errorf("usage: retrohub users reject <user-id>")
	}
	if err := store.RejectUser(id); err != nil {
		return err
	}
	fmt.Printf("rejected %s\n", id)
	return nil
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"shorter than max", "mario", 10, "mario"},
		{"exactly max", "mario", 5, "mario"},
		{"truncated with ellipsis", "super metroid", 8, "super..."},
		{"max at three", "zelda", 3, "zel"},
		{"zero max", "zelda", 0, ""},
		{"multibyte safe", "ação e aventura", 6, "açã..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateRunes(tt.input, tt.maxRunes)
			if got != tt.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.input, tt.maxRunes, got, tt.want)
			}
		})
	}
}

func TestTruncateWidth(t *testing.T) {
	// Double-width characters must count as 2 columns.
	got := TruncateWidth("ゼルダの伝説", 8)
	if StringWidth(got) > 8 {
		t.Errorf("TruncateWidth produced width %d, want <= 8", StringWidth(got))
	}

	if got := TruncateWidth("metroid", 20); got != "metroid" {
		t.Errorf("TruncateWidth should not alter short strings, got %q", got)
	}

	if got := TruncateWidth("metroid", 0); got != "" {
		t.Errorf("TruncateWidth with zero width = %q, want empty", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("snes", 8); got != "snes    " {
		t.Errorf("PadRight = %q, want %q", got, "snes    ")
	}
	if got := PadRight("playstation", 4); got != "playstation" {
		t.Errorf("PadRight should not truncate, got %q", got)
	}
}

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "data.json")

	if err := AtomicWriteFile(path, []byte(`{"ok":true}`), 0644); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != `{"ok":true}` {
		t.Errorf("file content = %q", data)
	}

	// Overwrite must fully replace the previous content.
	if err := AtomicWriteFile(path, []byte("v2"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile() overwrite error = %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "v2" {
		t.Errorf("file content after overwrite = %q, want %q", data, "v2")
	}

	// No temp files may remain after a successful write.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the target file, found %d entries", len(entries))
	}
}

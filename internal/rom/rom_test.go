// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package rom

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		wantErr  bool
	}{
		{"valid snes rom", "Chrono Trigger (USA).sfc", 4 * 1024 * 1024, false},
		{"valid n64 rom", "mario64.z64", 8 * 1024 * 1024, false},
		{"uppercase extension", "GAME.SMC", 512 * 1024, false},
		{"unsupported format", "game.gba", 4 * 1024 * 1024, true},
		{"no extension", "game", 4 * 1024 * 1024, true},
		{"empty file", "game.sfc", 0, true},
		{"too small", "game.sfc", 16 * 1024, true},
		{"exactly minimum", "game.sfc", MinSize, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.filename, tt.size)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q, %d) error = %v, wantErr %v", tt.filename, tt.size, err, tt.wantErr)
			}
		})
	}
}

func TestExtractMetadata(t *testing.T) {
	tests := []struct {
		filename string
		console  string
		romName  string
		region   string
	}{
		{"Chrono Trigger (USA).sfc", "SNES", "Chrono Trigger (USA)", "NTSC-U"},
		{"Super Mario 64 (EUROPE).v64", "N64", "Super Mario 64 (EUROPE)", "PAL"},
		{"Final Fantasy VII (Japan) (Disc 1).bin", "PS1", "Final Fantasy VII (Japan) (Disc 1)", "NTSC-J"},
		{"halo.xex", "Xbox 360", "halo", "Unknown"},
		{"mystery.dat", "Unknown", "mystery", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			meta := ExtractMetadata(tt.filename, 1024)
			if meta.Console != tt.console {
				t.Errorf("Console = %q, want %q", meta.Console, tt.console)
			}
			if meta.Name != tt.romName {
				t.Errorf("Name = %q, want %q", meta.Name, tt.romName)
			}
			if meta.Region != tt.region {
				t.Errorf("Region = %q, want %q", meta.Region, tt.region)
			}
			if meta.Size != 1024 {
				t.Errorf("Size = %d, want 1024", meta.Size)
			}
		})
	}
}

func TestDetectRegion_TagVariants(t *testing.T) {
	tests := []struct {
		filename string
		region   string
	}{
		{"game (US).sfc", "NTSC-U"},
		{"game (usa).sfc", "NTSC-U"},
		{"game (EUR).z64", "PAL"},
		{"game (JPN).bin", "NTSC-J"},
		{"game (World).sfc", "Unknown"},
	}

	for _, tt := range tests {
		if got := DetectRegion(tt.filename); got != tt.region {
			t.Errorf("DetectRegion(%q) = %q, want %q", tt.filename, got, tt.region)
		}
	}
}

func TestArchiveURL(t *testing.T) {
	got, err := ArchiveURL("SNES", "Chrono Trigger (USA).zip")
	if err != nil {
		t.Fatalf("ArchiveURL() error = %v", err)
	}
	if !strings.HasPrefix(got, "https://archive.org/download/No-Intro-Collection_2016-01-03_Fixed/") {
		t.Errorf("unexpected prefix: %s", got)
	}
	if strings.Contains(got, " ") {
		t.Errorf("ROM name must be URL-encoded: %s", got)
	}

	if _, err := ArchiveURL("Dreamcast", "Sonic Adventure.gdi"); err == nil {
		t.Error("unknown console should return an error")
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported("game.iso") {
		t.Error("iso should be supported")
	}
	if IsSupported("game.gba") {
		t.Error("gba should not be supported")
	}
}

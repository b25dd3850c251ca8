// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package rom

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// =============================================================================
// FORMATS
// =============================================================================

// MinSize is the minimum plausible ROM size; most real ROMs are at
// least 32 KiB, so anything smaller is treated as a bad download.
const MinSize = 32 * 1024

// extensionConsoles maps supported ROM extensions to console names.
var extensionConsoles = map[string]string{
	".smc": "SNES",
	".sfc": "SNES",
	".z64": "N64",
	".n64": "N64",
	".v64": "N64",
	// Disc formats overlap between PS1 and PS2; without reading the
	// image header PS1 is the assumption.
	".bin": "PS1",
	".cue": "PS1",
	".iso": "PS1",
	".xex": "Xbox 360",
}

// SupportedExtensions returns the set of recognized ROM extensions.
func SupportedExtensions() []string {
	out := make([]string, 0, len(extensionConsoles))
	for ext := range extensionConsoles {
		out = append(out, ext)
	}
	return out
}

// IsSupported reports whether the filename has a recognized ROM
// extension.
func IsSupported(filename string) bool {
	_, ok := extensionConsoles[normalizeExt(filename)]
	return ok
}

// Validate checks a ROM's filename and size. It returns an error for
// unsupported formats, empty files, and implausibly small files.
func Validate(filename string, size int64) error {
	ext := normalizeExt(filename)
	if _, ok := extensionConsoles[ext]; !ok {
		return fmt.Errorf("unsupported ROM format: %s", ext)
	}
	if size == 0 {
		return fmt.Errorf("ROM file is empty")
	}
	if size < MinSize {
		return fmt.Errorf("ROM file appears to be too small (%d bytes)", size)
	}
	return nil
}

// =============================================================================
// METADATA
// =============================================================================

// Metadata describes a ROM file, derived from its filename and size.
type Metadata struct {
	Name    string
	Console string
	Size    int64
	Region  string
}

// ExtractMetadata derives ROM metadata from a filename and size. The
// console comes from the extension, the region from release-name tags
// like "(USA)" in the filename.
func ExtractMetadata(filename string, size int64) Metadata {
	console, ok := extensionConsoles[normalizeExt(filename)]
	if !ok {
		console = "Unknown"
	}

	base := filepath.Base(filename)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	return Metadata{
		Name:    name,
		Console: console,
		Size:    size,
		Region:  DetectRegion(filename),
	}
}

// DetectRegion infers the video region from release tags in the
// filename: NTSC-U, PAL, NTSC-J, or "Unknown".
func DetectRegion(filename string) string {
	upper := strings.ToUpper(filename)
	switch {
	case strings.Contains(upper, "(USA)") || strings.Contains(upper, "(US)"):
		return "NTSC-U"
	case strings.Contains(upper, "(EUROPE)") || strings.Contains(upper, "(EUR)"):
		return "PAL"
	case strings.Contains(upper, "(JAPAN)") || strings.Contains(upper, "(JPN)"):
		return "NTSC-J"
	default:
		return "Unknown"
	}
}

func normalizeExt(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// =============================================================================
// ARCHIVE URLS
// =============================================================================

const archiveBaseURL = "https://archive.org/download/"

// archiveCollections maps console names to Internet Archive collection
// paths holding preserved ROM sets.
var archiveCollections = map[string]string{
	"SNES":     "No-Intro-Collection_2016-01-03_Fixed/Nintendo%20-%20Super%20Nintendo%20Entertainment%20System/",
	"N64":      "No-Intro-Collection_2016-01-03_Fixed/Nintendo%20-%20Nintendo%2064/",
	"PS1":      "No-Intro-Collection_2016-01-03_Fixed/Sony%20-%20PlayStation/",
	"PS2":      "chd_psx2/",
	"Xbox 360": "RGH_Xbox_360_Games/",
}

// ArchiveURL builds the Internet Archive download URL for a ROM in the
// console's collection. The ROM name is URL-encoded.
func ArchiveURL(console, romName string) (string, error) {
	collection, ok := archiveCollections[console]
	if !ok {
		return "", fmt.Errorf("no archive collection found for console: %s", console)
	}
	return archiveBaseURL + collection + url.QueryEscape(romName), nil
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package rom

// DocumentationMarkdown is the ROM documentation shown by the docs
// screen and the `retrohub docs` command, rendered with glamour.
const DocumentationMarkdown = `# ROM Documentation

## Supported Formats

| Console  | Extensions          | Notes                                  |
|----------|---------------------|----------------------------------------|
| SNES     | .smc, .sfc          | Headered and headerless images         |
| N64      | .z64, .n64, .v64    | Byte order varies by dump tool         |
| PS1      | .bin, .cue, .iso    | Disc images; .cue describes the tracks |
| PS2      | .iso                | Shares .iso with PS1                   |
| Xbox 360 | .xex                | Executable container                   |

Files smaller than 32 KiB are rejected: no real ROM is that small, so a
tiny file almost always means a failed or truncated download.

## Regions

The region is read from release-name tags in the filename:

- ` + "`(USA)` / `(US)`" + ` — NTSC-U
- ` + "`(EUROPE)` / `(EUR)`" + ` — PAL
- ` + "`(JAPAN)` / `(JPN)`" + ` — NTSC-J

Untagged files report an unknown region.

## ROM Sources

**Internet Archive** hosts verified preservation collections:

- SNES: ` + "`No-Intro-Collection_2016-01-03_Fixed/Nintendo - Super Nintendo Entertainment System/`" + `
- N64: ` + "`No-Intro-Collection_2016-01-03_Fixed/Nintendo - Nintendo 64/`" + `
- PS1: ` + "`No-Intro-Collection_2016-01-03_Fixed/Sony - PlayStation/`" + `

Example downloads:

- ` + "`Chrono Trigger (USA).zip`" + ` (SNES)
- ` + "`Super Mario 64 (USA).z64`" + ` (N64)
- ` + "`Final Fantasy VII (USA).bin`" + ` (PS1)

## Legal Note

Only download ROMs for games you legally own. Preservation collections
exist for archival purposes; local law governs what you may keep.
`

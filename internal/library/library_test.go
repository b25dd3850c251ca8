// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package library

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/retrohub-tui/internal/storage"
)

func newTestLibrary() (*Library, *storage.MemoryStore) {
	kv := storage.NewMemoryStore()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	id := 0
	lib := NewWithClock(kv,
		func() string { id++; return "rom-" + strconv.Itoa(id) },
		func() time.Time { return now })
	return lib, kv
}

func TestAdd_CompletesEntry(t *testing.T) {
	lib, _ := newTestLibrary()

	entry, err := lib.Add(Entry{
		Title:   "Chrono Trigger",
		Console: "SNES",
		Genre:   "RPG",
		ROM:     "https://archive.org/download/snes/ChronoTrigger.zip",
	}, "admin")
	require.NoError(t, err)

	assert.Equal(t, "rom-1", entry.ID)
	assert.Equal(t, "snes", entry.FileType)
	assert.Equal(t, "admin", entry.Uploader)
	assert.Equal(t, 4.0, entry.Rating)
	assert.Contains(t, entry.Image, "Chrono+Trigger")
	assert.False(t, entry.UploadDate.IsZero())

	entries, err := lib.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])
}

func TestAdd_Validation(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		field string
	}{
		{"missing title", Entry{Console: "SNES", Genre: "RPG", ROM: "a.zip"}, "title"},
		{"missing console", Entry{Title: "T", Genre: "RPG", ROM: "a.zip"}, "console"},
		{"missing genre", Entry{Title: "T", Console: "SNES", ROM: "a.zip"}, "genre"},
		{"missing rom", Entry{Title: "T", Console: "SNES", Genre: "RPG"}, "rom"},
		{"bad rom extension", Entry{Title: "T", Console: "SNES", Genre: "RPG", ROM: "a.exe"}, "rom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib, _ := newTestLibrary()
			_, err := lib.Add(tt.entry, "admin")
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)

			entries, err := lib.List()
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestAdd_AcceptsFileRefs(t *testing.T) {
	lib, _ := newTestLibrary()

	for _, ref := range []string{"uploaded/game.sfc", "game.zip", "disc.chd"} {
		_, err := lib.Add(Entry{Title: "T", Console: "NES", Genre: "Ação", ROM: ref}, "admin")
		assert.NoError(t, err, "ref %q", ref)
	}
}

func TestAdd_AppendsToExistingList(t *testing.T) {
	lib, _ := newTestLibrary()

	_, err := lib.Add(Entry{Title: "A", Console: "SNES", Genre: "RPG", ROM: "a.zip"}, "admin")
	require.NoError(t, err)
	_, err = lib.Add(Entry{Title: "B", Console: "N64", Genre: "Aventura", ROM: "b.zip"}, "admin")
	require.NoError(t, err)

	entries, err := lib.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "A", entries[0].Title)
	assert.Equal(t, "B", entries[1].Title)
}

func TestList_CorruptDataReturnsError(t *testing.T) {
	lib, kv := newTestLibrary()

	require.NoError(t, kv.Set(KeyUploadedRoms, []byte("{broken")))
	_, err := lib.List()
	assert.Error(t, err)
}

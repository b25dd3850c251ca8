// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package library manages admin-uploaded ROM entries.
//
// Uploaded entries live in their own persisted list, separate from the
// game catalog. There is no authorization check in this layer; the
// uploader is only reachable from the admin UI.
package library

import (
	"encoding/json"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/retrohub-tui/internal/storage"
)

// KeyUploadedRoms is the persisted storage key for the upload list.
const KeyUploadedRoms = "uploadedRoms"

// Consoles is the list of consoles offered by the uploader form.
var Consoles = []string{
	"SNES", "N64", "PS1", "PS2", "Xbox 360",
	"GameBoy", "GBA", "NDS", "Genesis", "Master System",
	"Atari 2600", "NES", "Game Gear", "PSP",
}

// Genres is the list of genres offered by the uploader form.
var Genres = []string{
	"Ação", "Aventura", "RPG", "Plataforma", "Corrida",
	"Esporte", "Luta", "Puzzle", "Estratégia", "FPS",
	"Terror", "Simulação", "Arcade", "Beat 'em Up",
	"Shoot 'em Up", "Visual Novel",
}

// uploadExtensions are the file formats the uploader accepts. Wider
// than the playable set: archives and less common cartridge formats
// are fine to catalog even if nothing here runs them.
var uploadExtensions = map[string]bool{
	".zip": true, ".rar": true,
	".smc": true, ".sfc": true,
	".n64": true, ".z64": true,
	".bin": true, ".cue": true, ".iso": true, ".chd": true,
	".nes": true, ".gb": true, ".gba": true,
}

// =============================================================================
// ENTRY
// =============================================================================

// Entry is one uploaded ROM record.
type Entry struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Console     string    `json:"console"`
	Genre       string    `json:"genre"`
	Description string    `json:"description,omitempty"`
	Rating      float64   `json:"rating"`
	Image       string    `json:"image,omitempty"`
	ROM         string    `json:"rom"`
	FileType    string    `json:"fileType"`
	UploadDate  time.Time `json:"uploadDate"`
	Uploader    string    `json:"uploader"`
}

// ValidationError reports a rejected upload field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// =============================================================================
// LIBRARY
// =============================================================================

// Library persists uploaded ROM entries under one storage key.
type Library struct {
	mu    sync.Mutex
	kv    storage.KV
	newID func() string
	now   func() time.Time
}

// New creates a library over the given storage backend.
func New(kv storage.KV) *Library {
	return &Library{kv: kv, newID: uuid.NewString, now: time.Now}
}

// NewWithClock creates a library with injected ID and clock functions,
// for tests.
func NewWithClock(kv storage.KV, newID func() string, now func() time.Time) *Library {
	return &Library{kv: kv, newID: newID, now: now}
}

// Add validates and appends one upload. Title, console and genre are
// required; the ROM reference must be either a valid URL or a filename
// with an accepted extension. The completed entry is returned.
func (l *Library) Add(e Entry, uploader string) (Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e.Title == "" {
		return Entry{}, &ValidationError{Field: "title", Message: "title is required"}
	}
	if e.Console == "" {
		return Entry{}, &ValidationError{Field: "console", Message: "console is required"}
	}
	if e.Genre == "" {
		return Entry{}, &ValidationError{Field: "genre", Message: "genre is required"}
	}
	if err := validateROMRef(e.ROM); err != nil {
		return Entry{}, err
	}

	e.ID = l.newID()
	e.FileType = strings.ToLower(e.Console)
	e.UploadDate = l.now()
	e.Uploader = uploader
	if e.Rating == 0 {
		e.Rating = 4.0
	}
	if e.Image == "" {
		e.Image = "/placeholder.svg?height=200&width=300&text=" + url.QueryEscape(e.Title)
	}

	entries, err := l.load()
	if err != nil {
		return Entry{}, err
	}
	entries = append(entries, e)

	data, err := json.Marshal(entries)
	if err != nil {
		return Entry{}, fmt.Errorf("marshal uploads: %w", err)
	}
	if err := l.kv.Set(KeyUploadedRoms, data); err != nil {
		return Entry{}, fmt.Errorf("persist uploads: %w", err)
	}
	return e, nil
}

// List returns all uploaded entries. Absent or corrupt data yields an
// empty list.
func (l *Library) List() ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}

func (l *Library) load() ([]Entry, error) {
	data, res, err := l.kv.Get(KeyUploadedRoms)
	switch res {
	case storage.Missing:
		return nil, nil
	case storage.Corrupt:
		return nil, fmt.Errorf("read uploads: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse uploads: %w", err)
	}
	return entries, nil
}

// validateROMRef accepts an absolute URL or a filename with a
// recognized upload extension.
func validateROMRef(ref string) error {
	if ref == "" {
		return &ValidationError{Field: "rom", Message: "ROM URL or file is required"}
	}

	if u, err := url.Parse(ref); err == nil && u.Scheme != "" && u.Host != "" {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(ref))
	if !uploadExtensions[ext] {
		return &ValidationError{Field: "rom", Message: fmt.Sprintf("unsupported ROM format: %s", ext)}
	}
	return nil
}

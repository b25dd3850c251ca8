// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jeranaias/retrohub-tui/internal/util"
)

// =============================================================================
// FILE STORE
// =============================================================================

// FileStore persists each key as one JSON file under a base directory.
// Writes are atomic (temp file + fsync + rename) so a crash leaves either
// the old value or the complete new value, never a torn file.
type FileStore struct {
	// BaseDir is the directory holding one file per key.
	// Default: ~/.retrohub/data/
	BaseDir string

	mu sync.Mutex
}

// NewFileStore creates a file store under the user's home directory.
func NewFileStore() (*FileStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewFileStoreWithDir(filepath.Join(homeDir, ".retrohub", "data"))
}

// NewFileStoreWithDir creates a file store with a custom directory.
func NewFileStoreWithDir(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, err
	}
	return &FileStore{BaseDir: baseDir}, nil
}

// Get returns the value stored under key.
func (s *FileStore) Get(key string) ([]byte, Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.keyPath(key)
	if err != nil {
		return nil, Corrupt, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, Missing, nil
		}
		// File exists but cannot be read: permissions, I/O failure.
		return nil, Corrupt, fmt.Errorf("read %s: %w", key, err)
	}
	return data, Found, nil
}

// Set stores value under key.
func (s *FileStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(key, value)
}

// Remove deletes key. Removing an absent key is not an error.
func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(key)
}

// Batch applies writes in the order fn issues them. There is no file-level
// transaction, so callers order writes such that a crash mid-batch leaves
// a recoverable state.
func (s *FileStore) Batch(fn func(w Writer) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(fileBatchWriter{s})
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}

// fileBatchWriter issues writes without re-acquiring the store lock.
type fileBatchWriter struct {
	s *FileStore
}

func (w fileBatchWriter) Set(key string, value []byte) error {
	return w.s.set(key, value)
}

func (w fileBatchWriter) Remove(key string) error {
	return w.s.remove(key)
}

func (s *FileStore) set(key string, value []byte) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	// RELIABILITY: Atomic write with fsync prevents data loss on crash
	return util.AtomicWriteFileWithDir(path, value, 0600, 0700)
}

func (s *FileStore) remove(key string) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// keyPath returns the file path for a key. Keys are fixed identifiers, but
// path separators are rejected so a bad key can never escape the base dir.
func (s *FileStore) keyPath(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.BaseDir, key+".json"), nil
}

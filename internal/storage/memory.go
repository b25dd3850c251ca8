// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"fmt"
	"sync"
)

// =============================================================================
// MEMORY STORE (TESTS)
// =============================================================================

// MemoryStore is an in-memory KV used by tests. It supports marking keys
// as corrupt and injecting write failures to exercise error paths.
type MemoryStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	corrupt map[string]bool

	// SetErr, when non-nil, is returned by every Set and Remove.
	SetErr error
}

// NewMemoryStore creates an empty memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:    make(map[string][]byte),
		corrupt: make(map[string]bool),
	}
}

// Get returns the value stored under key.
func (s *MemoryStore) Get(key string) ([]byte, Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.corrupt[key] {
		return nil, Corrupt, fmt.Errorf("read %s: marked corrupt", key)
	}
	value, ok := s.data[key]
	if !ok {
		return nil, Missing, nil
	}
	// Copy so callers cannot mutate stored state.
	out := make([]byte, len(value))
	copy(out, value)
	return out, Found, nil
}

// Set stores value under key.
func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(key, value)
}

// Remove deletes key.
func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(key)
}

// Batch applies writes in order.
func (s *MemoryStore) Batch(fn func(w Writer) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(memBatchWriter{s})
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// MarkCorrupt makes subsequent Gets of key report Corrupt.
func (s *MemoryStore) MarkCorrupt(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.corrupt[key] = true
}

// Keys returns the set of stored keys, for assertions.
func (s *MemoryStore) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

type memBatchWriter struct {
	s *MemoryStore
}

func (w memBatchWriter) Set(key string, value []byte) error {
	return w.s.set(key, value)
}

func (w memBatchWriter) Remove(key string) error {
	return w.s.remove(key)
}

func (s *MemoryStore) set(key string, value []byte) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	delete(s.corrupt, key)
	return nil
}

func (s *MemoryStore) remove(key string) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	delete(s.data, key)
	delete(s.corrupt, key)
	return nil
}

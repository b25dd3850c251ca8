// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

// =============================================================================
// KEY-VALUE PORT
// =============================================================================

// Result describes the outcome of a Get.
type Result int

const (
	// Found means the key exists and its value was read successfully.
	Found Result = iota

	// Missing means the key has never been written or was removed.
	Missing

	// Corrupt means the key exists but its value could not be read.
	// Callers treat corrupt data as absent, but the distinction lets them
	// log it instead of silently losing state.
	Corrupt
)

// String returns the result name for logging.
func (r Result) String() string {
	switch r {
	case Found:
		return "found"
	case Missing:
		return "missing"
	case Corrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// Writer is the mutating subset of a store.
type Writer interface {
	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}

// KV is the local key-value storage port.
//
// Implementations must be safe for concurrent use.
type KV interface {
	Writer

	// Get returns the value stored under key. The Result reports whether
	// the key was found, missing, or present but unreadable. The error
	// carries detail for the Corrupt case and is nil otherwise.
	Get(key string) ([]byte, Result, error)

	// Batch runs fn against a writer. Backends with transactions apply
	// all writes atomically; others apply them in order, so callers
	// should order writes such that a partial batch is recoverable.
	Batch(fn func(w Writer) error) error

	// Close releases backend resources.
	Close() error
}

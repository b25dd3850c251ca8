// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package access

import "fmt"

// =============================================================================
// ERROR TAXONOMY
// =============================================================================

// ValidationError reports a missing or malformed form field. The message
// is user-facing and specific to the violated rule.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// AuthenticationError reports bad credentials or a not-yet-approved
// account. The message deliberately does not distinguish the two cases.
type AuthenticationError struct {
	Message string
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return e.Message
}

// DuplicateEmailError reports a registration collision: the email is
// already present in the pending or approved set.
type DuplicateEmailError struct {
	Email string
}

// Error implements the error interface.
func (e *DuplicateEmailError) Error() string {
	return "an account with this email already exists"
}

// StorageError wraps a persisted read or write failure.
// Use errors.As to recover the key and underlying cause.
type StorageError struct {
	Op  string // "read", "write", "remove"
	Key string
	Err error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying cause.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package access

import "time"

// =============================================================================
// STORAGE KEYS
// =============================================================================

// Persisted storage keys. The names are part of the on-disk format and
// must not change without a migration.
const (
	KeySession       = "gamingHubSession"
	KeyPendingUsers  = "pendingUsers"
	KeyApprovedUsers = "approvedUsers"
)

// AdminUserID is the fixed identifier of the built-in administrator.
// The admin account is synthesized at login and never stored in either
// user set.
const AdminUserID = "admin"

// =============================================================================
// USER
// =============================================================================

// User is an identity record. Email is the unique key among all users
// (pending and approved); uniqueness is checked at registration by
// scanning both sets.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	IsAdmin    bool      `json:"isAdmin"`
	IsApproved bool      `json:"isApproved"`
	JoinDate   time.Time `json:"joinDate"`
}

// =============================================================================
// SESSION
// =============================================================================

// Session is an authenticated principal with an absolute expiry.
//
// The embedded User is a snapshot taken at login; a later edit to the
// approved record does not retroactively update an issued session.
type Session struct {
	User User `json:"user"`

	// Expiry is milliseconds since the Unix epoch. The session is
	// invalid once Expiry <= now. Expiry is only checked at restore
	// time; an active session is never revalidated mid-process.
	Expiry int64 `json:"expiry"`
}

// Expired reports whether the session is invalid at the given time.
func (s *Session) Expired(now time.Time) bool {
	return s.Expiry <= now.UnixMilli()
}

// ExpiresAt returns the expiry as a time.Time.
func (s *Session) ExpiresAt() time.Time {
	return time.UnixMilli(s.Expiry)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package access implements the client-side session and access-control
// model for retrohub: login, registration, the admin approval workflow,
// and session expiry, all backed by local key-value storage.
//
// The store owns three independently persisted pieces of state: the
// pending-user set, the approved-user set, and the active session. Every
// other part of the application either reads its derived state
// (IsLoggedIn, CurrentUser, PendingUsers, ApprovedUsers) or drives it
// through the operations (Login, Register, ApproveUser, RejectUser,
// Logout, RestoreSession).
package access

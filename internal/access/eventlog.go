// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package access

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// =============================================================================
// ACCESS EVENT LOG
// =============================================================================

// Event types recorded by the store.
const (
	EventLogin       = "login"
	EventLoginFailed = "login_failed"
	EventRegister    = "register"
	EventApprove     = "approve"
	EventReject      = "reject"
	EventLogout      = "logout"
	EventRestore     = "restore"
	EventCorruptData = "corrupt_data"
)

// Event is one access-control event, serialized as a JSON line.
type Event struct {
	Time   time.Time `json:"time"`
	Type   string    `json:"type"`
	Email  string    `json:"email,omitempty"`
	UserID string    `json:"user_id,omitempty"`
	Detail string    `json:"detail,omitempty"`
}

// EventLog appends access events to a JSON-lines file. A nil *EventLog is
// valid and discards every event, so callers never need to guard Record.
type EventLog struct {
	mu   sync.Mutex
	path string
}

// NewEventLog creates an event log writing to path. The parent directory
// is created on first write.
func NewEventLog(path string) *EventLog {
	return &EventLog{path: path}
}

// Record appends one event. Logging failures are swallowed: the event
// log is observability, not state, and must never block an operation.
func (l *EventLog) Record(e Event) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if e.Time.IsZero() {
		e.Time = time.Now()
	}

	line, err := json.Marshal(e)
	if err != nil {
		return
	}
	line = append(line, '\n')

	if err := os.MkdirAll(filepath.Dir(l.path), 0700); err != nil {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	f.Write(line)
}

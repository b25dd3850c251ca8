// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package access

import (
	"encoding/json"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jeranaias/retrohub-tui/internal/storage"
)

// =============================================================================
// CONFIGURATION
// =============================================================================

// Config holds the injected collaborators and the built-in admin
// credential. The admin account never lives in the approved set; it is
// synthesized at each admin login.
type Config struct {
	// AdminEmail and AdminPasswordHash identify the single built-in
	// administrator. The hash is bcrypt.
	AdminEmail        string
	AdminName         string
	AdminPasswordHash []byte

	// SessionTTL is the session lifetime (default: 24 hours).
	SessionTTL time.Duration

	// Now returns the current time (default: time.Now). Injected for
	// expiry tests.
	Now func() time.Time

	// NewID returns a unique user ID (default: uuid.NewString).
	NewID func() string

	// Events receives access events. May be nil.
	Events *EventLog
}

// DefaultSessionTTL is the session lifetime when Config.SessionTTL is zero.
const DefaultSessionTTL = 24 * time.Hour

// HashPassword returns the bcrypt hash of a password, for building
// Config.AdminPasswordHash from a configured plaintext credential.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// emailPattern accepts the standard local@domain.tld shape.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MinPasswordLength is the minimum accepted registration password length.
const MinPasswordLength = 6

// =============================================================================
// STORE
// =============================================================================

// Store is the access-control state machine. All mutations persist
// before updating in-memory state, so a failed write never leaves the
// two views disagreeing.
type Store struct {
	mu  sync.Mutex
	cfg Config
	kv  storage.KV

	pending  []User
	approved []User
	session  *Session
}

// New creates a store over the given storage backend. Call
// RestoreSession once at startup to load persisted state.
func New(kv storage.KV, cfg Config) *Store {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	return &Store{cfg: cfg, kv: kv}
}

// =============================================================================
// RESTORE
// =============================================================================

// RestoreReport describes what RestoreSession found. It distinguishes
// "no users yet" from "storage corrupted": corrupt keys are listed so
// the operator can be told, instead of silently starting empty.
type RestoreReport struct {
	SessionRestored bool
	SessionExpired  bool
	CorruptKeys     []string
}

// RestoreSession loads the persisted session and both user sets. It is
// run once at process start. Absent data yields empty state; corrupt
// data also yields empty state but is reported and logged. An expired
// session is deleted and the caller stays logged out.
func (s *Store) RestoreSession() RestoreReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	var report RestoreReport

	s.pending = s.loadUsers(KeyPendingUsers, &report)
	s.approved = s.loadUsers(KeyApprovedUsers, &report)

	s.session = nil
	data, res, _ := s.kv.Get(KeySession)
	switch res {
	case storage.Corrupt:
		report.CorruptKeys = append(report.CorruptKeys, KeySession)
		s.recordCorrupt(KeySession, "unreadable value")
	case storage.Found:
		var sess Session
		if err := json.Unmarshal(data, &sess); err != nil {
			report.CorruptKeys = append(report.CorruptKeys, KeySession)
			s.recordCorrupt(KeySession, err.Error())
			break
		}
		if sess.Expired(s.cfg.Now()) {
			s.kv.Remove(KeySession)
			report.SessionExpired = true
			break
		}
		s.session = &sess
		report.SessionRestored = true
	}

	s.cfg.Events.Record(Event{Type: EventRestore, Detail: restoreDetail(report)})
	return report
}

// loadUsers reads one persisted user set, defaulting to empty on absent
// or corrupt data.
func (s *Store) loadUsers(key string, report *RestoreReport) []User {
	data, res, _ := s.kv.Get(key)
	switch res {
	case storage.Missing:
		return nil
	case storage.Corrupt:
		report.CorruptKeys = append(report.CorruptKeys, key)
		s.recordCorrupt(key, "unreadable value")
		return nil
	}

	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		report.CorruptKeys = append(report.CorruptKeys, key)
		s.recordCorrupt(key, err.Error())
		return nil
	}
	return users
}

func (s *Store) recordCorrupt(key, detail string) {
	s.cfg.Events.Record(Event{Type: EventCorruptData, Detail: key + ": " + detail})
}

func restoreDetail(r RestoreReport) string {
	switch {
	case r.SessionRestored:
		return "session restored"
	case r.SessionExpired:
		return "session expired"
	default:
		return "no session"
	}
}

// =============================================================================
// LOGIN / LOGOUT
// =============================================================================

// Login authenticates an email/password pair and issues a session.
//
// The admin pair always succeeds and synthesizes a fresh admin user
// without consulting the approved set. For everyone else the email must
// be in the approved set; the password is not verified for non-admin
// accounts — any non-empty password is accepted for an approved email.
// That check is a documented weakness of the system being modeled, kept
// intact because the approval workflow, not the password, is the gate.
func (s *Store) Login(email, password string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if email == "" || password == "" {
		return Session{}, &ValidationError{Field: "form", Message: "please fill in email and password"}
	}

	now := s.cfg.Now()

	var user User
	if email == s.cfg.AdminEmail &&
		bcrypt.CompareHashAndPassword(s.cfg.AdminPasswordHash, []byte(password)) == nil {
		user = User{
			ID:         AdminUserID,
			Name:       s.cfg.AdminName,
			Email:      email,
			IsAdmin:    true,
			IsApproved: true,
			JoinDate:   now,
		}
	} else {
		found := false
		for _, u := range s.approved {
			if u.Email == email && u.IsApproved {
				user = u
				found = true
				break
			}
		}
		if !found {
			s.cfg.Events.Record(Event{Type: EventLoginFailed, Email: email})
			return Session{}, &AuthenticationError{Message: "invalid credentials or account awaiting approval"}
		}
	}

	sess := Session{User: user, Expiry: now.Add(s.cfg.SessionTTL).UnixMilli()}
	data, err := json.Marshal(sess)
	if err != nil {
		return Session{}, &StorageError{Op: "write", Key: KeySession, Err: err}
	}
	if err := s.kv.Set(KeySession, data); err != nil {
		return Session{}, &StorageError{Op: "write", Key: KeySession, Err: err}
	}

	s.session = &sess
	s.cfg.Events.Record(Event{Type: EventLogin, Email: email, UserID: user.ID})
	return sess, nil
}

// Logout clears the persisted session and resets authenticated state.
// In-memory state is reset even if the storage remove fails.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	s.cfg.Events.Record(Event{Type: EventLogout})
	if err := s.kv.Remove(KeySession); err != nil {
		return &StorageError{Op: "remove", Key: KeySession, Err: err}
	}
	return nil
}

// =============================================================================
// REGISTRATION
// =============================================================================

// Register creates a pending user. Registration does not log the user
// in; the account must first be approved by the administrator.
func (s *Store) Register(name, email, password string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" || email == "" || password == "" {
		return User{}, &ValidationError{Field: "form", Message: "please fill in all fields"}
	}
	if !emailPattern.MatchString(email) {
		return User{}, &ValidationError{Field: "email", Message: "please enter a valid email address"}
	}
	if len(password) < MinPasswordLength {
		return User{}, &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}

	// Uniqueness spans both sets; an email is in at most one of them.
	for _, u := range s.pending {
		if u.Email == email {
			return User{}, &DuplicateEmailError{Email: email}
		}
	}
	for _, u := range s.approved {
		if u.Email == email {
			return User{}, &DuplicateEmailError{Email: email}
		}
	}

	user := User{
		ID:         s.cfg.NewID(),
		Name:       name,
		Email:      email,
		IsAdmin:    false,
		IsApproved: false,
		JoinDate:   s.cfg.Now(),
	}

	newPending := append(copyUsers(s.pending), user)
	if err := s.writeUsers(s.kv, KeyPendingUsers, newPending); err != nil {
		return User{}, err
	}

	s.pending = newPending
	s.cfg.Events.Record(Event{Type: EventRegister, Email: email, UserID: user.ID})
	return user, nil
}

// =============================================================================
// APPROVAL WORKFLOW
// =============================================================================

// ApproveUser moves one record from pending to approved, setting
// IsApproved. An unknown id is a silent no-op, which also makes the
// operation idempotent. Both sets are persisted in one batch before the
// in-memory state changes; on backends without transactions the
// approved set is written first, so a crash between the two writes
// duplicates the record instead of losing it.
func (s *Store) ApproveUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, u := range s.pending {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	user := s.pending[idx]
	user.IsApproved = true

	newPending := append(copyUsers(s.pending[:idx]), s.pending[idx+1:]...)
	newApproved := append(copyUsers(s.approved), user)

	err := s.kv.Batch(func(w storage.Writer) error {
		if err := s.writeUsers(w, KeyApprovedUsers, newApproved); err != nil {
			return err
		}
		return s.writeUsers(w, KeyPendingUsers, newPending)
	})
	if err != nil {
		return err
	}

	s.pending = newPending
	s.approved = newApproved
	s.cfg.Events.Record(Event{Type: EventApprove, Email: user.Email, UserID: user.ID})
	return nil
}

// RejectUser removes one record from pending. No record of the
// rejection is kept. An unknown id is a silent no-op.
func (s *Store) RejectUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, u := range s.pending {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	user := s.pending[idx]
	newPending := append(copyUsers(s.pending[:idx]), s.pending[idx+1:]...)
	if err := s.writeUsers(s.kv, KeyPendingUsers, newPending); err != nil {
		return err
	}

	s.pending = newPending
	s.cfg.Events.Record(Event{Type: EventReject, Email: user.Email, UserID: user.ID})
	return nil
}

// =============================================================================
// DERIVED STATE
// =============================================================================

// IsLoggedIn reports whether a session is active.
func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session != nil
}

// CurrentUser returns the authenticated user, if any.
func (s *Store) CurrentUser() (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return User{}, false
	}
	return s.session.User, true
}

// CurrentSession returns a copy of the active session, if any.
func (s *Store) CurrentSession() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}

// PendingUsers returns a copy of the pending set.
func (s *Store) PendingUsers() []User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyUsers(s.pending)
}

// ApprovedUsers returns a copy of the approved set.
func (s *Store) ApprovedUsers() []User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyUsers(s.approved)
}

// =============================================================================
// HELPERS
// =============================================================================

// writeUsers marshals and persists one user set. The empty set is
// written as an empty JSON array, not removed.
func (s *Store) writeUsers(w storage.Writer, key string, users []User) error {
	if users == nil {
		users = []User{}
	}
	data, err := json.Marshal(users)
	if err != nil {
		return &StorageError{Op: "write", Key: key, Err: err}
	}
	if err := w.Set(key, data); err != nil {
		return &StorageError{Op: "write", Key: key, Err: err}
	}
	return nil
}

func copyUsers(users []User) []User {
	out := make([]User, len(users))
	copy(out, users)
	return out
}

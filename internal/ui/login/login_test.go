// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/retrohub-tui/internal/access"
	"github.com/jeranaias/retrohub-tui/internal/storage"
	"github.com/jeranaias/retrohub-tui/internal/ui/styles"
)

const (
	adminEmail    = "keeper@retrohub.test"
	adminPassword = "hub-master-9809"
)

func newTestModel(t *testing.T) (Model, *access.Store) {
	t.Helper()
	hash, err := access.HashPassword(adminPassword)
	require.NoError(t, err)

	store := access.New(storage.NewMemoryStore(), access.Config{
		AdminEmail:        adminEmail,
		AdminName:         "Keeper",
		AdminPasswordHash: hash,
	})
	return New(store, styles.NewTheme()), store
}

func pressEnter(m Model) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestSubmit_EmptyFieldsShowsError(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := pressEnter(m)
	assert.Nil(t, cmd)
	assert.Equal(t, "please fill in email and password", m.ErrorMessage())
}

func TestSubmit_AdminLoginEmitsLoggedIn(t *testing.T) {
	m, _ := newTestModel(t)
	m.inputs[fieldEmail].SetValue(adminEmail)
	m.inputs[fieldPassword].SetValue(adminPassword)

	m, cmd := pressEnter(m)
	require.NotNil(t, cmd)
	assert.Empty(t, m.ErrorMessage())

	msg, ok := cmd().(LoggedInMsg)
	require.True(t, ok)
	assert.True(t, msg.Session.User.IsAdmin)
}

func TestSubmit_WrongCredentialsShowsError(t *testing.T) {
	m, _ := newTestModel(t)
	m.inputs[fieldEmail].SetValue("nobody@example.com")
	m.inputs[fieldPassword].SetValue("whatever")

	m, cmd := pressEnter(m)
	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.ErrorMessage())
}

func TestRegister_SuccessReturnsToSignIn(t *testing.T) {
	m, store := newTestModel(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.Equal(t, ModeRegister, m.Mode())

	m.inputs[fieldName].SetValue("Ana Souza")
	m.inputs[fieldEmail].SetValue("ana@example.com")
	m.inputs[fieldPassword].SetValue("secret1")

	m, cmd := pressEnter(m)
	assert.Nil(t, cmd)
	assert.Equal(t, ModeSignIn, m.Mode())
	assert.Equal(t, "account created - awaiting admin approval", m.Notice())

	pending := store.PendingUsers()
	require.Len(t, pending, 1)
	assert.Equal(t, "ana@example.com", pending[0].Email)
}

func TestRegister_ValidationErrorStaysOnForm(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m.inputs[fieldName].SetValue("Ana")
	m.inputs[fieldEmail].SetValue("not-an-email")
	m.inputs[fieldPassword].SetValue("secret1")

	m, _ = pressEnter(m)
	assert.Equal(t, ModeRegister, m.Mode())
	assert.Equal(t, "please enter a valid email address", m.ErrorMessage())
}

func TestToggleMode_ClearsMessages(t *testing.T) {
	m, _ := newTestModel(t)
	m.errMsg = "stale error"

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Empty(t, m.ErrorMessage())
}

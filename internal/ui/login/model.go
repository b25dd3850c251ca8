// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package login provides the login and registration screens.
//
// The screen has two modes that share one model: sign-in (email +
// password) and registration (name + email + password). Errors from the
// access layer surface inline below the form.
package login

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/retrohub-tui/internal/access"
	"github.com/jeranaias/retrohub-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// LoggedInMsg is emitted when a sign-in succeeds; the parent model
// switches to the hub screen.
type LoggedInMsg struct {
	Session access.Session
}

// =============================================================================
// MODEL
// =============================================================================

// Mode selects which form is shown.
type Mode int

const (
	ModeSignIn Mode = iota
	ModeRegister
)

// Field indexes into the input slice.
const (
	fieldName = iota
	fieldEmail
	fieldPassword
	fieldCount
)

// Model is the Bubble Tea model for the login screen.
type Model struct {
	theme *styles.Theme
	store *access.Store

	mode   Mode
	inputs [fieldCount]textinput.Model
	focus  int

	errMsg string
	notice string
	width  int
	height int
}

// New creates the login screen bound to the given access store.
func New(store *access.Store, theme *styles.Theme) Model {
	m := Model{theme: theme, store: store, mode: ModeSignIn}

	name := textinput.New()
	name.Placeholder = "Full name"
	name.CharLimit = 64

	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	m.inputs[fieldName] = name
	m.inputs[fieldEmail] = email
	m.inputs[fieldPassword] = password

	m.focus = fieldEmail
	m.inputs[fieldEmail].Focus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Mode returns the active form mode.
func (m Model) Mode() Mode {
	return m.mode
}

// ErrorMessage returns the inline error, empty when none.
func (m Model) ErrorMessage() string {
	return m.errMsg
}

// Notice returns the inline success notice, empty when none.
func (m Model) Notice() string {
	return m.notice
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.cycleFocus(1)
			return m, nil
		case "shift+tab", "up":
			m.cycleFocus(-1)
			return m, nil
		case "ctrl+r":
			m.toggleMode()
			return m, nil
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// cycleFocus moves focus across the visible fields only.
func (m *Model) cycleFocus(delta int) {
	first := fieldEmail
	if m.mode == ModeRegister {
		first = fieldName
	}
	count := fieldCount - first

	m.inputs[m.focus].Blur()
	m.focus = first + (m.focus-first+delta+count)%count
	m.inputs[m.focus].Focus()
}

// toggleMode switches between sign-in and registration, clearing any
// previous result.
func (m *Model) toggleMode() {
	if m.mode == ModeSignIn {
		m.mode = ModeRegister
		m.inputs[m.focus].Blur()
		m.focus = fieldName
		m.inputs[m.focus].Focus()
	} else {
		m.mode = ModeSignIn
		m.inputs[m.focus].Blur()
		m.focus = fieldEmail
		m.inputs[m.focus].Focus()
	}
	m.errMsg = ""
	m.notice = ""
}

// submit runs the active form against the access store.
func (m Model) submit() (Model, tea.Cmd) {
	m.errMsg = ""
	m.notice = ""

	if m.mode == ModeSignIn {
		session, err := m.store.Login(m.inputs[fieldEmail].Value(), m.inputs[fieldPassword].Value())
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		return m, func() tea.Msg { return LoggedInMsg{Session: session} }
	}

	_, err := m.store.Register(
		m.inputs[fieldName].Value(),
		m.inputs[fieldEmail].Value(),
		m.inputs[fieldPassword].Value(),
	)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	// Registration never signs in: the account waits for admin approval.
	m.notice = "account created - awaiting admin approval"
	m.mode = ModeSignIn
	m.inputs[fieldName].SetValue("")
	m.inputs[fieldPassword].SetValue("")
	m.inputs[m.focus].Blur()
	m.focus = fieldEmail
	m.inputs[m.focus].Focus()
	return m, nil
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	title := "Sign in"
	action := "ctrl+r to create an account"
	if m.mode == ModeRegister {
		title = "Create account"
		action = "ctrl+r to sign in instead"
	}

	var rows []string
	rows = append(rows, m.theme.FormTitle.Render(title))

	if m.mode == ModeRegister {
		rows = append(rows, m.inputs[fieldName].View())
	}
	rows = append(rows, m.inputs[fieldEmail].View())
	rows = append(rows, m.inputs[fieldPassword].View())

	if m.errMsg != "" {
		rows = append(rows, styles.RenderError(m.errMsg))
	}
	if m.notice != "" {
		rows = append(rows, styles.RenderSuccess(m.notice))
	}

	rows = append(rows, m.theme.FormHint.Render("enter to submit · tab to move · "+action))

	form := m.theme.FormBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	if m.width == 0 || m.height == 0 {
		return form
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}

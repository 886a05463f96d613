// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PasswordRequest configures a master password prompt.
type PasswordRequest struct {
	Title string
	// Confirm asks for the password twice and rejects a mismatch.
	Confirm bool
	// Error is shown under the input, e.g. after a failed unlock.
	Error string
}

// passwordModel asks for the master password. In confirm mode the value is
// entered twice.
type passwordModel struct {
	req      PasswordRequest
	input    textinput.Model
	first    string
	repeat   bool
	errMsg   string
	done     bool
	canceled bool
}

func newPasswordModel(req PasswordRequest) *passwordModel {
	input := textinput.New()
	input.Placeholder = "master password"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return &passwordModel{
		req:    req,
		input:  input,
		errMsg: req.Error,
	}
}

func (m *passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.abort):
			m.canceled = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.confirm):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *passwordModel) submit() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	if value == "" {
		m.errMsg = "Password must not be empty"
		return m, nil
	}

	if !m.req.Confirm {
		m.done = true
		return m, tea.Quit
	}

	if !m.repeat {
		m.first = value
		m.repeat = true
		m.errMsg = ""
		m.input.Reset()
		return m, nil
	}

	if value != m.first {
		m.first = ""
		m.repeat = false
		m.errMsg = "Passwords do not match"
		m.input.Reset()
		return m, nil
	}

	m.done = true
	return m, tea.Quit
}

// Value returns the accepted password.
func (m *passwordModel) Value() string {
	return m.input.Value()
}

func (m *passwordModel) View() string {
	if m.done || m.canceled {
		return ""
	}

	label := "Master password"
	if m.repeat {
		label = "Repeat password"
	}

	return renderPage(m.req.Title, label+": "+m.input.View(), "enter: confirm │ esc: quit", m.errMsg)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// EntryRequest configures an entry form. A zero Initial opens an empty form
// for a new entry; otherwise the form edits Initial.
type EntryRequest struct {
	Title   string
	Initial *models.Entry
}

const (
	fieldTitle = iota
	fieldUsername
	fieldPassword
	fieldURL
	fieldNotes
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Title:   ",
	"Username:",
	"Password:",
	"URL:     ",
	"Notes:   ",
}

// entryModel edits the fields of one entry. Enter moves to the next field
// and submits from the last one; ctrl+s submits from anywhere.
type entryModel struct {
	req      EntryRequest
	inputs   []textinput.Model
	focus    int
	errMsg   string
	done     bool
	canceled bool
}

func newEntryModel(req EntryRequest) *entryModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
		inputs[i].CharLimit = 1024
	}
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '*'

	if e := req.Initial; e != nil {
		inputs[fieldTitle].SetValue(e.Title)
		inputs[fieldUsername].SetValue(e.Username)
		inputs[fieldURL].SetValue(e.URL)
		inputs[fieldNotes].SetValue(e.Notes)
		inputs[fieldPassword].Placeholder = "leave blank to keep"
	}
	inputs[fieldTitle].Focus()

	return &entryModel{req: req, inputs: inputs}
}

func (m *entryModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *entryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.abort):
			m.canceled = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.submit):
			return m.submit()
		case key.Matches(keyMsg, keys.confirm):
			if m.focus == fieldCount-1 {
				return m.submit()
			}
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.next):
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case key.Matches(keyMsg, keys.prev):
			m.setFocus((m.focus - 1 + fieldCount) % fieldCount)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *entryModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *entryModel) submit() (tea.Model, tea.Cmd) {
	entry := m.Entry()
	if err := entry.Validate(); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	m.done = true
	return m, tea.Quit
}

// Entry returns the entry described by the form. A blank password on an
// edit form keeps the previous password.
func (m *entryModel) Entry() models.Entry {
	entry := models.Entry{
		Title:    strings.TrimSpace(m.inputs[fieldTitle].Value()),
		Username: strings.TrimSpace(m.inputs[fieldUsername].Value()),
		Password: m.inputs[fieldPassword].Value(),
		URL:      strings.TrimSpace(m.inputs[fieldURL].Value()),
		Notes:    m.inputs[fieldNotes].Value(),
	}
	if entry.Password == "" && m.req.Initial != nil {
		entry.Password = m.req.Initial.Password
	}
	return entry
}

func (m *entryModel) View() string {
	if m.done || m.canceled {
		return ""
	}

	var b strings.Builder
	for i, label := range fieldLabels {
		b.WriteString(label)
		b.WriteString(" [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]")
		if i < fieldCount-1 {
			b.WriteString("\n")
		}
	}

	title := m.req.Title
	if m.req.Initial != nil {
		title += ": " + fitText(m.req.Initial.Title, 40)
	}

	return renderPage(title, b.String(), "tab: next field │ enter: next/save │ ctrl+s: save │ esc: cancel", m.errMsg)
}

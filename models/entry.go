// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyTitle is returned by [Entry.Validate] when the entry has no label.
	ErrEmptyTitle = errors.New("entry title is required")

	// ErrEmptyPassword is returned by [Entry.Validate] when the entry has no secret.
	ErrEmptyPassword = errors.New("entry password is required")
)

// Entry is one credential record of the vault.
//
// Entries carry no identifier of their own: within a session an entry is
// addressed by its position in the ordered entry list.
type Entry struct {
	// Title is the display name shown in the selection menu.
	Title string `json:"title"`

	// Username is the login identifier stored alongside the password.
	Username string `json:"username,omitempty"`

	// Password is the secret copied to the clipboard.
	Password string `json:"password"`

	// URL is an optional resource the credentials belong to.
	URL string `json:"url,omitempty"`

	// Notes is optional free-form text.
	Notes string `json:"notes,omitempty"`
}

// Label returns the text shown for the entry in the selection menu.
func (e Entry) Label() string {
	return e.Title
}

// Secret returns the value handed to the clipboard on copy.
func (e Entry) Secret() string {
	return e.Password
}

// Validate checks that the entry can be stored in the vault.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if e.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

// Vault is the plaintext document encrypted into the vault file.
type Vault struct {
	// Version is the document schema version.
	Version int `json:"version"`

	// Entries is the ordered entry list.
	Entries []Entry `json:"entries"`
}

// CurrentVaultVersion is the schema version written by this build.
const CurrentVaultVersion = 1

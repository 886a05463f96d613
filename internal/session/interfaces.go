// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_mock.go -package=mock

// VaultStore persists the entry list encrypted under the master password.
type VaultStore interface {
	Exists() (bool, error)
	Load(ctx context.Context, masterPassword string) ([]models.Entry, error)
	Save(ctx context.Context, entries []models.Entry, masterPassword string) error
}

// Clipboard receives copied secrets.
type Clipboard interface {
	Copy(text string) error
}

// Menu shows the entry list and returns the user's decision. ok is false
// when the user cancelled.
type Menu interface {
	Select(ctx context.Context, req tui.MenuRequest) (cmd tui.Command, ok bool, err error)
}

// Prompter asks the user for passwords and entries.
type Prompter interface {
	PromptPassword(ctx context.Context, req tui.PasswordRequest) (string, error)
	PromptEntry(ctx context.Context, req tui.EntryRequest) (models.Entry, error)
}

// Screen clears the terminal between interactions.
type Screen interface {
	ClearScreen() error
}

// UI is the whole interactive surface the controller drives.
type UI interface {
	Menu
	Prompter
	Screen
}

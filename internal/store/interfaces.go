// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultStorage persists the ordered entry list as a single encrypted file.
//
// Every save rewrites the whole vault; there is no incremental format. A
// save is atomic: either the new list is durably stored or the previous
// file is left untouched.
type VaultStorage interface {
	// Exists reports whether a vault file is present at the configured path.
	Exists() (bool, error)

	// Load decrypts the vault with masterPassword and returns its entries.
	// Returns [ErrVaultNotFound] when there is no file, [ErrWrongPassword]
	// when the password does not open it and [ErrCorruptedVault] when the
	// file is not a vault.
	Load(ctx context.Context, masterPassword string) ([]models.Entry, error)

	// Save encrypts entries with a key derived from masterPassword and
	// atomically replaces the vault file.
	Save(ctx context.Context, entries []models.Entry, masterPassword string) error
}

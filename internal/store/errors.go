// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [VaultStorage]. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrVaultNotFound is returned by Load when no vault file exists yet.
	ErrVaultNotFound = errors.New("vault file not found")

	// ErrWrongPassword is returned by Load when the master password does not
	// decrypt the vault.
	ErrWrongPassword = errors.New("wrong master password")

	// ErrCorruptedVault is returned when the file header or payload cannot
	// be parsed.
	ErrCorruptedVault = errors.New("vault file is corrupted")

	// ErrUnsupportedVersion is returned when the decrypted document was
	// written by a newer schema.
	ErrUnsupportedVersion = errors.New("unsupported vault version")
)

// Low-level file errors wrapped around the underlying os error.
var (
	// ErrReadingVault is returned when the vault file cannot be read.
	ErrReadingVault = errors.New("error reading vault file")

	// ErrWritingVault is returned when the temporary file cannot be written,
	// synced or renamed over the vault.
	ErrWritingVault = errors.New("error writing vault file")
)

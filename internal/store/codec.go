// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/klauspost/compress/zstd"
)

// vaultMagic opens every vault file: "GPV" plus the header format version.
var vaultMagic = []byte("GPV1")

// headerSize is magic ‖ salt.
var headerSize = len(vaultMagic) + crypto.SaltSize

// encodeDocument serializes the entry list into the plaintext that gets
// encrypted: zstd(JSON(models.Vault)).
func encodeDocument(entries []models.Entry) ([]byte, error) {
	if entries == nil {
		entries = []models.Entry{}
	}

	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("could not create zstd writer: %w", err)
	}

	doc := models.Vault{Version: models.CurrentVaultVersion, Entries: entries}
	if err = json.NewEncoder(zw).Encode(doc); err != nil {
		_ = zw.Close()
		return nil, fmt.Errorf("could not encode json to zstd writer: %w", err)
	}
	if err = zw.Close(); err != nil {
		return nil, fmt.Errorf("could not flush zstd writer: %w", err)
	}

	return buf.Bytes(), nil
}

// decodeDocument is the inverse of encodeDocument.
func decodeDocument(plaintext []byte) ([]models.Entry, error) {
	zr, err := zstd.NewReader(bytes.NewReader(plaintext))
	if err != nil {
		return nil, fmt.Errorf("%w: could not create zstd reader: %w", ErrCorruptedVault, err)
	}
	defer zr.Close()

	var doc models.Vault
	if err = json.NewDecoder(zr).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: could not decode json from zstd reader: %w", ErrCorruptedVault, err)
	}
	if doc.Version > models.CurrentVaultVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}
	if doc.Entries == nil {
		doc.Entries = []models.Entry{}
	}

	return doc.Entries, nil
}

// splitHeader returns the salt and the encrypted blob of a vault file.
func splitHeader(data []byte) (salt, blob []byte, err error) {
	if len(data) < headerSize || !bytes.Equal(data[:len(vaultMagic)], vaultMagic) {
		return nil, nil, ErrCorruptedVault
	}
	return data[len(vaultMagic):headerSize], data[headerSize:], nil
}

// joinHeader builds the vault file bytes from salt and blob.
func joinHeader(salt, blob []byte) []byte {
	out := make([]byte, 0, headerSize+len(blob))
	out = append(out, vaultMagic...)
	out = append(out, salt...)
	return append(out, blob...)
}

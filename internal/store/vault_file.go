// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	vaultDirPerm  = 0o700
	vaultFilePerm = 0o600
)

type vaultFileStorage struct {
	path     string
	keyChain crypto.KeyChainService
	logger   *logger.Logger
}

// NewVaultStorage constructs the file-backed [VaultStorage] for cfg.VaultPath.
func NewVaultStorage(cfg config.Storage, keyChain crypto.KeyChainService, log *logger.Logger) (VaultStorage, error) {
	if cfg.VaultPath == "" {
		return nil, fmt.Errorf("%w: empty vault path", config.ErrInvalidStorageConfigs)
	}

	return &vaultFileStorage{
		path:     cfg.VaultPath,
		keyChain: keyChain,
		logger:   log,
	}, nil
}

func (s *vaultFileStorage) Exists() (bool, error) {
	_, err := os.Stat(s.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %w", ErrReadingVault, err)
}

func (s *vaultFileStorage) Load(ctx context.Context, masterPassword string) ([]models.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrVaultNotFound
		}
		s.logger.Err(err).Str("func", "vaultFileStorage.Load").Msg("error reading vault file")
		return nil, fmt.Errorf("%w: %w", ErrReadingVault, err)
	}

	salt, blob, err := splitHeader(data)
	if err != nil {
		s.logger.Error().Str("func", "vaultFileStorage.Load").Int("size", len(data)).Msg("vault header is invalid")
		return nil, err
	}

	key := s.keyChain.DeriveKey(masterPassword, salt)
	plaintext, err := s.keyChain.Decrypt(blob, key)
	if err != nil {
		if errors.Is(err, crypto.ErrDecryptionFailed) {
			s.logger.Warn().Str("func", "vaultFileStorage.Load").Msg("vault could not be opened with the given password")
			return nil, ErrWrongPassword
		}
		return nil, fmt.Errorf("%w: %w", ErrCorruptedVault, err)
	}

	entries, err := decodeDocument(plaintext)
	if err != nil {
		s.logger.Err(err).Str("func", "vaultFileStorage.Load").Msg("error decoding vault document")
		return nil, err
	}

	s.logger.Debug().Str("func", "vaultFileStorage.Load").Int("entries", len(entries)).Msg("vault loaded")
	return entries, nil
}

func (s *vaultFileStorage) Save(ctx context.Context, entries []models.Entry, masterPassword string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	plaintext, err := encodeDocument(entries)
	if err != nil {
		return err
	}

	salt, err := s.keyChain.GenerateSalt()
	if err != nil {
		return err
	}

	blob, err := s.keyChain.Encrypt(plaintext, s.keyChain.DeriveKey(masterPassword, salt))
	if err != nil {
		return fmt.Errorf("encrypt vault: %w", err)
	}

	if err = s.writeAtomically(joinHeader(salt, blob)); err != nil {
		s.logger.Err(err).Str("func", "vaultFileStorage.Save").Msg("error writing vault file")
		return err
	}

	s.logger.Debug().Str("func", "vaultFileStorage.Save").Int("entries", len(entries)).Msg("vault saved")
	return nil
}

// writeAtomically writes data to a temporary file next to the vault, syncs
// it and renames it over the vault path.
func (s *vaultFileStorage) writeAtomically(data []byte) (err error) {
	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, vaultDirPerm); err != nil {
		return fmt.Errorf("%w: create vault dir: %w", ErrWritingVault, err)
	}

	tmp, err := os.CreateTemp(dir, ".vault-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrWritingVault, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err = tmp.Chmod(vaultFilePerm); err != nil {
		return fmt.Errorf("%w: chmod temp file: %w", ErrWritingVault, err)
	}
	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("%w: write temp file: %w", ErrWritingVault, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: sync temp file: %w", ErrWritingVault, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close temp file: %w", ErrWritingVault, err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: replace vault: %w", ErrWritingVault, err)
	}

	return nil
}

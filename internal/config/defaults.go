// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultInactivityDelay is the idle time before re-authentication.
	DefaultInactivityDelay = 150 * time.Second

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	appDirName       = ".go-pass-vault"
	defaultVaultName = "vault.gpv"
	defaultLogName   = "vault.log"
)

// defaultConfig returns the lowest-priority layer. Paths live in
// ~/.go-pass-vault, or in the working directory when the home directory is
// unknown.
func defaultConfig() *StructuredConfig {
	dir := appDirName
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, appDirName)
	}

	return &StructuredConfig{
		App: App{
			InactivityDelay: DefaultInactivityDelay,
		},
		Storage: Storage{
			VaultPath: filepath.Join(dir, defaultVaultName),
		},
		Log: Log{
			FilePath: filepath.Join(dir, defaultLogName),
			Level:    DefaultLogLevel,
		},
	}
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}

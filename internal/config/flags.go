// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Flags holds the values of the command-line flags registered by
// [BindFlags]. Unset flags keep their zero value and do not override other
// sources.
type Flags struct {
	vaultPath       string
	inactivityDelay time.Duration
	logFile         string
	logLevel        string
	configPath      string
}

// config converts the parsed flags into a partial [StructuredConfig].
func (f *Flags) config() *StructuredConfig {
	if f == nil {
		return &StructuredConfig{}
	}

	return &StructuredConfig{
		App: App{
			InactivityDelay: f.inactivityDelay,
		},
		Storage: Storage{
			VaultPath: f.vaultPath,
		},
		Log: Log{
			FilePath: f.logFile,
			Level:    f.logLevel,
		},
		ConfigFilePath: f.configPath,
	}
}

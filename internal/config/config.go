// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container of the vault.
// It is populated by merging command-line flags, environment variables, an
// optional config file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       environment variable name for scalar fields.
//
// Every variable is additionally prefixed with [EnvPrefix].
type StructuredConfig struct {
	// App holds session behaviour settings.
	App App `envPrefix:"APP_"`

	// Storage holds the location of the encrypted vault file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds log file settings.
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to a JSON or YAML config file.
	// Env: GOPASS_CONFIG
	ConfigFilePath string `env:"CONFIG"`
}

// App holds settings of the interactive session.
type App struct {
	// InactivityDelay is the idle time after which the next menu action
	// requires the master password again (e.g. "150s", "5m").
	// Env: GOPASS_APP_INACTIVITY_DELAY
	InactivityDelay time.Duration `env:"INACTIVITY_DELAY"`
}

// Storage holds the vault file settings.
type Storage struct {
	// VaultPath is the path of the encrypted vault file. A leading "~/" is
	// expanded to the user's home directory.
	// Env: GOPASS_STORAGE_VAULT_PATH
	VaultPath string `env:"VAULT_PATH"`
}

// Log holds log output settings.
type Log struct {
	// FilePath is the file log lines are appended to. The terminal is owned
	// by the menu, so logs are never written to stdout or stderr.
	// Env: GOPASS_LOG_FILE
	FilePath string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: GOPASS_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetConfig loads, merges, and validates the configuration. Sources are
// consulted in priority order (the first non-zero value of a field wins):
//  1. Command-line flags bound with [BindFlags]
//  2. Environment variables
//  3. Config file (path resolved from sources 1 and 2)
//  4. Defaults
func GetConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withFile().
		withDefaults().
		build()
}

// BindFlags registers the configuration flags on fs and returns the holder
// GetConfig reads them from.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.vaultPath, "vault", "", "path to the encrypted vault file")
	fs.DurationVar(&f.inactivityDelay, "inactivity-delay", 0, "idle time before the master password is asked again (e.g. 150s, 5m)")
	fs.StringVar(&f.logFile, "log-file", "", "file to append logs to")
	fs.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.StringVarP(&f.configPath, "config", "c", "", "JSON or YAML config file path")
	return f
}

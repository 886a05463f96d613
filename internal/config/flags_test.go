// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindFlags_ParsesAllFlags(t *testing.T) {
	fs := pflag.NewFlagSet("vault", pflag.ContinueOnError)
	flags := BindFlags(fs)

	err := fs.Parse([]string{
		"--vault", "/tmp/v.gpv",
		"--inactivity-delay", "90s",
		"--log-file", "/tmp/v.log",
		"--log-level", "warn",
		"-c", "/tmp/cfg.yaml",
	})
	require.NoError(t, err)

	cfg := flags.config()
	assert.Equal(t, "/tmp/v.gpv", cfg.Storage.VaultPath)
	assert.Equal(t, 90*time.Second, cfg.App.InactivityDelay)
	assert.Equal(t, "/tmp/v.log", cfg.Log.FilePath)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/cfg.yaml", cfg.ConfigFilePath)
}

func TestBindFlags_UnsetFlagsAreZero(t *testing.T) {
	fs := pflag.NewFlagSet("vault", pflag.ContinueOnError)
	flags := BindFlags(fs)
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, &StructuredConfig{}, flags.config())
}

func TestBindFlags_InvalidDuration(t *testing.T) {
	fs := pflag.NewFlagSet("vault", pflag.ContinueOnError)
	BindFlags(fs)

	assert.Error(t, fs.Parse([]string{"--inactivity-delay", "soon"}))
}

func TestFlags_NilConfig(t *testing.T) {
	var flags *Flags
	assert.Equal(t, &StructuredConfig{}, flags.config())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.InactivityDelay <= 0 {
		return fmt.Errorf("%w: inactivity delay must be positive, got %s", ErrInvalidAppConfigs, cfg.App.InactivityDelay)
	}

	if cfg.Storage.VaultPath == "" {
		return fmt.Errorf("%w: empty vault path", ErrInvalidStorageConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}

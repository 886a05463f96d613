// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/atotto/clipboard"
)

type systemClipboard struct {
	unsupported bool
	writeAll    func(text string) error
	logger      *logger.Logger
}

// NewSystemClipboard returns a [Clipboard] backed by the platform clipboard.
// Whether a backend exists is checked once, at construction.
func NewSystemClipboard(log *logger.Logger) Clipboard {
	return &systemClipboard{
		unsupported: clipboard.Unsupported,
		writeAll:    clipboard.WriteAll,
		logger:      log,
	}
}

func (c *systemClipboard) Copy(text string) error {
	if c.unsupported {
		c.logger.Warn().Str("func", "systemClipboard.Copy").Msg("no clipboard backend available")
		return ErrClipboardUnsupported
	}

	if err := c.writeAll(text); err != nil {
		c.logger.Err(err).Str("func", "systemClipboard.Copy").Msg("clipboard write failed")
		return fmt.Errorf("%w: %w", ErrClipboardWrite, err)
	}

	c.logger.Debug().Str("func", "systemClipboard.Copy").Int("length", len(text)).Msg("copied to clipboard")
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/session"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/terminal"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/google/uuid"
)

// App is one run of the vault: a terminal session over one vault file.
type App struct {
	controller *session.Controller
	logger     *logger.Logger
}

// NewApp wires the vault storage, clipboard and terminal UI around a
// session controller. Stdin and stderr must be terminals; stdout is left
// alone so the program can be run inside scripts that capture it.
func NewApp(cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	log = log.WithSession(uuid.NewString())

	vault, err := store.NewVaultStorage(cfg.Storage, crypto.NewKeyChainService(), log)
	if err != nil {
		return nil, fmt.Errorf("create vault storage: %w", err)
	}

	term, err := terminal.NewTerminal(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}

	keys, err := terminal.NewKeyReader(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("open keyboard: %w", err)
	}

	ui := tui.New(term, keys, os.Stdin, os.Stderr, log)
	controller := session.NewController(vault, adapter.NewSystemClipboard(log), ui, cfg.App, log)

	return newApp(controller, log), nil
}

func newApp(controller *session.Controller, log *logger.Logger) *App {
	return &App{
		controller: controller,
		logger:     log,
	}
}

// Run blocks until the session ends.
func (a *App) Run(ctx context.Context) error {
	start := time.Now()
	a.logger.Info().Str("func", "App.Run").Msg("session started")

	if err := a.controller.Run(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Dur("duration", time.Since(start)).Msg("session failed")
		return err
	}

	a.logger.Info().Str("func", "App.Run").Dur("duration", time.Since(start)).Msg("session finished")
	return nil
}

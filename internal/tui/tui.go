// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/terminal"
	"github.com/MKhiriev/go-pass-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the interactive front end of the vault: the entry menu and the
// password and entry prompts.
type TUI struct {
	term     terminal.Terminal
	renderer *terminal.Renderer
	keys     terminal.KeyReader
	in       io.Reader
	out      io.Writer
	logger   *logger.Logger
}

// New wires a TUI. The menu draws on term and reads keys from keys; the
// prompts run as bubbletea programs reading in and writing out.
func New(term terminal.Terminal, keys terminal.KeyReader, in io.Reader, out io.Writer, log *logger.Logger) *TUI {
	return &TUI{
		term:     term,
		renderer: terminal.NewRenderer(term, terminal.NewTheme(out)),
		keys:     keys,
		in:       in,
		out:      out,
		logger:   log,
	}
}

// Select shows the entry menu and blocks until the user picks a command.
// ok is false when the user cancelled.
func (t *TUI) Select(ctx context.Context, req MenuRequest) (Command, bool, error) {
	menu, err := newSelectMenu(t.renderer, t.keys, req)
	if err != nil {
		return Command{}, false, err
	}

	cmd, ok, err := menu.run(ctx)
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Select").Msg("menu failed")
		return Command{}, false, err
	}

	t.logger.Debug().Str("func", "TUI.Select").Bool("ok", ok).Stringer("command", cmd).Msg("menu returned")
	return cmd, ok, nil
}

// PromptPassword asks for the master password. Returns [ErrUserQuit] when
// the user leaves the prompt.
func (t *TUI) PromptPassword(ctx context.Context, req PasswordRequest) (string, error) {
	model := newPasswordModel(req)
	if err := t.runProgram(ctx, model); err != nil {
		return "", err
	}
	if model.canceled || !model.done {
		return "", ErrUserQuit
	}
	return model.Value(), nil
}

// PromptEntry shows the entry form. Returns [ErrPromptCancelled] when the
// user leaves the form.
func (t *TUI) PromptEntry(ctx context.Context, req EntryRequest) (models.Entry, error) {
	model := newEntryModel(req)
	if err := t.runProgram(ctx, model); err != nil {
		return models.Entry{}, err
	}
	if model.canceled || !model.done {
		return models.Entry{}, ErrPromptCancelled
	}
	return model.Entry(), nil
}

// ClearScreen erases the terminal.
func (t *TUI) ClearScreen() error {
	return t.term.ClearScreen()
}

func (t *TUI) runProgram(ctx context.Context, model tea.Model) error {
	_, err := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	).Run()
	if err == nil {
		return nil
	}

	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	t.logger.Err(err).Str("func", "TUI.runProgram").Msg("prompt failed")
	return fmt.Errorf("run prompt: %w", err)
}

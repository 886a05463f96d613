// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
)

const (
	copiedNotice = "Password copied to clipboard"

	titleNewVault   = "Create a new vault"
	titleUnlock     = "Unlock vault"
	titleLocked     = "Session locked after inactivity"
	titleFirstEntry = "Add your first entry"
	titleNewEntry   = "New entry"
	titleModify     = "Modify entry"

	wrongPasswordMsg = "Wrong password, try again"
)

// Controller runs one interactive vault session.
type Controller struct {
	store     VaultStore
	clipboard Clipboard
	ui        UI

	inactivityDelay time.Duration
	now             func() time.Time

	state  *State
	logger *logger.Logger
}

// NewController builds a Controller.
func NewController(vault VaultStore, clipboard Clipboard, ui UI, cfg config.App, log *logger.Logger) *Controller {
	return &Controller{
		store:           vault,
		clipboard:       clipboard,
		ui:              ui,
		inactivityDelay: cfg.InactivityDelay,
		now:             time.Now,
		state:           &State{},
		logger:          log,
	}
}

// Run unlocks the vault and serves the menu until the user quits. Leaving
// the menu or a password prompt ends the session with a nil error.
func (c *Controller) Run(ctx context.Context) error {
	if err := c.ui.ClearScreen(); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}

	if err := c.unlock(ctx); err != nil {
		return c.quitOnCancel(err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if c.state.Len() == 0 {
			if err := c.addFirstEntry(ctx); err != nil {
				return c.quitOnCancel(err)
			}
			c.state.Touch(c.now())
			continue
		}

		req := c.menuRequest()
		c.state.Touch(c.now())

		cmd, ok, err := c.ui.Select(ctx, req)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		if !ok {
			c.logger.Info().Str("func", "Controller.Run").Msg("user left the menu")
			return nil
		}

		c.state.ClearCopied()

		if idle := c.state.IdleFor(c.now()); idle >= c.inactivityDelay {
			c.logger.Info().Str("func", "Controller.Run").Dur("idle", idle).Msg("inactivity threshold reached, locking")
			if err := c.reauthenticate(ctx); err != nil {
				return c.quitOnCancel(err)
			}
		}

		if err := c.dispatch(ctx, cmd); err != nil {
			return err
		}

		if err := c.ui.ClearScreen(); err != nil {
			return fmt.Errorf("clear screen: %w", err)
		}
	}
}

// State exposes the session state.
func (c *Controller) State() *State {
	return c.state
}

func (c *Controller) menuRequest() tui.MenuRequest {
	notices := c.state.TakeNotices()
	if c.state.Copied().IsSet() {
		notices = append([]string{copiedNotice}, notices...)
	}

	return tui.MenuRequest{
		Rows:    tui.BuildRows(c.state.entries),
		Default: c.state.Copied(),
		Notices: notices,
	}
}

func (c *Controller) unlock(ctx context.Context) error {
	exists, err := c.store.Exists()
	if err != nil {
		return fmt.Errorf("check vault: %w", err)
	}

	if exists {
		return c.authenticate(ctx, titleUnlock)
	}

	c.logger.Info().Str("func", "Controller.unlock").Msg("no vault found, creating a new one")
	password, err := c.ui.PromptPassword(ctx, tui.PasswordRequest{Title: titleNewVault, Confirm: true})
	if err != nil {
		return err
	}

	c.state.Unlock(nil, password)
	return nil
}

// authenticate prompts until the vault opens with the entered password.
func (c *Controller) authenticate(ctx context.Context, title string) error {
	errMsg := ""
	for {
		password, err := c.ui.PromptPassword(ctx, tui.PasswordRequest{Title: title, Error: errMsg})
		if err != nil {
			return err
		}

		entries, err := c.store.Load(ctx, password)
		if errors.Is(err, store.ErrWrongPassword) {
			c.logger.Warn().Str("func", "Controller.authenticate").Msg("wrong master password")
			errMsg = wrongPasswordMsg
			continue
		}
		if err != nil {
			return fmt.Errorf("load vault: %w", err)
		}

		c.state.Unlock(entries, password)
		c.logger.Info().Str("func", "Controller.authenticate").Int("entries", len(entries)).Msg("vault unlocked")
		return nil
	}
}

func (c *Controller) reauthenticate(ctx context.Context) error {
	if err := c.ui.ClearScreen(); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	if err := c.authenticate(ctx, titleLocked); err != nil {
		return err
	}
	c.state.Touch(c.now())
	return nil
}

func (c *Controller) addFirstEntry(ctx context.Context) error {
	if err := c.ui.ClearScreen(); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}

	entry, err := c.ui.PromptEntry(ctx, tui.EntryRequest{Title: titleFirstEntry})
	if err != nil {
		return err
	}

	c.state.Append(entry)
	if err := c.persist(ctx); err != nil {
		_, _ = c.state.Remove(c.state.Len() - 1)
		return fmt.Errorf("save first entry: %w", err)
	}

	return c.ui.ClearScreen()
}

func (c *Controller) dispatch(ctx context.Context, cmd tui.Command) error {
	if cmd.HasIndex() {
		if _, err := c.state.Entry(cmd.Index); err != nil {
			return fmt.Errorf("%s: %w", cmd, err)
		}
	}

	c.logger.Debug().Str("func", "Controller.dispatch").Stringer("command", cmd).Msg("dispatching")

	switch cmd.Kind {
	case tui.CommandCopy:
		c.copy(cmd.Index)
		return nil
	case tui.CommandAdd:
		return c.add(ctx)
	case tui.CommandDelete:
		return c.delete(ctx, cmd.Index)
	case tui.CommandModify:
		return c.modify(ctx, cmd.Index)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

func (c *Controller) copy(i int) {
	entry := c.state.entries[i]
	if err := c.clipboard.Copy(entry.Secret()); err != nil {
		c.logger.Err(err).Str("func", "Controller.copy").Msg("clipboard copy failed")
		c.state.AddNotice(fmt.Sprintf("Could not copy to clipboard: %v", err))
		return
	}
	c.state.MarkCopied(i)
}

func (c *Controller) add(ctx context.Context) error {
	if err := c.ui.ClearScreen(); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}

	entry, err := c.ui.PromptEntry(ctx, tui.EntryRequest{Title: titleNewEntry})
	if errors.Is(err, tui.ErrPromptCancelled) {
		return nil
	}
	if err != nil {
		return err
	}

	c.state.Append(entry)
	if err := c.persist(ctx); err != nil {
		_, _ = c.state.Remove(c.state.Len() - 1)
	}
	return nil
}

func (c *Controller) delete(ctx context.Context, i int) error {
	removed, err := c.state.Remove(i)
	if err != nil {
		return err
	}

	if err := c.persist(ctx); err != nil {
		return c.state.Insert(i, removed)
	}
	return nil
}

func (c *Controller) modify(ctx context.Context, i int) error {
	if err := c.ui.ClearScreen(); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}

	current := c.state.entries[i]
	updated, err := c.ui.PromptEntry(ctx, tui.EntryRequest{Title: titleModify, Initial: &current})
	if errors.Is(err, tui.ErrPromptCancelled) {
		return nil
	}
	if err != nil {
		return err
	}

	previous, err := c.state.Replace(i, updated)
	if err != nil {
		return err
	}
	if err := c.persist(ctx); err != nil {
		_, err = c.state.Replace(i, previous)
		return err
	}
	return nil
}

// persist writes the whole list. A failure is logged and queued as a notice;
// the caller rolls back its change.
func (c *Controller) persist(ctx context.Context) error {
	err := c.store.Save(ctx, c.state.Entries(), c.state.masterPassword)
	if err != nil {
		c.logger.Err(err).Str("func", "Controller.persist").Msg("saving vault failed")
		c.state.AddNotice(fmt.Sprintf("Could not save vault: %v", err))
		return err
	}

	c.logger.Debug().Str("func", "Controller.persist").Int("entries", c.state.Len()).Msg("vault saved")
	return nil
}

func (c *Controller) quitOnCancel(err error) error {
	if errors.Is(err, tui.ErrUserQuit) || errors.Is(err, tui.ErrPromptCancelled) {
		c.logger.Info().Str("func", "Controller.quitOnCancel").Msg("user quit")
		return nil
	}
	return err
}

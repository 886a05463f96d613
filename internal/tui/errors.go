package tui

import "errors"

var (
	// ErrUserQuit is returned when the user abandons a password prompt.
	ErrUserQuit = errors.New("user quit")
	// ErrPromptCancelled is returned when the user abandons an entry form.
	ErrPromptCancelled = errors.New("prompt cancelled")
	// ErrEmptyMenu is returned when a menu is requested for no entries.
	ErrEmptyMenu = errors.New("menu has no entries")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package terminal owns the interactive terminal of go-pass-vault.
//
// It provides three pieces:
//
//   - [Terminal], a line-oriented output handle backed by termenv on stderr,
//     able to erase the last n lines or the whole screen and to report its
//     size through golang.org/x/term;
//   - [Renderer], an incremental renderer that remembers how many lines it
//     has drawn, split into a prompt part and a body part, so the body can be
//     erased and redrawn without touching the prompt;
//   - [KeyReader], which holds the keyboard in raw mode while a menu is open,
//     reads one key press at a time (cancelled with the context) and
//     decodes it into a bubbletea key message so callers can match it against
//     bubbles/key bindings.
//
// Nothing in this package is safe for concurrent use.
package terminal

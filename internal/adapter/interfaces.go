// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides abstractions over the operating-system services
// the vault talks to outside of its own file.
//
// The primary abstraction is [Clipboard], which decouples the session from
// the platform clipboard. The package ships a system implementation
// ([NewSystemClipboard]) backed by github.com/atotto/clipboard, which shells
// out to pbcopy, xclip, xsel, wl-copy or the Windows API depending on the
// platform.
//
// Errors are mapped to the sentinel values in errors.go so that callers can
// use [errors.Is] without knowing the backend.
package adapter

// Clipboard places text on the system clipboard.
type Clipboard interface {
	// Copy replaces the clipboard contents with text. Returns
	// [ErrClipboardUnsupported] when no clipboard backend is available and
	// [ErrClipboardWrite] when the backend fails.
	Copy(text string) error
}

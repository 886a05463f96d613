package adapter

import "errors"

var (
	ErrClipboardUnsupported = errors.New("clipboard is not supported on this system")
	ErrClipboardWrite       = errors.New("failed to write to clipboard")
)

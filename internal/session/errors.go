package session

import "errors"

var (
	ErrEntryIndexOutOfRange = errors.New("entry index out of range")
	ErrUnknownCommand       = errors.New("unknown menu command")
)

package terminal

import "errors"

var (
	ErrNotTerminal   = errors.New("not a terminal")
	ErrTerminalSize  = errors.New("failed to query terminal size")
	ErrTerminalWrite = errors.New("failed to write to terminal")
	ErrRawMode       = errors.New("failed to switch terminal to raw mode")
	ErrReadingInput  = errors.New("failed to read terminal input")
	ErrReaderClosed  = errors.New("key reader is not open")
)

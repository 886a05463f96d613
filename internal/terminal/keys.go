// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package terminal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/cancelreader"
	"golang.org/x/term"
)

// KeyReader delivers single key presses to the menu.
type KeyReader interface {
	// Open switches the terminal to raw mode until the returned restore
	// function is called. Keys pressed while the menu redraws are held in
	// the input queue instead of being echoed.
	Open() (restore func() error, err error)
	// ReadKey blocks until a key is pressed or ctx is done.
	ReadKey(ctx context.Context) (tea.KeyMsg, error)
}

type rawKeyReader struct {
	in     *os.File
	reader cancelreader.CancelReader
}

// NewKeyReader returns a [KeyReader] reading from in, which must be a TTY.
func NewKeyReader(in *os.File) (KeyReader, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return nil, fmt.Errorf("%w: %s", ErrNotTerminal, in.Name())
	}
	return &rawKeyReader{in: in}, nil
}

func (r *rawKeyReader) Open() (func() error, error) {
	fd := int(r.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRawMode, err)
	}

	reader, err := cancelreader.NewReader(r.in)
	if err != nil {
		_ = term.Restore(fd, state)
		return nil, fmt.Errorf("%w: %w", ErrReadingInput, err)
	}
	r.reader = reader

	return func() error {
		r.reader = nil
		closeErr := reader.Close()
		if err := term.Restore(fd, state); err != nil {
			return fmt.Errorf("%w: %w", ErrRawMode, err)
		}
		return closeErr
	}, nil
}

func (r *rawKeyReader) ReadKey(ctx context.Context) (tea.KeyMsg, error) {
	if r.reader == nil {
		return tea.KeyMsg{}, ErrReaderClosed
	}
	return readKey(ctx, r.reader)
}

// readKey reads from in until the bytes form a known key. A done ctx cancels
// the pending read.
func readKey(ctx context.Context, in cancelreader.CancelReader) (tea.KeyMsg, error) {
	if err := ctx.Err(); err != nil {
		return tea.KeyMsg{}, err
	}

	stop := context.AfterFunc(ctx, func() { in.Cancel() })
	defer stop()

	buf := make([]byte, 16)
	for {
		n, err := in.Read(buf)
		if err != nil {
			if errors.Is(err, cancelreader.ErrCanceled) && ctx.Err() != nil {
				return tea.KeyMsg{}, ctx.Err()
			}
			return tea.KeyMsg{}, fmt.Errorf("%w: %w", ErrReadingInput, err)
		}
		if msg, ok := decodeKey(buf[:n]); ok {
			return msg, nil
		}
	}
}

var escapeSequences = map[string]tea.KeyType{
	"\x1b[A":  tea.KeyUp,
	"\x1b[B":  tea.KeyDown,
	"\x1b[C":  tea.KeyRight,
	"\x1b[D":  tea.KeyLeft,
	"\x1bOA":  tea.KeyUp,
	"\x1bOB":  tea.KeyDown,
	"\x1bOC":  tea.KeyRight,
	"\x1bOD":  tea.KeyLeft,
	"\x1b[H":  tea.KeyHome,
	"\x1b[F":  tea.KeyEnd,
	"\x1bOH":  tea.KeyHome,
	"\x1bOF":  tea.KeyEnd,
	"\x1b[1~": tea.KeyHome,
	"\x1b[4~": tea.KeyEnd,
	"\x1b[7~": tea.KeyHome,
	"\x1b[8~": tea.KeyEnd,
	"\x1b[3~": tea.KeyDelete,
	"\x1b[5~": tea.KeyPgUp,
	"\x1b[6~": tea.KeyPgDown,
}

// decodeKey turns the bytes of one read into a key message. ok is false for
// input that does not map to a key the menu knows about.
func decodeKey(b []byte) (tea.KeyMsg, bool) {
	if len(b) == 0 {
		return tea.KeyMsg{}, false
	}

	if b[0] == 0x1b {
		if len(b) == 1 {
			return tea.KeyMsg{Type: tea.KeyEsc}, true
		}
		if t, ok := escapeSequences[string(b)]; ok {
			return tea.KeyMsg{Type: t}, true
		}
		return tea.KeyMsg{}, false
	}

	if len(b) == 1 {
		switch b[0] {
		case 0x03:
			return tea.KeyMsg{Type: tea.KeyCtrlC}, true
		case '\r', '\n':
			return tea.KeyMsg{Type: tea.KeyEnter}, true
		case '\t':
			return tea.KeyMsg{Type: tea.KeyTab}, true
		case 0x7f, 0x08:
			return tea.KeyMsg{Type: tea.KeyBackspace}, true
		case ' ':
			return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, true
		}
		if b[0] < 0x20 {
			return tea.KeyMsg{}, false
		}
	}

	runes := make([]rune, 0, len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError || r < 0x20 {
			return tea.KeyMsg{}, false
		}
		runes = append(runes, r)
		b = b[size:]
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: runes}, true
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Terminal is the output handle the menu draws on.
type Terminal interface {
	// WriteLine writes line and moves to the start of the next line. Line
	// endings carry their own carriage return, so output stays aligned
	// while the key reader holds the terminal in raw mode.
	WriteLine(line string) error
	// ClearLastLines erases the n lines above the cursor and leaves the
	// cursor at the start of the first erased line.
	ClearLastLines(n int) error
	// ClearScreen erases the whole screen and homes the cursor.
	ClearScreen() error
	// Size reports the terminal height and width in cells.
	Size() (rows, cols int, err error)
}

type stdTerminal struct {
	file   *os.File
	output *termenv.Output
}

// NewTerminal returns a [Terminal] writing to f, which must be a TTY.
func NewTerminal(f *os.File) (Terminal, error) {
	if !term.IsTerminal(int(f.Fd())) {
		return nil, fmt.Errorf("%w: %s", ErrNotTerminal, f.Name())
	}

	return &stdTerminal{
		file:   f,
		output: termenv.NewOutput(f),
	}, nil
}

func (t *stdTerminal) WriteLine(line string) error {
	if _, err := io.WriteString(t.output, strings.ReplaceAll(line, "\n", "\r\n")+"\r\n"); err != nil {
		return fmt.Errorf("%w: %w", ErrTerminalWrite, err)
	}
	return nil
}

func (t *stdTerminal) ClearLastLines(n int) error {
	if n <= 0 {
		return nil
	}
	t.output.ClearLines(n)
	return nil
}

func (t *stdTerminal) ClearScreen() error {
	t.output.ClearScreen()
	return nil
}

func (t *stdTerminal) Size() (int, int, error) {
	cols, rows, err := term.GetSize(int(t.file.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrTerminalSize, err)
	}
	return rows, cols, nil
}

package tui

import (
	"context"
	"errors"
	"io"

	"github.com/MKhiriev/go-pass-vault/internal/terminal"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoMoreKeys = errors.New("no more scripted keys")

// screen is an in-memory terminal holding the lines currently visible.
type screen struct {
	lines   []string
	cleared []int
	rows    int
	cols    int
}

func newScreen(rows, cols int) *screen {
	return &screen{rows: rows, cols: cols}
}

func (s *screen) WriteLine(line string) error {
	s.lines = append(s.lines, line)
	return nil
}

func (s *screen) ClearLastLines(n int) error {
	s.cleared = append(s.cleared, n)
	s.lines = s.lines[:len(s.lines)-min(n, len(s.lines))]
	return nil
}

func (s *screen) ClearScreen() error {
	s.lines = nil
	return nil
}

func (s *screen) Size() (int, int, error) {
	return s.rows, s.cols, nil
}

func (s *screen) snapshot() []string {
	return append([]string(nil), s.lines...)
}

// scriptedKeys replays key presses and records the screen before each read.
type scriptedKeys struct {
	screen    *screen
	keys      []tea.KeyMsg
	snapshots [][]string
	err       error
	openErr   error

	raw      bool
	opened   int
	restored int
	rawReads []bool
}

func (k *scriptedKeys) Open() (func() error, error) {
	if k.openErr != nil {
		return nil, k.openErr
	}
	k.opened++
	k.raw = true
	return func() error {
		k.restored++
		k.raw = false
		return nil
	}, nil
}

func (k *scriptedKeys) ReadKey(ctx context.Context) (tea.KeyMsg, error) {
	if err := ctx.Err(); err != nil {
		return tea.KeyMsg{}, err
	}

	k.snapshots = append(k.snapshots, k.screen.snapshot())
	k.rawReads = append(k.rawReads, k.raw)
	if len(k.keys) == 0 {
		if k.err != nil {
			return tea.KeyMsg{}, k.err
		}
		return tea.KeyMsg{}, errNoMoreKeys
	}
	msg := k.keys[0]
	k.keys = k.keys[1:]
	return msg, nil
}

// blockingKeys never delivers a key; ReadKey returns only once ctx is done.
type blockingKeys struct {
	waiting  chan struct{}
	restored chan struct{}
}

func newBlockingKeys() *blockingKeys {
	return &blockingKeys{
		waiting:  make(chan struct{}),
		restored: make(chan struct{}),
	}
}

func (k *blockingKeys) Open() (func() error, error) {
	return func() error {
		close(k.restored)
		return nil
	}, nil
}

func (k *blockingKeys) ReadKey(ctx context.Context) (tea.KeyMsg, error) {
	close(k.waiting)
	<-ctx.Done()
	return tea.KeyMsg{}, ctx.Err()
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestRenderer(s *screen) *terminal.Renderer {
	return terminal.NewRenderer(s, terminal.NewTheme(io.Discard))
}

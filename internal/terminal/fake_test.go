package terminal

import "errors"

var errFakeSize = errors.New("fake size failure")

// fakeTerminal keeps the visible lines in memory so tests can check exactly
// what a sequence of writes and clears leaves on screen.
type fakeTerminal struct {
	lines   []string
	cleared []int
	rows    int
	cols    int
	sizeErr bool
}

func newFakeTerminal(rows, cols int) *fakeTerminal {
	return &fakeTerminal{rows: rows, cols: cols}
}

func (f *fakeTerminal) WriteLine(line string) error {
	f.lines = append(f.lines, line)
	return nil
}

func (f *fakeTerminal) ClearLastLines(n int) error {
	f.cleared = append(f.cleared, n)
	if n > len(f.lines) {
		n = len(f.lines)
	}
	f.lines = f.lines[:len(f.lines)-n]
	return nil
}

func (f *fakeTerminal) ClearScreen() error {
	f.lines = nil
	return nil
}

func (f *fakeTerminal) Size() (int, int, error) {
	if f.sizeErr {
		return 0, 0, errFakeSize
	}
	return f.rows, f.cols, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/terminal"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuRequest is everything the menu needs for one render.
type MenuRequest struct {
	Rows    Rows
	Default Highlight
	Notices []string
}

// selectMenu draws the entry list through a [terminal.Renderer] and turns
// key presses into a [Command].
type selectMenu struct {
	renderer *terminal.Renderer
	keys     terminal.KeyReader

	rows     Rows
	notices  []string
	cursor   int
	pageSize int
	page     int
}

func newSelectMenu(r *terminal.Renderer, k terminal.KeyReader, req MenuRequest) (*selectMenu, error) {
	if len(req.Rows.Items) == 0 {
		return nil, ErrEmptyMenu
	}

	m := &selectMenu{
		renderer: r,
		keys:     k,
		rows:     req.Rows,
		notices:  req.Notices,
		cursor:   RowIndex(0),
	}
	if i, ok := req.Default.Get(); ok {
		m.cursor = m.clamp(RowIndex(i))
	}
	return m, nil
}

// run blocks until the user picks a command or cancels. ok is false on
// cancellation. The keyboard stays in raw mode for the whole run and the
// menu is erased before returning.
func (m *selectMenu) run(ctx context.Context) (Command, bool, error) {
	restore, err := m.keys.Open()
	if err != nil {
		return Command{}, false, err
	}

	cmd, ok, err := m.loop(ctx)
	if restoreErr := restore(); restoreErr != nil && err == nil {
		return Command{}, false, restoreErr
	}
	return cmd, ok, err
}

func (m *selectMenu) loop(ctx context.Context) (Command, bool, error) {
	if err := m.resize(); err != nil {
		return Command{}, false, err
	}
	if err := m.drawAll(); err != nil {
		return Command{}, false, err
	}

	for {
		msg, err := m.keys.ReadKey(ctx)
		if err != nil {
			return Command{}, false, m.finish(err)
		}

		cmd, done, ok := m.handle(msg)
		if done {
			return cmd, ok, m.finish(nil)
		}

		if err := m.redraw(); err != nil {
			return Command{}, false, err
		}
	}
}

// handle applies one key press. done reports that the menu is finished; ok
// distinguishes a command from a cancellation.
func (m *selectMenu) handle(msg tea.KeyMsg) (cmd Command, done bool, ok bool) {
	entry := EntryIndex(m.cursor)

	switch {
	case key.Matches(msg, keys.up):
		m.cursor = m.clamp(m.cursor - 1)
	case key.Matches(msg, keys.down):
		m.cursor = m.clamp(m.cursor + 1)
	case key.Matches(msg, keys.pageUp):
		m.cursor = m.clamp(m.cursor - m.pageSize)
	case key.Matches(msg, keys.pageDown):
		m.cursor = m.clamp(m.cursor + m.pageSize)
	case key.Matches(msg, keys.home):
		m.cursor = m.firstRow()
	case key.Matches(msg, keys.end):
		m.cursor = m.lastRow()
	case key.Matches(msg, keys.copy):
		return CopyCommand(entry), true, true
	case key.Matches(msg, keys.add):
		return AddCommand(), true, true
	case key.Matches(msg, keys.delete):
		return DeleteCommand(entry), true, true
	case key.Matches(msg, keys.modify):
		return ModifyCommand(entry), true, true
	case key.Matches(msg, keys.cancel):
		return Command{}, true, false
	}
	return Command{}, false, false
}

func (m *selectMenu) firstRow() int {
	return RowIndex(0)
}

func (m *selectMenu) lastRow() int {
	return RowIndex(len(m.rows.Items) - 1)
}

// clamp keeps a row inside the entry rows.
func (m *selectMenu) clamp(row int) int {
	return max(m.firstRow(), min(row, m.lastRow()))
}

// resize derives the page size from the terminal height. One row is kept
// free for the cursor line below the footer.
func (m *selectMenu) resize() error {
	rows, _, err := m.renderer.Size()
	if err != nil {
		return err
	}

	m.pageSize = max(1, rows-HeaderRows-len(m.notices)-FooterRows-1)
	m.page = m.pageOf(m.cursor)
	return nil
}

func (m *selectMenu) pageOf(row int) int {
	return EntryIndex(row) / m.pageSize
}

func (m *selectMenu) pages() int {
	return (len(m.rows.Items) + m.pageSize - 1) / m.pageSize
}

// redraw repaints after a cursor move. Moves inside the current page only
// repaint the body; a page change repaints everything.
func (m *selectMenu) redraw() error {
	if page := m.pageOf(m.cursor); page != m.page {
		m.page = page
		if err := m.renderer.Clear(); err != nil {
			return err
		}
		return m.drawAll()
	}

	if err := m.renderer.ClearPreservePrompt(m.bodyWidths()); err != nil {
		return err
	}
	return m.drawBody()
}

func (m *selectMenu) drawAll() error {
	for i, line := range m.rows.Header {
		var err error
		if i == 0 {
			err = m.renderer.SelectPrompt(line, m.page+1, m.pages())
		} else {
			err = m.renderer.Prompt(line)
		}
		if err != nil {
			return fmt.Errorf("render header: %w", err)
		}
	}

	for _, n := range m.notices {
		if err := m.renderer.Notice(n); err != nil {
			return fmt.Errorf("render notice: %w", err)
		}
	}

	return m.drawBody()
}

func (m *selectMenu) drawBody() error {
	first, last := m.pageBounds()
	for i := first; i < last; i++ {
		if err := m.renderer.SelectPromptItem(m.rows.Items[i], RowIndex(i) == m.cursor); err != nil {
			return fmt.Errorf("render item: %w", err)
		}
	}

	if err := m.renderer.Footer(m.rows.Footer); err != nil {
		return fmt.Errorf("render footer: %w", err)
	}
	return nil
}

// pageBounds returns the half-open range of entry indexes on the current
// page.
func (m *selectMenu) pageBounds() (int, int) {
	first := m.page * m.pageSize
	last := min(first+m.pageSize, len(m.rows.Items))
	return first, last
}

func (m *selectMenu) bodyWidths() []int {
	first, last := m.pageBounds()
	widths := make([]int, 0, last-first+1)
	for i := first; i < last; i++ {
		widths = append(widths, lipgloss.Width(m.rows.Items[i]))
	}
	return append(widths, lipgloss.Width(m.rows.Footer))
}

// finish erases the menu. cause, when set, wins over a clearing error.
func (m *selectMenu) finish(cause error) error {
	if err := m.renderer.Clear(); err != nil && cause == nil {
		return err
	}
	return cause
}

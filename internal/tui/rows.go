// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	// HeaderRows is the number of rows drawn above the first entry.
	HeaderRows = 3
	// FooterRows is the number of rows drawn below the last entry.
	FooterRows = 1
)

// Rows is the display projection of the entry list: a fixed header, one item
// per entry holding its label, and a footer. It is rebuilt before every
// render and never stored.
type Rows struct {
	Header [HeaderRows]string
	Items  []string
	Footer string
}

// BuildRows projects entries into menu rows, preserving their order.
func BuildRows(entries []models.Entry) Rows {
	items := make([]string, len(entries))
	for i, e := range entries {
		items[i] = e.Label()
	}

	return Rows{
		Header: [HeaderRows]string{
			appTitle,
			menuHotKeys,
			uiDivider,
		},
		Items:  items,
		Footer: entriesCount(len(entries)),
	}
}

// Len returns the total number of rows, header and footer included.
func (r Rows) Len() int {
	return HeaderRows + len(r.Items) + FooterRows
}

// Lines returns every row in display order.
func (r Rows) Lines() []string {
	lines := make([]string, 0, r.Len())
	lines = append(lines, r.Header[:]...)
	lines = append(lines, r.Items...)
	lines = append(lines, r.Footer)
	return lines
}

// EntryIndex converts a row position into the index of the entry drawn on
// it. Only rows strictly between the header and the footer map to entries.
func EntryIndex(row int) int {
	return row - HeaderRows
}

// RowIndex converts an entry index into the row it is drawn on.
func RowIndex(entry int) int {
	return entry + HeaderRows
}

func entriesCount(n int) string {
	if n == 1 {
		return "1 entry"
	}
	return fmt.Sprintf("%d entries", n)
}

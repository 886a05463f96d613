// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package terminal

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// PrefixWidth is the width of the marker printed in front of every menu item.
const PrefixWidth = 2

const (
	activePrefix   = "> "
	inactivePrefix = "  "
)

// Theme formats menu lines. Every method returns a single line without a
// trailing newline.
type Theme struct {
	prompt   lipgloss.Style
	paging   lipgloss.Style
	notice   lipgloss.Style
	active   lipgloss.Style
	inactive lipgloss.Style
	footer   lipgloss.Style
}

// NewTheme builds the default theme for output written to w. The color
// profile is detected from w, so a non-TTY writer produces plain text.
func NewTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)

	return Theme{
		prompt:   r.NewStyle().Bold(true),
		paging:   r.NewStyle().Faint(true),
		notice:   r.NewStyle().Foreground(lipgloss.Color("2")),
		active:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		inactive: r.NewStyle(),
		footer:   r.NewStyle().Faint(true),
	}
}

func (t Theme) formatPrompt(prompt string) string {
	return t.prompt.Render(prompt)
}

func (t Theme) formatPaging(page, pages int) string {
	return t.paging.Render(pagingSuffix(page, pages))
}

func (t Theme) formatNotice(text string) string {
	return t.notice.Render(text)
}

func (t Theme) formatItem(text string, active bool) string {
	if active {
		return t.active.Render(activePrefix + text)
	}
	return t.inactive.Render(inactivePrefix + text)
}

func (t Theme) formatFooter(text string) string {
	return t.footer.Render(text)
}

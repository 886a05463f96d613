// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package terminal

import (
	"fmt"
	"math"
	"strings"
)

// Renderer draws menu lines on a [Terminal] and remembers how many it drew.
//
// Lines are counted in two buckets. height holds the body drawn since the
// last prompt; promptHeight holds every prompt line, including the body
// written before it. Clear erases both buckets, ClearPreservePrompt only the
// body.
type Renderer struct {
	term  Terminal
	theme Theme

	height       int
	promptHeight int
	// promptsResetHeight folds the body into promptHeight on every prompt.
	promptsResetHeight bool
}

// NewRenderer returns a Renderer drawing on t with theme.
func NewRenderer(t Terminal, theme Theme) *Renderer {
	return &Renderer{
		term:               t,
		theme:              theme,
		promptsResetHeight: true,
	}
}

// Height returns the number of body lines currently on screen.
func (r *Renderer) Height() int {
	return r.height
}

// PromptHeight returns the number of prompt lines currently on screen.
func (r *Renderer) PromptHeight() int {
	return r.promptHeight
}

// Size reports the size of the underlying terminal.
func (r *Renderer) Size() (rows, cols int, err error) {
	return r.term.Size()
}

func (r *Renderer) writeLine(line string) error {
	r.height += strings.Count(line, "\n") + 1
	return r.term.WriteLine(line)
}

func (r *Renderer) writePrompt(line string) error {
	if err := r.writeLine(line); err != nil {
		return err
	}
	if r.promptsResetHeight {
		r.promptHeight += r.height
		r.height = 0
	}
	return nil
}

// Prompt writes a prompt line.
func (r *Renderer) Prompt(prompt string) error {
	return r.writePrompt(r.theme.formatPrompt(prompt))
}

// SelectPrompt writes a prompt line. When pages > 1 the line ends with a
// page indicator.
func (r *Renderer) SelectPrompt(prompt string, page, pages int) error {
	line := r.theme.formatPrompt(prompt)
	if pages > 1 {
		line += r.theme.formatPaging(page, pages)
	}
	return r.writePrompt(line)
}

// Notice writes a transient message as part of the prompt.
func (r *Renderer) Notice(text string) error {
	return r.writePrompt(r.theme.formatNotice(text))
}

// SelectPromptItem writes one menu item; active items get the cursor marker.
func (r *Renderer) SelectPromptItem(text string, active bool) error {
	return r.writeLine(r.theme.formatItem(text, active))
}

// Footer writes a body line below the items.
func (r *Renderer) Footer(text string) error {
	return r.writeLine(r.theme.formatFooter(text))
}

// Clear erases everything drawn since the last clear.
func (r *Renderer) Clear() error {
	if err := r.term.ClearLastLines(r.height + r.promptHeight); err != nil {
		return err
	}
	r.height = 0
	r.promptHeight = 0
	return nil
}

// ClearPreservePrompt erases the body and keeps the prompt lines. widths
// holds the display width of each body line without its item prefix; lines
// wider than the terminal wrapped onto extra rows, which are erased as well.
func (r *Renderer) ClearPreservePrompt(widths []int) error {
	extra := 0
	if len(widths) > 0 {
		_, cols, err := r.term.Size()
		if err != nil {
			return err
		}
		extra = wrappedLines(widths, cols)
	}

	if err := r.term.ClearLastLines(r.height + extra); err != nil {
		return err
	}
	r.height = 0
	return nil
}

func wrappedLines(widths []int, cols int) int {
	if cols <= 0 {
		return 0
	}

	extra := 0
	for _, w := range widths {
		if w > cols {
			extra += int(math.Ceil(float64(w+PrefixWidth)/float64(cols))) - 1
		}
	}
	return extra
}

func pagingSuffix(page, pages int) string {
	return fmt.Sprintf(" [Page %d/%d]", page, pages)
}

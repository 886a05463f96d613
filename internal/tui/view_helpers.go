package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	appTitle    = "go-pass-vault"
	menuHotKeys = "enter: copy │ a: add │ d: delete │ m: modify │ q: quit"
	uiDivider   = "──────────────────────────────────────────────────────"
)

func renderPage(title, data, hotKeys, errMsg string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	for _, line := range strings.Split(data, "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	if errMsg != "" {
		b.WriteString("\n  ")
		b.WriteString(errorStyle.Render(errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(hotKeys))

	return b.String()
}

// fitText shortens v to at most width terminal cells, ending it with "..."
// when there is room for it.
func fitText(v string, width int) string {
	if width <= 0 {
		return v
	}
	if width <= 3 {
		return ansi.Truncate(v, width, "")
	}
	return ansi.Truncate(v, width, "...")
}

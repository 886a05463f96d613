package tui

// Highlight optionally names the entry the menu cursor starts on.
// The zero value highlights nothing.
type Highlight struct {
	index int
	set   bool
}

// NoHighlight returns an empty Highlight.
func NoHighlight() Highlight {
	return Highlight{}
}

// HighlightEntry returns a Highlight on the entry at index.
func HighlightEntry(index int) Highlight {
	return Highlight{index: index, set: true}
}

// Get returns the highlighted entry index and whether there is one.
func (h Highlight) Get() (int, bool) {
	return h.index, h.set
}

// IsSet reports whether an entry is highlighted.
func (h Highlight) IsSet() bool {
	return h.set
}

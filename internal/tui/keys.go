package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	home     key.Binding
	end      key.Binding
	copy     key.Binding
	add      key.Binding
	delete   key.Binding
	modify   key.Binding
	cancel   key.Binding

	next    key.Binding
	prev    key.Binding
	submit  key.Binding
	confirm key.Binding
	abort   key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	pageUp:   key.NewBinding(key.WithKeys("pgup")),
	pageDown: key.NewBinding(key.WithKeys("pgdown")),
	home:     key.NewBinding(key.WithKeys("home", "g")),
	end:      key.NewBinding(key.WithKeys("end", "G")),
	copy:     key.NewBinding(key.WithKeys("enter", " ")),
	add:      key.NewBinding(key.WithKeys("a")),
	delete:   key.NewBinding(key.WithKeys("d", "delete")),
	modify:   key.NewBinding(key.WithKeys("m", "e")),
	cancel:   key.NewBinding(key.WithKeys("esc", "q", "ctrl+c")),

	next:    key.NewBinding(key.WithKeys("tab", "down")),
	prev:    key.NewBinding(key.WithKeys("shift+tab", "up")),
	submit:  key.NewBinding(key.WithKeys("ctrl+s")),
	confirm: key.NewBinding(key.WithKeys("enter")),
	abort:   key.NewBinding(key.WithKeys("esc", "ctrl+c")),
}

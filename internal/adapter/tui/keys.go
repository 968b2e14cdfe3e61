package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Next     key.Binding
	Previous key.Binding
	Start    key.Binding

	NextField key.Binding
	PrevField key.Binding

	AddEntry    key.Binding
	RemoveEntry key.Binding
	NextEntry   key.Binding
	PrevEntry   key.Binding
	Current     key.Binding

	AddItem        key.Binding
	RemoveCategory key.Binding
	RemoveSkill    key.Binding
	Up             key.Binding
	Down           key.Binding

	Template key.Binding
	Export   key.Binding
	Restart  key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Next:     key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next")),
	Previous: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "previous")),
	Start:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "get started")),

	NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),

	AddEntry:    key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "add")),
	RemoveEntry: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "remove")),
	NextEntry:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "next entry")),
	PrevEntry:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "previous entry")),
	Current:     key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "current role")),

	AddItem:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
	RemoveCategory: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "remove category")),
	RemoveSkill:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "remove skill")),
	Up:             key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	Down:           key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

	Template: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "switch template")),
	Export:   key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "download pdf")),
	Restart:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "start over")),
}

package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/desertthunder/wis/internal/view"
)

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up    key.Binding
	down  key.Binding
	enter key.Binding
	back  key.Binding
	prev  key.Binding
	next  key.Binding
	pdf   key.Binding
	video key.Binding
	help  key.Binding
	quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view sheet")),
		back:  key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back to list")),
		prev:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "history back")),
		next:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "history forward")),
		pdf:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open pdf")),
		video: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "open video")),
		help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// viewKeys is the [help.KeyMap] for a single pane.
type viewKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (v viewKeys) ShortHelp() []key.Binding  { return v.short }
func (v viewKeys) FullHelp() [][]key.Binding { return v.full }

// forView returns the bindings that do something in the given pane.
func (k keyMap) forView(kind view.Kind) viewKeys {
	switch kind {
	case view.List:
		return viewKeys{
			short: []key.Binding{k.enter, k.prev, k.next, k.help, k.quit},
			full: [][]key.Binding{
				{k.up, k.down, k.enter},
				{k.prev, k.next},
				{k.help, k.quit},
			},
		}
	case view.Detail:
		return viewKeys{
			short: []key.Binding{k.back, k.pdf, k.video, k.help, k.quit},
			full: [][]key.Binding{
				{k.back, k.prev, k.next},
				{k.pdf, k.video},
				{k.help, k.quit},
			},
		}
	default:
		return viewKeys{
			short: []key.Binding{k.quit},
			full:  [][]key.Binding{{k.quit}},
		}
	}
}

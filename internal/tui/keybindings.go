package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/toasts/internal/core/config"
)

// keyMap holds every binding the demo understands. Toast bindings come from
// config; page navigation is fixed.
type keyMap struct {
	Dismiss  key.Binding
	ClearAll key.Binding
	Next     key.Binding
	Prev     key.Binding

	NextPage  key.Binding
	PrevPage  key.Binding
	Activate  key.Binding
	Category  key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap(kb config.Keybindings) keyMap {
	return keyMap{
		Dismiss:  binding(kb.Dismiss, "dismiss"),
		ClearAll: binding(kb.ClearAll, "clear all"),
		Next:     binding(kb.Next, "next toast"),
		Prev:     binding(kb.Prev, "prev toast"),

		NextPage:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
		PrevPage:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev page")),
		Activate:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Category:  key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "category")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func binding(keys []string, help string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), help),
	)
}

// shortHelp lists the bindings shown in the footer. Clear-all only appears
// when there is something to clear.
func (k keyMap) shortHelp(hasToasts bool, composing bool) []key.Binding {
	bindings := []key.Binding{k.NextPage, k.Activate}
	if composing {
		bindings = append(bindings, k.Category)
	}
	if hasToasts {
		bindings = append(bindings, k.Next, k.Dismiss, k.ClearAll)
	}
	if !composing {
		bindings = append(bindings, k.Quit)
	}
	return bindings
}

func keyMatches(msg tea.KeyPressMsg, b key.Binding) bool {
	return key.Matches(msg, b)
}

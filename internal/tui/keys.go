package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// globalKeyMap holds the bindings handled by the model itself rather than by
// the document.
type globalKeyMap struct {
	NextGroup key.Binding
	PrevGroup key.Binding
	Close     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultGlobalKeyMap() globalKeyMap {
	return globalKeyMap{
		NextGroup: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next group")),
		PrevGroup: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous group")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close dialog")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k globalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextGroup, k.Close, k.Help, k.Quit}
}

func (k globalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.NextGroup, k.PrevGroup, k.Close}, {k.Help, k.Quit}}
}

// mergedKeyMaps concatenates the help of several key maps, in order.
type mergedKeyMaps struct {
	keyMaps []help.KeyMap
}

func (m mergedKeyMaps) ShortHelp() []key.Binding {
	var bindings []key.Binding
	for _, km := range m.keyMaps {
		bindings = slices.Concat(bindings, km.ShortHelp())
	}
	return bindings
}

func (m mergedKeyMaps) FullHelp() [][]key.Binding {
	var groups [][]key.Binding
	for _, km := range m.keyMaps {
		groups = slices.Concat(groups, km.FullHelp())
	}
	return groups
}

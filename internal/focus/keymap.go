package focus

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// NavKeyMap binds keys to navigator transitions. Which of Up/Down/Left/Right
// apply depends on the navigator's orientation.
type NavKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Home     key.Binding
	End      key.Binding
	Activate key.Binding
}

// DefaultNavKeyMap uses arrow keys only so text entry elsewhere is never
// intercepted.
func DefaultNavKeyMap() NavKeyMap {
	return NavKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "activate"),
		),
	}
}

func (km NavKeyMap) isZero() bool {
	return len(km.Up.Keys()) == 0 && len(km.Down.Keys()) == 0 &&
		len(km.Left.Keys()) == 0 && len(km.Right.Keys()) == 0 &&
		len(km.Home.Keys()) == 0 && len(km.End.Keys()) == 0 &&
		len(km.Activate.Keys()) == 0
}

// ShortHelp implements help.KeyMap.
func (km NavKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Left, km.Right, km.Activate}
}

// FullHelp implements help.KeyMap.
func (km NavKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Up, km.Down, km.Left, km.Right}, {km.Home, km.End, km.Activate}}
}

// ForOrientation returns a copy with the bindings that do not apply to o
// disabled, so help output only lists live keys.
func (km NavKeyMap) ForOrientation(o Orientation) NavKeyMap {
	switch o {
	case Vertical:
		km.Left.SetEnabled(false)
		km.Right.SetEnabled(false)
	case Horizontal:
		km.Up.SetEnabled(false)
		km.Down.SetEnabled(false)
	}
	return km
}

var _ help.KeyMap = NavKeyMap{}

package config

import (
	"io"

	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/focuskit/internal/announce"
	"github.com/alexisbeaulieu97/focuskit/internal/focus"
	"github.com/alexisbeaulieu97/focuskit/internal/infrastructure/logging"
)

// Settings converts the log section into logging factory settings.
func (c LogConfig) Settings(w io.Writer, component string) logging.Settings {
	return logging.Settings{
		Backend:   c.Backend,
		Level:     c.Level,
		Format:    c.Format,
		Writer:    w,
		Component: component,
	}
}

// Options converts the trap section. RestoreFocus and OnDeactivate are
// per-session and left for the caller.
func (c TrapConfig) Options() focus.TrapOptions {
	return focus.TrapOptions{
		InitialFocus:      c.InitialFocus,
		EscapeDeactivates: c.EscapeDeactivates,
	}
}

// Options converts the navigation section. Callbacks are left for the
// caller.
func (c NavigationConfig) Options() (focus.NavOptions, error) {
	orientation, err := focus.ParseOrientation(c.Orientation)
	if err != nil {
		return focus.NavOptions{}, err
	}
	return focus.NavOptions{
		Orientation: orientation,
		Loop:        c.Loop,
		Columns:     c.Columns,
		FocusWithin: c.FocusWithin,
		KeyMap:      c.Keys.KeyMap(),
	}, nil
}

// KeyMap applies the overrides to DefaultNavKeyMap, keeping help labels.
func (c KeysConfig) KeyMap() focus.NavKeyMap {
	km := focus.DefaultNavKeyMap()
	override(&km.Up, c.Up)
	override(&km.Down, c.Down)
	override(&km.Left, c.Left)
	override(&km.Right, c.Right)
	override(&km.Home, c.Home)
	override(&km.End, c.End)
	override(&km.Activate, c.Activate)
	return km
}

func override(b *key.Binding, keys []string) {
	if len(keys) == 0 {
		return
	}
	h := b.Help()
	*b = key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], h.Desc))
}

// Options converts the announcer section. The scheduler is left nil so the
// announcer uses the system clock unless the caller injects one.
func (c AnnouncerConfig) Options() announce.Options {
	p, err := announce.ParsePoliteness(c.Politeness)
	if err != nil {
		p = announce.Polite
	}
	return announce.Options{
		Politeness: p,
		Duration:   c.Duration,
		Dedupe:     c.Dedupe,
	}
}

package dom

import tea "github.com/charmbracelet/bubbletea"

// Key names use bubbletea's KeyMsg.String notation so events can be matched
// against bubbles/key bindings directly.
const (
	KeyTab      = "tab"
	KeyShiftTab = "shift+tab"
	KeyUp       = "up"
	KeyDown     = "down"
	KeyLeft     = "left"
	KeyRight    = "right"
	KeyHome     = "home"
	KeyEnd      = "end"
	KeyEnter    = "enter"
	KeySpace    = " "
	KeyEscape   = "esc"
)

// KeyEvent is one key press travelling through Document.Dispatch.
type KeyEvent struct {
	key       string
	prevented bool
}

// NewKeyEvent creates an event for the named key.
func NewKeyEvent(key string) *KeyEvent {
	return &KeyEvent{key: key}
}

// KeyFromTea converts a bubbletea key message.
func KeyFromTea(msg tea.KeyMsg) *KeyEvent {
	return NewKeyEvent(msg.String())
}

// Key returns the key name.
func (e *KeyEvent) Key() string { return e.key }

// String implements fmt.Stringer for key.Matches.
func (e *KeyEvent) String() string { return e.key }

// PreventDefault suppresses the document's native handling of the key.
func (e *KeyEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *KeyEvent) DefaultPrevented() bool { return e.prevented }

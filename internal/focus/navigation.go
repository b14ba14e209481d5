package focus

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/focuskit/internal/dom"
	"github.com/alexisbeaulieu97/focuskit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/focuskit/internal/ports"
	apperrors "github.com/alexisbeaulieu97/focuskit/pkg/errors"
)

// Orientation selects which arrow keys a Navigator responds to.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
	// Both is grid navigation: left/right step by one, up/down step by the
	// column count.
	Both Orientation = "both"
)

// ParseOrientation converts a config string. "grid" is accepted for Both.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Vertical):
		return Vertical, nil
	case string(Horizontal):
		return Horizontal, nil
	case string(Both), "grid":
		return Both, nil
	default:
		return "", fmt.Errorf("unknown orientation %q", s)
	}
}

// NavOptions configures a Navigator.
type NavOptions struct {
	Orientation Orientation
	Loop        bool
	// Columns is the grid stride; required when Orientation is Both.
	Columns int
	// FocusWithin restricts key handling to moments when focus is inside
	// the container. Useful when several navigators share one document.
	FocusWithin bool
	KeyMap      NavKeyMap

	OnFocusChange func(index int, el *dom.Element)
	OnActivate    func(index int, el *dom.Element)
}

// Navigator implements roving focus over the focusable items of a container.
// The focused index starts at -1 and key handling stays off until a caller
// seeds it with SetFocusedIndex (or FocusFirst and friends).
type Navigator struct {
	surface   Surface
	provider  FocusableProvider
	container *dom.Element
	opts      NavOptions
	logger    ports.Logger

	index   int
	enabled bool
	sub     *dom.Subscription
}

// NewNavigator validates opts and returns a detached, enabled navigator.
// Grid orientation without a positive column count is a
// *errors.MisconfigurationError.
func NewNavigator(surface Surface, provider FocusableProvider, container *dom.Element, opts NavOptions, logger ports.Logger) (*Navigator, error) {
	if opts.Orientation == "" {
		opts.Orientation = Vertical
	}
	switch opts.Orientation {
	case Horizontal, Vertical:
	case Both:
		if opts.Columns <= 0 {
			return nil, apperrors.NewMisconfigurationError("navigator", "columns",
				"grid navigation requires a positive column count")
		}
	default:
		return nil, apperrors.NewMisconfigurationError("navigator", "orientation",
			fmt.Sprintf("unknown orientation %q", opts.Orientation))
	}
	if opts.KeyMap.isZero() {
		opts.KeyMap = DefaultNavKeyMap()
	}
	if provider == nil {
		provider = DOMProvider{}
	}
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}

	return &Navigator{
		surface:   surface,
		provider:  provider,
		container: container,
		opts:      opts,
		logger:    logger.With("component", "navigator", "container", container.String()),
		index:     -1,
		enabled:   true,
	}, nil
}

// FocusedIndex returns the current index, -1 when not yet seeded.
func (n *Navigator) FocusedIndex() int { return n.index }

// Orientation returns the configured orientation.
func (n *Navigator) Orientation() Orientation { return n.opts.Orientation }

// KeyMap returns the bindings in use, trimmed to the orientation.
func (n *Navigator) KeyMap() NavKeyMap { return n.opts.KeyMap.ForOrientation(n.opts.Orientation) }

// Enabled reports whether key handling is on.
func (n *Navigator) Enabled() bool { return n.enabled }

// SetEnabled turns key handling on or off without touching the index.
func (n *Navigator) SetEnabled(enabled bool) { n.enabled = enabled }

// Attached reports whether the document key listener is registered.
func (n *Navigator) Attached() bool { return n.sub != nil && !n.sub.Closed() }

// Attach registers the document key listener. Attaching twice is a no-op.
func (n *Navigator) Attach() {
	if n.Attached() {
		n.logger.Debug(context.Background(), "navigator already attached; attach ignored")
		return
	}
	n.sub = n.surface.AddKeyListener(func(ev *dom.KeyEvent) { n.HandleKey(ev) })
}

// Detach removes the key listener. It is idempotent.
func (n *Navigator) Detach() {
	if n.sub == nil {
		return
	}
	n.sub.Close()
	n.sub = nil
}

// Reset forgets the focused index so keys are ignored until reseeded.
func (n *Navigator) Reset() { n.index = -1 }

// Elements returns the current focusable set.
func (n *Navigator) Elements() []*dom.Element {
	if n.container == nil || !n.container.IsConnected() {
		return nil
	}
	return n.provider.ListFocusable(n.container)
}

// SetFocusedIndex clamps i into range, focuses that element, records the
// index and reports the change. With an empty set it does nothing.
func (n *Navigator) SetFocusedIndex(i int) {
	n.setFocusedIndex(n.Elements(), i)
}

func (n *Navigator) setFocusedIndex(els []*dom.Element, i int) {
	if len(els) == 0 {
		return
	}
	i = max(0, min(i, len(els)-1))
	el := els[i]
	n.surface.Focus(el)
	n.index = i
	if n.opts.OnFocusChange != nil {
		n.opts.OnFocusChange(i, el)
	}
}

// FocusNext advances by one, wrapping to the first item when looping and
// staying on the last item otherwise.
func (n *Navigator) FocusNext() {
	els := n.Elements()
	if len(els) == 0 {
		return
	}
	next := n.index + 1
	if next > len(els)-1 {
		if n.opts.Loop {
			next = 0
		} else {
			next = len(els) - 1
		}
	}
	n.setFocusedIndex(els, next)
}

// FocusPrevious steps back by one, wrapping to the last item when looping
// and staying on the first item otherwise.
func (n *Navigator) FocusPrevious() {
	els := n.Elements()
	if len(els) == 0 {
		return
	}
	prev := n.index - 1
	if prev < 0 {
		if n.opts.Loop {
			prev = len(els) - 1
		} else {
			prev = 0
		}
	}
	n.setFocusedIndex(els, prev)
}

// FocusFirst focuses the first item.
func (n *Navigator) FocusFirst() {
	n.setFocusedIndex(n.Elements(), 0)
}

// FocusLast focuses the last item.
func (n *Navigator) FocusLast() {
	els := n.Elements()
	n.setFocusedIndex(els, len(els)-1)
}

// focusRowBelow moves one row down in the grid, wrapping to the same column
// of the first row when looping.
func (n *Navigator) focusRowBelow(els []*dom.Element) {
	cols := n.opts.Columns
	i := min(n.index, len(els)-1)
	target := i + cols
	if target > len(els)-1 {
		if n.opts.Loop {
			target = i % cols
		} else {
			target = i
		}
	}
	n.setFocusedIndex(els, target)
}

// focusRowAbove moves one row up in the grid, wrapping to the same column of
// the last row that has it when looping.
func (n *Navigator) focusRowAbove(els []*dom.Element) {
	cols := n.opts.Columns
	i := min(n.index, len(els)-1)
	target := i - cols
	if target < 0 {
		if n.opts.Loop {
			col := i % cols
			target = col + cols*((len(els)-1-col)/cols)
		} else {
			target = i
		}
	}
	n.setFocusedIndex(els, target)
}

// Activate reports the focused item to OnActivate and then triggers its
// native action when it is a button or link.
func (n *Navigator) Activate() {
	els := n.Elements()
	if len(els) == 0 || n.index < 0 {
		return
	}
	i := min(n.index, len(els)-1)
	el := els[i]
	if n.opts.OnActivate != nil {
		n.opts.OnActivate(i, el)
	}
	if el.IsActivationTarget() {
		el.Click()
	}
}

// SyncFromActive adopts the index of the focused element when focus reached
// an item by other means, such as Tab. It reports whether the index changed.
func (n *Navigator) SyncFromActive() bool {
	els := n.Elements()
	i := indexOf(els, n.surface.ActiveElement())
	if i < 0 || i == n.index {
		return false
	}
	n.index = i
	if n.opts.OnFocusChange != nil {
		n.opts.OnFocusChange(i, els[i])
	}
	return true
}

// HandleKey maps ev to a transition. Handled keys have their default
// prevented; keys that do not apply are left alone. Nothing is handled while
// disabled, before the index is seeded, or while the set is empty, and
// events another listener already consumed are skipped.
func (n *Navigator) HandleKey(ev *dom.KeyEvent) bool {
	if ev == nil || ev.DefaultPrevented() || !n.enabled || n.index == -1 {
		return false
	}
	if n.opts.FocusWithin {
		active := n.surface.ActiveElement()
		if active == nil || n.container == nil || !n.container.Contains(active) {
			return false
		}
	}
	els := n.Elements()
	if len(els) == 0 {
		return false
	}

	km := n.opts.KeyMap
	switch {
	case key.Matches(ev, km.Home):
		n.setFocusedIndex(els, 0)
	case key.Matches(ev, km.End):
		n.setFocusedIndex(els, len(els)-1)
	case key.Matches(ev, km.Activate):
		n.Activate()
	default:
		if !n.handleArrow(ev, els) {
			return false
		}
	}
	ev.PreventDefault()
	return true
}

func (n *Navigator) handleArrow(ev *dom.KeyEvent, els []*dom.Element) bool {
	km := n.opts.KeyMap
	switch n.opts.Orientation {
	case Vertical:
		switch {
		case key.Matches(ev, km.Down):
			n.FocusNext()
		case key.Matches(ev, km.Up):
			n.FocusPrevious()
		default:
			return false
		}
	case Horizontal:
		switch {
		case key.Matches(ev, km.Right):
			n.FocusNext()
		case key.Matches(ev, km.Left):
			n.FocusPrevious()
		default:
			return false
		}
	case Both:
		switch {
		case key.Matches(ev, km.Right):
			n.FocusNext()
		case key.Matches(ev, km.Left):
			n.FocusPrevious()
		case key.Matches(ev, km.Down):
			n.focusRowBelow(els)
		case key.Matches(ev, km.Up):
			n.focusRowAbove(els)
		default:
			return false
		}
	default:
		return false
	}
	return true
}

package focus

import (
	"context"

	"github.com/alexisbeaulieu97/focuskit/internal/dom"
	"github.com/alexisbeaulieu97/focuskit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/focuskit/internal/ports"
)

// TrapOptions configures one trap session.
type TrapOptions struct {
	// InitialFocus is a selector for the element focused on activation.
	// When empty or unmatched, the first focusable element is used.
	InitialFocus string
	// RestoreFocus overrides where focus goes on deactivation. A target that
	// is detached or no longer focusable by then results in no focus move.
	RestoreFocus *dom.Element
	// EscapeDeactivates makes Escape release the trap.
	EscapeDeactivates bool
	// OnDeactivate runs after an Escape-triggered deactivation.
	OnDeactivate func()
}

// DefaultTrapOptions returns options with Escape releasing the trap.
func DefaultTrapOptions() TrapOptions {
	return TrapOptions{EscapeDeactivates: true}
}

// Trap confines Tab-cycling to the focusable elements of a container.
type Trap struct {
	surface  Surface
	provider FocusableProvider
	logger   ports.Logger

	active    bool
	paused    bool
	container *dom.Element
	prior     *dom.Element
	opts      TrapOptions
	sub       *dom.Subscription
}

// NewTrap creates an inactive trap. A nil provider defaults to DOMProvider
// and a nil logger discards output.
func NewTrap(surface Surface, provider FocusableProvider, logger ports.Logger) *Trap {
	if provider == nil {
		provider = DOMProvider{}
	}
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &Trap{
		surface:  surface,
		provider: provider,
		logger:   logger.With("component", "trap"),
	}
}

// IsActive reports whether a session is open.
func (t *Trap) IsActive() bool { return t.active }

// IsPaused reports whether the open session is ignoring keys.
func (t *Trap) IsPaused() bool { return t.active && t.paused }

// Container returns the trapped container of the open session.
func (t *Trap) Container() *dom.Element {
	if !t.active {
		return nil
	}
	return t.container
}

// Activate opens a session on container: it remembers the focused element,
// moves focus inside and starts listening for Tab and Escape. Activating an
// active trap, or a missing or detached container, does nothing.
func (t *Trap) Activate(container *dom.Element, opts TrapOptions) {
	ctx := context.Background()
	if t.active {
		t.logger.Debug(ctx, "trap already active; activate ignored",
			"container", t.container.String(), "requested", container.String())
		return
	}
	if container == nil || !container.IsConnected() {
		t.logger.Debug(ctx, "trap container missing or detached; activate ignored",
			"container", container.String())
		return
	}

	t.prior = t.surface.ActiveElement()
	t.container = container
	t.opts = opts
	t.active = true
	t.paused = false
	t.sub = t.surface.AddKeyListener(t.handleKey)

	set := t.provider.ListFocusable(container)
	if len(set) == 0 {
		t.logger.Debug(ctx, "trap has no focusable elements; nothing to confine",
			"container", container.String())
		return
	}

	if opts.InitialFocus != "" {
		if target := container.Query(opts.InitialFocus); target != nil && t.surface.Focus(target) {
			return
		}
		t.logger.Debug(ctx, "initial focus selector unmatched; using first element",
			"selector", opts.InitialFocus)
	}
	t.surface.Focus(set[0])
}

// Deactivate closes the session, stops listening and restores focus. It is
// idempotent.
func (t *Trap) Deactivate() {
	if !t.active {
		return
	}
	t.sub.Close()
	t.sub = nil
	t.active = false
	t.paused = false

	restore, prior := t.opts.RestoreFocus, t.prior
	t.container = nil
	t.prior = nil
	t.opts = TrapOptions{}

	ctx := context.Background()
	switch {
	case restore != nil:
		if !restore.IsConnected() || !t.surface.Focus(restore) {
			t.logger.Debug(ctx, "restore target not focusable; focus left in place",
				"target", restore.String())
		}
	case prior != nil && prior.IsConnected():
		t.surface.Focus(prior)
	}
}

// Pause keeps the session open but ignores keys until Unpause.
func (t *Trap) Pause() {
	if t.active {
		t.paused = true
	}
}

// Unpause resumes key handling for a paused session.
func (t *Trap) Unpause() {
	t.paused = false
}

// Run activates the trap on container, runs fn and always deactivates
// afterwards, including when fn panics. If the trap was already active, fn
// runs inside the existing session and the session is left open.
func (t *Trap) Run(container *dom.Element, opts TrapOptions, fn func() error) error {
	if !t.active {
		t.Activate(container, opts)
		if t.active {
			defer t.Deactivate()
		}
	}
	return fn()
}

func (t *Trap) handleKey(ev *dom.KeyEvent) {
	if !t.active || t.paused || !t.container.IsConnected() {
		return
	}
	switch ev.Key() {
	case dom.KeyTab:
		t.cycle(ev, true)
	case dom.KeyShiftTab:
		t.cycle(ev, false)
	case dom.KeyEscape:
		if !t.opts.EscapeDeactivates {
			return
		}
		ev.PreventDefault()
		onDeactivate := t.opts.OnDeactivate
		t.Deactivate()
		if onDeactivate != nil {
			onDeactivate()
		}
	}
}

// cycle wraps focus at the edges of the freshly computed set. Inside the
// set, native advancement is left alone.
func (t *Trap) cycle(ev *dom.KeyEvent, forward bool) {
	set := t.provider.ListFocusable(t.container)
	if len(set) == 0 {
		return
	}
	current := t.surface.ActiveElement()
	idx := indexOf(set, current)

	switch {
	case idx < 0:
		ev.PreventDefault()
		t.surface.Focus(t.reenter(set, current, forward))
	case forward && idx == len(set)-1:
		ev.PreventDefault()
		t.surface.Focus(set[0])
	case !forward && idx == 0:
		ev.PreventDefault()
		t.surface.Focus(set[len(set)-1])
	}
}

// reenter picks the target for Tab pressed while focus sits outside the set:
// the nearest set member in the direction of travel when focus is on a
// non-tabbable element inside the container, otherwise the matching edge.
func (t *Trap) reenter(set []*dom.Element, current *dom.Element, forward bool) *dom.Element {
	if current != nil && t.container.Contains(current) {
		order := t.container.Descendants()
		pos := indexOf(order, current)
		if forward {
			for _, el := range set {
				if indexOf(order, el) > pos {
					return el
				}
			}
		} else {
			for i := len(set) - 1; i >= 0; i-- {
				if indexOf(order, set[i]) < pos {
					return set[i]
				}
			}
		}
	}
	if forward {
		return set[0]
	}
	return set[len(set)-1]
}
